package analyzer

import (
	"context"
	"sync"

	"github.com/sociolens/tweetlens/core"
)

// Report bundles both analysis views of one set of records.
type Report struct {
	Content   *core.ContentAnalysis   `json:"content"`
	Sentiment *core.SentimentAnalysis `json:"sentiment"`
}

// AnalyzeAll runs content and sentiment analysis concurrently on the
// analyzer's worker pool. Either half may come back degraded; AnalyzeAll
// itself fails only when the pool rejects a task.
func (a *Analyzer) AnalyzeAll(ctx context.Context, records []*core.Record) (*Report, error) {
	var (
		wg     sync.WaitGroup
		report Report
	)

	wg.Add(1)
	if err := a.pool.Submit(func() {
		defer wg.Done()
		report.Content = a.AnalyzeContent(ctx, records)
	}); err != nil {
		wg.Done()
		return nil, err
	}

	wg.Add(1)
	if err := a.pool.Submit(func() {
		defer wg.Done()
		report.Sentiment = a.AnalyzeSentiment(ctx, records)
	}); err != nil {
		wg.Done()
		wg.Wait()
		return nil, err
	}

	wg.Wait()
	return &report, nil
}
