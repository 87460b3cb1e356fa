package analyzer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sociolens/tweetlens/core"
)

// AnalyzeSentiment asks the semantic service for the sentiment view of
// records. When the reply omits the sentiment distribution it is
// synthesized from the per-topic sentiment labels. AnalyzeSentiment never
// fails; a degraded run returns an empty analysis whose metadata carries
// the error.
func (a *Analyzer) AnalyzeSentiment(ctx context.Context, records []*core.Record) *core.SentimentAnalysis {
	a.logger.Info("starting sentiment analysis", "records", len(records))

	payload, err := json.Marshal(records)
	if err != nil {
		return degradedSentiment(err)
	}

	raw, err := a.service.Generate(ctx, a.sentimentPrompt(), string(payload))
	if err != nil {
		a.logger.Error("sentiment analysis call failed", "error", err)
		return degradedSentiment(err)
	}

	recovered, err := a.extractor.Extract(raw)
	if err != nil {
		a.logger.Error("sentiment reply extraction failed", "error", err)
		return degradedSentiment(err)
	}

	var analysis core.SentimentAnalysis
	if err := json.Unmarshal(recovered, &analysis); err != nil {
		a.logger.Error("recovered sentiment reply has unexpected shape", "error", err)
		return degradedSentiment(err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(recovered, &probe); err == nil {
		if _, ok := probe["sentiment_distribution"]; !ok {
			analysis.SynthesizeDistribution()
		}
	}

	analysis.Metadata = core.AnalysisMetadata{
		AnalyzedPosts: len(records),
		Timestamp:     time.Now(),
	}

	a.logger.Info("sentiment analysis complete", "key_sentiments", len(analysis.KeySentiments))
	return &analysis
}

func degradedSentiment(cause error) *core.SentimentAnalysis {
	return &core.SentimentAnalysis{
		KeySentiments: []core.KeySentiment{},
		Metadata: core.AnalysisMetadata{
			Timestamp: time.Now(),
			Error:     true,
			Message:   cause.Error(),
		},
	}
}
