package analyzer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sociolens/tweetlens/core"
)

// contentRecord is a record as handed to the content-analysis prompt: the
// record fields plus a flattened author, which the prompt's discussion
// schema asks the service to echo back.
type contentRecord struct {
	*core.Record
	Author string `json:"author"`
}

// AnalyzeContent asks the semantic service for the topic, discussion and
// trend view of records. It never fails; a degraded run returns an empty
// analysis whose metadata carries the error.
func (a *Analyzer) AnalyzeContent(ctx context.Context, records []*core.Record) *core.ContentAnalysis {
	a.logger.Info("starting content analysis", "records", len(records))

	enhanced := make([]contentRecord, 0, len(records))
	for _, r := range records {
		author := r.AuthorId
		if author == "" {
			author = "Unknown"
		}
		enhanced = append(enhanced, contentRecord{Record: r, Author: author})
	}

	payload, err := json.Marshal(enhanced)
	if err != nil {
		return degradedContent(err)
	}

	raw, err := a.service.Generate(ctx, a.contentPrompt(), string(payload))
	if err != nil {
		a.logger.Error("content analysis call failed", "error", err)
		return degradedContent(err)
	}

	recovered, err := a.extractor.Extract(raw)
	if err != nil {
		a.logger.Error("content reply extraction failed", "error", err)
		return degradedContent(err)
	}

	var analysis core.ContentAnalysis
	if err := json.Unmarshal(recovered, &analysis); err != nil {
		a.logger.Error("recovered content reply has unexpected shape", "error", err)
		return degradedContent(err)
	}

	// The service sometimes omits the author it was asked to echo back.
	for i := range analysis.KeyDiscussions {
		if analysis.KeyDiscussions[i].Author != "" {
			continue
		}
		if record := findByText(records, analysis.KeyDiscussions[i].TweetText); record != nil && record.AuthorId != "" {
			analysis.KeyDiscussions[i].Author = record.AuthorId
		} else {
			analysis.KeyDiscussions[i].Author = "Unknown"
		}
	}

	analysis.Metadata = core.AnalysisMetadata{
		AnalyzedPosts: len(records),
		Timestamp:     time.Now(),
	}

	a.logger.Info("content analysis complete", "topics", len(analysis.Topics))
	return &analysis
}

func degradedContent(cause error) *core.ContentAnalysis {
	return &core.ContentAnalysis{
		Topics:         []core.Topic{},
		KeyDiscussions: []core.Discussion{},
		Trends:         core.Trends{Rising: []core.RisingTopic{}, Keywords: []string{}},
		Metadata: core.AnalysisMetadata{
			Timestamp: time.Now(),
			Error:     true,
			Message:   cause.Error(),
		},
	}
}
