package core

import "time"

// Topic is one subject the semantic service found across the analyzed posts.
type Topic struct {
	Name       string   `json:"name"`
	Count      int      `json:"count"`
	Importance int      `json:"importance"`
	Context    string   `json:"context"`
	Examples   []string `json:"examples"`
}

// Discussion is a single post the service flagged as driving conversation.
type Discussion struct {
	TweetText     string   `json:"tweet_text"`
	Author        string   `json:"author"`
	Importance    int      `json:"importance"`
	WhyImportant  string   `json:"why_important"`
	RelatedTopics []string `json:"related_topics"`
}

// RisingTopic is a topic the service judged to be gaining traction.
type RisingTopic struct {
	Topic   string `json:"topic"`
	Context string `json:"context"`
}

// Trends aggregates rising topics and the most frequent keywords.
type Trends struct {
	Rising   []RisingTopic `json:"rising"`
	Keywords []string      `json:"keywords"`
}

// AnalysisMetadata describes how an analysis was resolved.
type AnalysisMetadata struct {
	AnalyzedPosts int       `json:"analyzed_tweets"`
	Timestamp     time.Time `json:"timestamp"`
	Error         bool      `json:"error,omitempty"`
	Message       string    `json:"message,omitempty"`
}

// ContentAnalysis is the topic/discussion/trend view of a set of records.
type ContentAnalysis struct {
	Topics         []Topic          `json:"topics"`
	KeyDiscussions []Discussion     `json:"key_discussions"`
	Trends         Trends           `json:"trends"`
	Metadata       AnalysisMetadata `json:"metadata"`
}

// OverallSentiment summarizes the corpus-wide mood.
type OverallSentiment struct {
	Score      float64 `json:"score"` // -1 to 1
	Summary    string  `json:"summary"`
	Confidence float64 `json:"confidence"` // 0 to 1
}

// KeySentiment is the sentiment attached to one topic.
type KeySentiment struct {
	Topic     string   `json:"topic"`
	Sentiment string   `json:"sentiment"` // "positive", "negative" or "neutral"
	Examples  []string `json:"examples"`
}

// SentimentDistribution counts posts per sentiment label.
type SentimentDistribution struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// EmotionalPatterns captures dominant emotions and notable shifts.
type EmotionalPatterns struct {
	PrimaryEmotions []string `json:"primary_emotions"`
	NotableShifts   []string `json:"notable_shifts"`
}

// SentimentAnalysis is the sentiment view of a set of records. When the
// service omits the distribution it is synthesized by counting the
// KeySentiments labels.
type SentimentAnalysis struct {
	OverallSentiment  OverallSentiment      `json:"overall_sentiment"`
	KeySentiments     []KeySentiment        `json:"key_sentiments"`
	Distribution      SentimentDistribution `json:"sentiment_distribution"`
	EmotionalPatterns EmotionalPatterns     `json:"emotional_patterns"`
	Metadata          AnalysisMetadata      `json:"metadata"`
}

// SynthesizeDistribution fills Distribution by counting sentiment labels
// across KeySentiments. Used when the service reply lacks the
// sentiment_distribution block.
func (s *SentimentAnalysis) SynthesizeDistribution() {
	var dist SentimentDistribution
	for _, ks := range s.KeySentiments {
		switch ks.Sentiment {
		case "positive":
			dist.Positive++
		case "negative":
			dist.Negative++
		case "neutral":
			dist.Neutral++
		}
	}
	s.Distribution = dist
}
