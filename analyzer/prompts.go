package analyzer

import "fmt"

// DefaultDomain is the subject area the analysis prompts are framed in.
// Override it with WithDomain when the corpus covers something else.
const DefaultDomain = "crypto/blockchain"

const semanticSearchTemplate = `You are a semantic search expert for Twitter content in the %[1]s domain.

CRITICAL PROCESSING INSTRUCTIONS:
1. ALWAYS return a COMPLETE, VALID JSON
2. Analyze tweets for SEMANTIC relevance
3. Provide detailed relevance scoring and explanations
4. If a tweet cannot be fully processed, partially fill data
5. NEVER return an incomplete or invalid JSON

REQUIRED JSON STRUCTURE:
{
    "matches": [
        {
            "tweet_text": "string", // Full original tweet text
            "relevance_score": number, // Relevance score (0-1)
            "relevance_explanation": "string", // Why tweet is relevant
            "matched_concepts": ["string"] // Matched query concepts
        }
    ],
    "search_metadata": {
        "query_interpretation": "string", // How query was interpreted
        "related_topics": ["string"], // Additional related topics
        "suggested_queries": ["string"] // Follow-up search suggestions
    }
}

Key Evaluation Criteria:
- Semantic meaning beyond exact keyword matches
- Contextual relevance in the %[1]s domain
- Depth of conceptual alignment with search query

MANDATORY: Validate JSON structure before response.`

const contentAnalysisTemplate = `You are an expert at analyzing Twitter conversations and trends in the %[1]s domain.
Your task is to analyze the provided tweets and return structured insights.

CRITICAL REQUIREMENTS:
1. ALWAYS return a COMPLETE, VALID JSON structure
2. Ensure ALL fields are filled
3. If any tweet cannot be fully analyzed, partially fill its data
4. Do NOT leave any fields empty or partially filled
5. If a specific detail is unavailable, use NULL or an empty string

REQUIRED JSON FORMAT:
{
    "topics": [
        {
            "name": "string", // Topic name
            "count": number,  // Number of tweets mentioning this topic
            "importance": number, // Importance score (1-10)
            "context": "string", // Brief context of the topic
            "examples": ["string"] // Tweet examples
        }
    ],
    "key_discussions": [
        {
            "tweet_text": "string", // Original tweet text
            "author": "string",     // Author of the tweet
            "importance": number, // Importance score (1-10)
            "why_important": "string", // Explanation of importance
            "related_topics": ["string"] // Related topic tags
        }
    ],
    "trends": {
        "rising": [
            {
                "topic": "string", // Rising topic name
                "context": "string" // Brief explanation
            }
        ],
        "keywords": ["string"] // Most frequent keywords
    }
}

IMPORTANT: Validate JSON before responding. Ensure it is 100%% parseable.`

const sentimentAnalysisTemplate = `You are an expert in analyzing sentiments within %[1]s discussions.

CRITICAL REQUIREMENTS:
1. GENERATE COMPLETE, VALID JSON
2. Provide comprehensive sentiment analysis
3. If full analysis impossible, partially fill data
4. ENSURE 100%% JSON parseability

REQUIRED JSON STRUCTURE:
{
    "overall_sentiment": {
        "score": number, // Sentiment score (-1 to 1)
        "summary": "string", // Concise sentiment description
        "confidence": number // Confidence in sentiment analysis (0-1)
    },
    "key_sentiments": [
        {
            "topic": "string", // Specific topic
            "sentiment": "string", // Sentiment type
            "examples": ["string"] // Supporting tweet examples
        }
    ],
    "sentiment_distribution": {
        "positive": number, // Count of positive tweets
        "negative": number, // Count of negative tweets
        "neutral": number   // Count of neutral tweets
    },
    "emotional_patterns": {
        "primary_emotions": ["string"], // Dominant emotions
        "notable_shifts": ["string"]    // Significant emotional transitions
    }
}

Analysis Guidelines:
- Consider the nuances of the %[1]s domain context
- Evaluate technological, financial, and social sentiment layers
- Provide granular, context-aware analysis

MANDATORY: Validate JSON structure before response.`

func (a *Analyzer) searchPrompt() string {
	return fmt.Sprintf(semanticSearchTemplate, a.domain)
}

func (a *Analyzer) contentPrompt() string {
	return fmt.Sprintf(contentAnalysisTemplate, a.domain)
}

func (a *Analyzer) sentimentPrompt() string {
	return fmt.Sprintf(sentimentAnalysisTemplate, a.domain)
}
