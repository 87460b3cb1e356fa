package stats

// Vocabulary carries the word lists keyword extraction runs against.
// StopWords are dropped outright; a remaining term counts only when it
// contains one of the DomainTerms.
type Vocabulary struct {
	StopWords   []string
	DomainTerms []string
}

// DefaultVocabulary returns the stock crypto/blockchain vocabulary.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		StopWords: []string{
			"rt", "the", "to", "and", "is", "in", "it", "you", "that", "for",
			"a", "of", "or", "on", "with", "by", "from", "up", "about", "into",
			"over", "after", "at", "as", "i", "we", "our", "will", "be", "all",
			"have", "has", "had", "what", "when", "where", "who", "which", "why",
			"can", "could", "this", "these", "those", "am", "are", "was", "were",
			// Terms too generic to trend within the domain itself.
			"more", "today", "new", "now", "like", "just", "get", "one",
			"blockchain", "crypto", "web3", "nft", "thread",
		},
		DomainTerms: []string{
			"bitcoin", "ethereum", "defi", "dao", "nft", "metaverse",
			"smart contract", "altcoin", "token", "mining", "staking",
			"governance", "layer2", "zk-rollup", "ai", "machine learning",
		},
	}
}
