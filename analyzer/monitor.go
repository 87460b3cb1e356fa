package analyzer

import (
	"encoding/json"

	"github.com/sociolens/tweetlens/core"
)

// Monitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate steps and results during search.
type Monitor interface {
	Start(query string)
	AfterPreFilter(candidates []*core.Record)
	AfterServiceReply(raw string)
	AfterExtraction(payload json.RawMessage)
	ReconciliationMiss(tweetText string)
	Finish(result *core.SearchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                    {}
func (n *noopMonitor) AfterPreFilter(_ []*core.Record)   {}
func (n *noopMonitor) AfterServiceReply(_ string)        {}
func (n *noopMonitor) AfterExtraction(_ json.RawMessage) {}
func (n *noopMonitor) ReconciliationMiss(_ string)       {}
func (n *noopMonitor) Finish(_ *core.SearchResult)       {}
