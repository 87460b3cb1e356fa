// Package stats computes local, service-free views of a record corpus:
// engagement summaries and trending domain keywords. Domain vocabulary is
// injected configuration, so the counting logic stays testable independent
// of any particular subject area.
package stats
