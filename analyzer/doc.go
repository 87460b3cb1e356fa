// Package analyzer orchestrates the search and analysis pipeline: parse the
// query, pre-filter the corpus, call the semantic service, recover its
// reply, and reconcile the result against the original records.
//
// Every operation degrades instead of failing: a search or analysis that
// cannot complete returns an empty, typed result whose metadata carries the
// error, never a fault to the caller.
package analyzer
