// Package query parses compact boolean search queries and pre-filters a
// record corpus against them.
//
// The query language supports quoted phrases ("exact match"), OR/AND
// operators, exclusions (-spam), name:value filters (lang:en) and a
// parenthesized year ((2024)). Parsing never fails: malformed input
// degrades to an empty query.
//
// Pre-filtering is the system's cost bound: it caps how many candidate
// records are forwarded to the semantic service.
package query
