// Package collector acquires records for the local corpus. A Fetcher is a
// single fetch operation; cross-cutting policies (retry with backoff, rate
// limiting) are explicit wrappers composed around it rather than hidden
// control flow. The Collector persists whatever the composed fetcher
// returns.
package collector
