// Package extract recovers structured JSON payloads from free-form text.
//
// The semantic service is a text generator asked to emit JSON; nothing
// guarantees it does so exactly. Replies arrive fenced in markdown, wrapped
// in prose, with unquoted keys, or with raw newlines inside string fields.
// The extractor runs a chain of progressively more aggressive repairs and
// fails with ErrNoPayload only when no plausible object can be recovered.
// Recovered text is only ever parsed, never trusted as anything else.
package extract
