// Package ai defines the semantic service abstraction and its configuration.
//
// The concrete OpenAI-compatible implementation lives in ai/openai; test
// doubles live in ai/mock. Consumers depend only on the interfaces defined
// here.
package ai
