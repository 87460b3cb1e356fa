// Package openai implements the semantic service interface against
// OpenAI-compatible chat completion APIs via langchaingo. It works with the
// hosted OpenAI API as well as local servers (Ollama, LocalAI, vLLM).
package openai
