package ai

import "context"

// SemanticService is the external text-generation collaborator that performs
// semantic re-ranking, topic extraction and sentiment scoring.
// Implementations must be thread-safe for concurrent use.
//
// The contract is deliberately loose: the request is an instruction template
// plus a JSON-serialized context payload, and the reply is raw text of
// arbitrary shape. Replies are nominally JSON matching one of the declared
// schemas, but there is no syntactic guarantee; callers must handle them
// exclusively through the extract package.
type SemanticService interface {
	// Generate sends the instruction and context payload to the service and
	// returns its raw textual reply.
	// Returns an error only for transport-level failures; a malformed reply
	// is not an error at this layer.
	Generate(ctx context.Context, instruction, payload string) (string, error)
}
