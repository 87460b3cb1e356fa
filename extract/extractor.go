package extract

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
)

var (
	// An object carrying a "matches" array is the preferred recovery target.
	matchesObjectRe = regexp.MustCompile(`(?s)\{.*?"matches"\s*:\s*\[.*?\].*?\}`)
	anyObjectRe     = regexp.MustCompile(`(?s)\{.*?\}`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// freeTextFields are the reply fields that carry raw model prose and are
// known to break JSON with unescaped quotes and newlines. The line
// sanitization step drops them.
var freeTextFields = []string{
	`"tweet_text":`,
	`"relevance_explanation":`,
}

// Extractor recovers an embedded JSON object from a raw service reply.
type Extractor struct {
	logger *slog.Logger
}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{logger: slog.Default().With("component", "extractor")}
}

// Extract locates, cleans and parses the structured object embedded in raw
// text. Each repair step runs only if the previous one failed to produce a
// well-formed object:
//
//  1. strip a markdown code fence and parse directly
//  2. scan for the first object containing a "matches" array
//  3. scan for the first brace-delimited substring of any shape
//  4. drop lines holding free-text fields and retry
//
// Returns ErrNoPayload when every step fails.
func (e *Extractor) Extract(raw string) (json.RawMessage, error) {
	cleaned := repairJSON(stripFences(raw))

	if obj, ok := parseObject(cleaned); ok {
		return obj, nil
	}

	if m := matchesObjectRe.FindString(cleaned); m != "" {
		if obj, ok := parseObject(m); ok {
			e.logger.Debug("recovered payload via matches-object scan")
			return obj, nil
		}
	}

	if m := anyObjectRe.FindString(cleaned); m != "" {
		if obj, ok := parseObject(m); ok {
			e.logger.Debug("recovered payload via brace scan")
			return obj, nil
		}
	}

	if obj, ok := parseObject(sanitizeLines(cleaned)); ok {
		e.logger.Debug("recovered payload via line sanitization")
		return obj, nil
	}

	e.logger.Warn("reply has no recoverable payload", "length", len(raw))
	return nil, ErrNoPayload
}

// stripFences removes a leading ```json (or bare ```) marker and a trailing
// ``` marker. A no-op on unfenced input.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parseObject reports whether s is a well-formed JSON object and returns it
// verbatim if so. Arrays and scalars are rejected: every declared reply
// schema is an object.
func parseObject(s string) (json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, false
	}
	return json.RawMessage(s), true
}

// sanitizeLines drops the lines holding known free-text fields, including
// any continuation lines left behind by an unescaped newline inside the
// value, then repairs orphaned trailing commas.
func sanitizeLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))

	skipping := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if skipping {
			if !isKeyLine(trimmed) && !isStructuralLine(trimmed) {
				continue
			}
			skipping = false
		}

		if isFreeTextLine(trimmed) {
			// If the value's string never closes on this line, the
			// remainder spills onto the following lines; skip those too.
			skipping = !closesValue(trimmed)
			continue
		}

		kept = append(kept, trimmed)
	}

	rejoined := strings.Join(kept, "\n")
	return trailingCommaRe.ReplaceAllString(rejoined, "$1")
}

func isFreeTextLine(line string) bool {
	for _, field := range freeTextFields {
		if strings.HasPrefix(line, field) {
			return true
		}
	}
	return false
}

// isKeyLine reports whether the line starts a new "key": entry.
func isKeyLine(line string) bool {
	if !strings.HasPrefix(line, `"`) {
		return false
	}
	return strings.Contains(line, `":`)
}

func isStructuralLine(line string) bool {
	switch line[0] {
	case '{', '}', '[', ']':
		return true
	}
	return false
}

// closesValue reports whether a "key": "value" line closes its string value.
func closesValue(line string) bool {
	_, value, found := strings.Cut(line, `":`)
	if !found {
		return true
	}
	value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), ","))
	if !strings.HasPrefix(value, `"`) {
		return true // not a string value at all
	}
	return len(value) > 1 && strings.HasSuffix(value, `"`) && !strings.HasSuffix(value, `\"`)
}
