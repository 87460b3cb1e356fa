package query

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

var (
	phraseRe  = regexp.MustCompile(`"([^"]*)"`)
	yearRe    = regexp.MustCompile(`\((\d{4})\)`)
	filterRe  = regexp.MustCompile(`([a-zA-Z]+):([a-zA-Z]+)`)
	excludeRe = regexp.MustCompile(`-(\w+)`)
)

// SearchQuery holds the parsed components of a search query.
type SearchQuery struct {
	Keywords     []string          // basic keywords, or whole OR-segments
	Phrases      []string          // quoted phrases
	Operators    []string          // informational: records whether OR was used
	ExcludeTerms []string          // terms with minus
	Filters      map[string]string // filters like lang:en
	Year         int               // year if specified, 0 otherwise
}

// SearchConditions is the flattened, matcher-facing view of a SearchQuery.
type SearchConditions struct {
	MustMatchAny []string // match any of these words
	MustMatchAll []string // match all these phrases
	MustNotMatch []string // exclude these words
	Year         int      // 0 when unset
	Filters      map[string]string
}

// Parser parses Twitter-like search queries.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a query parser.
func NewParser() *Parser {
	return &Parser{logger: slog.Default().With("component", "query-parser")}
}

// Parse parses a compact boolean/phrase/filter query. It never fails: input
// that matches nothing yields an empty SearchQuery.
//
// Each step removes its matched substrings from the working string, so
// later steps never re-match already-claimed tokens. Quoted phrases are
// claimed first, which keeps their content out of keywords and filters.
func (p *Parser) Parse(query string) SearchQuery {
	parsed := SearchQuery{
		Keywords:     []string{},
		Phrases:      []string{},
		Operators:    []string{},
		ExcludeTerms: []string{},
		Filters:      map[string]string{},
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return parsed
	}

	// Quoted phrases first.
	for _, m := range phraseRe.FindAllStringSubmatch(query, -1) {
		parsed.Phrases = append(parsed.Phrases, m[1])
	}
	query = phraseRe.ReplaceAllString(query, "")

	// A single (YYYY) token; the first match wins, any later ones are left
	// as ordinary text.
	if m := yearRe.FindStringSubmatch(query); m != nil {
		year, err := strconv.Atoi(m[1])
		if err == nil {
			parsed.Year = year
			query = strings.Replace(query, m[0], "", 1)
		}
	}

	// name:value filters; later duplicates overwrite earlier ones.
	for _, m := range filterRe.FindAllStringSubmatch(query, -1) {
		parsed.Filters[m[1]] = m[2]
	}
	query = filterRe.ReplaceAllString(query, "")

	// -word exclusions.
	for _, m := range excludeRe.FindAllStringSubmatch(query, -1) {
		parsed.ExcludeTerms = append(parsed.ExcludeTerms, m[1])
	}
	query = excludeRe.ReplaceAllString(query, "")

	// AND is a no-op joiner.
	query = strings.ReplaceAll(query, " AND ", " ")

	if strings.Contains(query, "OR") {
		// OR keeps whole trimmed segments as atomic keyword units, which
		// may be multi-word. Asymmetric with the implicit-AND branch below,
		// preserved as observed.
		parsed.Operators = append(parsed.Operators, "OR")
		for _, segment := range strings.Split(query, "OR") {
			segment = strings.TrimSpace(segment)
			if segment != "" {
				parsed.Keywords = append(parsed.Keywords, segment)
			}
		}
	} else {
		for _, word := range strings.Fields(query) {
			switch word {
			case "AND", "OR", "(", ")":
				continue
			}
			parsed.Keywords = append(parsed.Keywords, word)
		}
	}

	p.logger.Debug("parsed query",
		"keywords", parsed.Keywords,
		"phrases", parsed.Phrases,
		"excluded", parsed.ExcludeTerms,
		"filters", parsed.Filters,
		"year", parsed.Year)
	return parsed
}

// GenerateSearchConditions projects a SearchQuery into the flattened view
// the matcher consumes. Pure field remap.
func (p *Parser) GenerateSearchConditions(parsed SearchQuery) SearchConditions {
	filters := make(map[string]string, len(parsed.Filters))
	for name, value := range parsed.Filters {
		filters[name] = value
	}
	return SearchConditions{
		MustMatchAny: parsed.Keywords,
		MustMatchAll: parsed.Phrases,
		MustNotMatch: parsed.ExcludeTerms,
		Year:         parsed.Year,
		Filters:      filters,
	}
}
