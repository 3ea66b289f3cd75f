package search

import (
	"strings"

	"github.com/atsdev/go-ats-search/internal/model"
)

// remoteWork is a candidate-only pseudo filter: it never reaches the index
// as a field clause, it is rewritten into a preferred-location match.
const (
	remoteWorkFilter    = "remoteWork"
	remoteLocationField = "preferredLocation"
	remoteLocationValue = "Remote"
)

// Translate builds the full search expression for one collection from a
// free text query and a validated filter set. The result is a conjunction:
// every clause restricts, none broadens. An empty query with no filters
// matches the whole corpus.
func Translate(c model.Collection, query string, filters Filters) map[string]any {
	var must []any

	if trimmed := strings.TrimSpace(query); trimmed != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":     trimmed,
				"fields":    c.SearchFields,
				"fuzziness": "AUTO",
			},
		})
	}

	for _, key := range filters.sortedKeys() {
		filter := filters[key]

		if c.Kind == model.KindCandidate && key == remoteWorkFilter {
			if wanted, ok := filter.scalar.(bool); ok && wanted {
				must = append(must, map[string]any{
					"match": map[string]any{remoteLocationField: remoteLocationValue},
				})
			}
			continue
		}

		switch filter.kind {
		case kindList:
			field := key
			if exact, ok := c.TermFields[key]; ok {
				field = exact
			}
			must = append(must, map[string]any{
				"terms": map[string]any{field: filter.list},
			})
		case kindRange:
			bounds := map[string]any{}
			if filter.min != nil {
				bounds["gte"] = *filter.min
			}
			if filter.max != nil {
				bounds["lte"] = *filter.max
			}
			must = append(must, map[string]any{
				"range": map[string]any{key: bounds},
			})
		default:
			must = append(must, map[string]any{
				"match": map[string]any{key: filter.scalar},
			})
		}
	}

	if len(must) == 0 {
		must = append(must, map[string]any{"match_all": map[string]any{}})
	}

	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
		"sort": SortSpec(c),
	}
}

// SortSpec orders results by relevance score, with the collection's
// last-updated field as the tiebreak so equal scores rank deterministically.
func SortSpec(c model.Collection) []any {
	return []any{
		map[string]any{"_score": map[string]any{"order": "desc"}},
		map[string]any{c.TieBreak: map[string]any{"order": "desc"}},
	}
}

// MatchAll is the expression used by plain listings: the whole corpus,
// newest first by the collection's tiebreak field.
func MatchAll(c model.Collection, size int) map[string]any {
	return map[string]any{
		"size": size,
		"query": map[string]any{
			"match_all": map[string]any{},
		},
		"sort": []any{
			map[string]any{c.TieBreak: map[string]any{"order": "desc"}},
		},
	}
}
