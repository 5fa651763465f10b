package actionlog

import (
	"strings"

	"github.com/tracefire-io/tracefire/internal/models"
)

// CategoryFilter selects which entries the list shows.
type CategoryFilter string

const (
	FilterAll           CategoryFilter = "all"
	FilterLLM           CategoryFilter = "llm"
	FilterTranscription CategoryFilter = "transcription"
	FilterImage         CategoryFilter = "image"
	FilterOther         CategoryFilter = "other"
)

// Filters lists the selectable filters in display order.
var Filters = []CategoryFilter{FilterAll, FilterLLM, FilterTranscription, FilterImage, FilterOther}

// Label returns the tab label for the filter.
func (f CategoryFilter) Label() string {
	switch f {
	case FilterLLM:
		return "LLM"
	case FilterTranscription:
		return "Transcription"
	case FilterImage:
		return "Image"
	case FilterOther:
		return "Other"
	default:
		return "All"
	}
}

// Matches reports whether an entry of the given category passes the filter.
// FilterOther catches everything that is not an LLM call, transcription or
// image generation.
func (f CategoryFilter) Matches(c Category) bool {
	switch f {
	case FilterAll:
		return true
	case FilterLLM:
		return c == CategoryLLM
	case FilterTranscription:
		return c == CategoryTranscription
	case FilterImage:
		return c == CategoryImage
	case FilterOther:
		return c != CategoryLLM && c != CategoryTranscription && c != CategoryImage
	default:
		return false
	}
}

// Filter reduces entries to those matching the category filter and the
// free-text query. The query is trimmed and case-folded, then matched as a
// substring against the entry's model type, model key, id, message and
// serialized params/response. Order is preserved; there is no ranking.
func Filter(entries []models.ModelCall, filter CategoryFilter, query string) []models.ModelCall {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]models.ModelCall, 0, len(entries))
	for _, e := range entries {
		if !filter.Matches(Classify(e.Body.ModelType)) {
			continue
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesQuery(e models.ModelCall, query string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		e.Body.ModelType,
		e.Body.ModelKey,
		e.ID,
		e.Message,
		string(e.Body.Params),
		string(e.Body.Response),
	}, " "))
	return strings.Contains(haystack, query)
}
