// Package actionlog implements the view logic for an agent's model-invocation
// history: classification, filtering, search, date grouping and incremental
// pagination. Everything here is pure and recomputed from current inputs, so
// there is no cached state to go stale.
package actionlog

import "strings"

// Category is the coarse classification of a model invocation.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryLLM
	CategoryEmbedding
	CategoryTranscription
	CategoryImage
	CategoryOther
)

// String returns the display label for the category.
func (c Category) String() string {
	switch c {
	case CategoryLLM:
		return "LLM"
	case CategoryEmbedding:
		return "Embedding"
	case CategoryTranscription:
		return "Transcription"
	case CategoryImage:
		return "Image"
	case CategoryOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Classify maps a model type string to a Category. It is total: any input,
// including the empty string, yields exactly one category. Matching is
// case-insensitive substring testing, with generation types (TEXT/OBJECT)
// taking precedence unless the type is an embedding or transcription variant.
func Classify(modelType string) Category {
	t := strings.ToUpper(modelType)

	hasText := strings.Contains(t, "TEXT")
	hasObject := strings.Contains(t, "OBJECT")
	hasEmbedding := strings.Contains(t, "EMBEDDING")
	hasTranscription := strings.Contains(t, "TRANSCRIPTION")
	hasImage := strings.Contains(t, "IMAGE")

	switch {
	case (hasText || hasObject) && !hasEmbedding && !hasTranscription:
		return CategoryLLM
	case hasEmbedding:
		return CategoryEmbedding
	case hasTranscription:
		return CategoryTranscription
	case hasImage:
		return CategoryImage
	case !hasText && !hasImage && !hasEmbedding && !hasTranscription:
		return CategoryOther
	default:
		return CategoryUnknown
	}
}
