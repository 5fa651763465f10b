package actionlog

import (
	"github.com/tidwall/gjson"

	"github.com/tracefire-io/tracefire/internal/models"
)

// promptPaths etc. are the gjson paths providers have been seen reporting
// token usage under. First match wins.
var (
	promptPaths     = []string{"usage.prompt", "usage.prompt_tokens", "usage.promptTokens", "usage.input_tokens", "tokens.prompt"}
	completionPaths = []string{"usage.completion", "usage.completion_tokens", "usage.completionTokens", "usage.output_tokens", "tokens.completion"}
	totalPaths      = []string{"usage.total", "usage.total_tokens", "usage.totalTokens", "tokens.total"}
)

// ExtractTokenUsage pulls a token breakdown out of an entry. The body-level
// usage block wins when present; otherwise the response payload is probed for
// the usual provider shapes. Returns nil when nothing was reported.
func ExtractTokenUsage(body models.ModelCallBody) *models.TokenUsage {
	if body.Usage != nil {
		u := *body.Usage
		if u.Total == 0 {
			u.Total = u.Prompt + u.Completion
		}
		return &u
	}

	if len(body.Response) == 0 || !gjson.ValidBytes(body.Response) {
		return nil
	}

	doc := gjson.ParseBytes(body.Response)
	u := models.TokenUsage{
		Prompt:     firstInt(doc, promptPaths),
		Completion: firstInt(doc, completionPaths),
		Total:      firstInt(doc, totalPaths),
	}
	if u.Prompt == 0 && u.Completion == 0 && u.Total == 0 {
		return nil
	}
	if u.Total == 0 {
		u.Total = u.Prompt + u.Completion
	}
	return &u
}

func firstInt(doc gjson.Result, paths []string) int64 {
	for _, path := range paths {
		if v := doc.Get(path); v.Exists() {
			return v.Int()
		}
	}
	return 0
}
