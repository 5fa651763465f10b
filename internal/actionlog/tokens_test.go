package actionlog

import (
	"encoding/json"
	"testing"

	"github.com/tracefire-io/tracefire/internal/models"
)

func TestExtractTokenUsageFromBody(t *testing.T) {
	body := models.ModelCallBody{
		Usage: &models.TokenUsage{Prompt: 120, Completion: 80},
	}
	u := ExtractTokenUsage(body)
	if u == nil {
		t.Fatal("ExtractTokenUsage returned nil with body usage present")
	}
	if u.Prompt != 120 || u.Completion != 80 || u.Total != 200 {
		t.Errorf("got %+v, want prompt 120 completion 80 total 200", u)
	}
}

func TestExtractTokenUsageFromResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
		prompt   int64
		total    int64
	}{
		{
			name:     "OpenAI snake_case",
			response: `{"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`,
			prompt:   10,
			total:    15,
		},
		{
			name:     "Camel case",
			response: `{"usage":{"promptTokens":7,"completionTokens":3}}`,
			prompt:   7,
			total:    10,
		},
		{
			name:     "Nested tokens block",
			response: `{"tokens":{"prompt":4,"completion":4,"total":8}}`,
			prompt:   4,
			total:    8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := ExtractTokenUsage(models.ModelCallBody{Response: json.RawMessage(tt.response)})
			if u == nil {
				t.Fatal("ExtractTokenUsage returned nil")
			}
			if u.Prompt != tt.prompt {
				t.Errorf("Prompt = %d, want %d", u.Prompt, tt.prompt)
			}
			if u.Total != tt.total {
				t.Errorf("Total = %d, want %d", u.Total, tt.total)
			}
		})
	}
}

func TestExtractTokenUsageAbsent(t *testing.T) {
	if u := ExtractTokenUsage(models.ModelCallBody{}); u != nil {
		t.Errorf("empty body: got %+v, want nil", u)
	}
	if u := ExtractTokenUsage(models.ModelCallBody{Response: json.RawMessage(`{"text":"hi"}`)}); u != nil {
		t.Errorf("response without usage: got %+v, want nil", u)
	}
	if u := ExtractTokenUsage(models.ModelCallBody{Response: json.RawMessage(`{broken`)}); u != nil {
		t.Errorf("invalid response: got %+v, want nil", u)
	}
}
