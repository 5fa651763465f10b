package actionlog

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParsePayloadKinds(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected PayloadKind
	}{
		{"Object", `{"a":1}`, PayloadObject},
		{"Array", `[1,2]`, PayloadArray},
		{"String", `"hello"`, PayloadString},
		{"Number", `42`, PayloadNumber},
		{"Bool", `true`, PayloadBool},
		{"Null", `null`, PayloadNull},
		{"Empty", ``, PayloadAbsent},
		{"Whitespace", `   `, PayloadAbsent},
		{"Invalid", `{broken`, PayloadInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePayload(json.RawMessage(tt.raw))
			if p.Kind != tt.expected {
				t.Errorf("ParsePayload(%q).Kind = %d, want %d", tt.raw, p.Kind, tt.expected)
			}
		})
	}
}

func TestPayloadPretty(t *testing.T) {
	p := ParsePayload(json.RawMessage(`{"model":"gpt-4o","temperature":0.7}`))
	pretty := p.Pretty()
	if !strings.Contains(pretty, "\n") {
		t.Error("object payload should pretty-print across lines")
	}
	if !strings.Contains(pretty, `"model": "gpt-4o"`) {
		t.Errorf("pretty output missing field: %s", pretty)
	}

	// Strings render unquoted.
	if got := ParsePayload(json.RawMessage(`"plain text"`)).Pretty(); got != "plain text" {
		t.Errorf("string payload = %q, want unquoted text", got)
	}

	// Invalid JSON passes through untouched.
	if got := ParsePayload(json.RawMessage(`{broken`)).Pretty(); got != "{broken" {
		t.Errorf("invalid payload = %q, want raw text", got)
	}
}

func TestFormatParamsAudioPlaceholder(t *testing.T) {
	if got := FormatParams(json.RawMessage(`[12,34,56]`)); got != "[audio input]" {
		t.Errorf("array params = %q, want placeholder", got)
	}
	if got := FormatParams(json.RawMessage(`{"prompt":"hi"}`)); got == "[audio input]" {
		t.Error("object params should not render the audio placeholder")
	}
}

func TestFormatResponseArrayPlaceholder(t *testing.T) {
	if got := FormatResponse(json.RawMessage(`[1,2,3]`)); got != "[array response]" {
		t.Errorf("array response = %q, want placeholder", got)
	}
	if got := FormatResponse(json.RawMessage(`"[array]"`)); got != "[array response]" {
		t.Errorf("sentinel response = %q, want placeholder", got)
	}
	if got := FormatResponse(json.RawMessage(`"ordinary text"`)); got != "ordinary text" {
		t.Errorf("string response = %q, want passthrough", got)
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		max      int
		expected string
	}{
		{"Short passes through", "abc", 10, "abc"},
		{"Exact passes through", "abc", 3, "abc"},
		{"Truncated gets ellipsis", "abcdef", 3, "abc…"},
		{"Multibyte safe", "ボイスメモ", 2, "ボイ…"},
		{"Zero max", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clip(tt.in, tt.max); got != tt.expected {
				t.Errorf("Clip(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.expected)
			}
		})
	}
}
