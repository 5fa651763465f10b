package actionlog

import (
	"bytes"
	"encoding/json"
	"strings"
)

// PayloadKind tags the JSON shape of a params or response payload.
type PayloadKind int

const (
	PayloadAbsent PayloadKind = iota
	PayloadNull
	PayloadObject
	PayloadArray
	PayloadString
	PayloadNumber
	PayloadBool
	PayloadInvalid
)

// Payload wraps an arbitrary JSON value so display code can branch on shape
// instead of re-parsing. The agent runtime emits whatever the provider
// returned, so any of the kinds can show up.
type Payload struct {
	Kind PayloadKind
	raw  json.RawMessage
}

// arraySentinel is the literal string some runtimes substitute for an array
// response before the entry ever reaches us.
const arraySentinel = "[array]"

// Preview lengths for card rendering; the detail view shows the full text.
const (
	ParamsPreviewLen   = 200
	ResponsePreviewLen = 300
)

// ParsePayload classifies a raw JSON value.
func ParsePayload(raw json.RawMessage) Payload {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Payload{Kind: PayloadAbsent}
	}
	if !json.Valid(trimmed) {
		return Payload{Kind: PayloadInvalid, raw: trimmed}
	}

	p := Payload{raw: trimmed}
	switch trimmed[0] {
	case '{':
		p.Kind = PayloadObject
	case '[':
		p.Kind = PayloadArray
	case '"':
		p.Kind = PayloadString
	case 't', 'f':
		p.Kind = PayloadBool
	case 'n':
		p.Kind = PayloadNull
	default:
		p.Kind = PayloadNumber
	}
	return p
}

// Pretty renders the payload as indented text. Strings render unquoted,
// invalid JSON renders as-is so nothing is ever hidden.
func (p Payload) Pretty() string {
	switch p.Kind {
	case PayloadAbsent:
		return ""
	case PayloadNull:
		return "null"
	case PayloadString:
		var s string
		if err := json.Unmarshal(p.raw, &s); err != nil {
			return string(p.raw)
		}
		return s
	case PayloadInvalid:
		return string(p.raw)
	default:
		var buf bytes.Buffer
		if err := json.Indent(&buf, p.raw, "", "  "); err != nil {
			return string(p.raw)
		}
		return buf.String()
	}
}

// FormatParams renders request parameters for display. Array-shaped params
// are the transcription audio input and render as a placeholder instead of a
// raw sample dump.
func FormatParams(raw json.RawMessage) string {
	p := ParsePayload(raw)
	if p.Kind == PayloadArray {
		return "[audio input]"
	}
	return p.Pretty()
}

// FormatResponse renders a response payload for display. Genuine JSON arrays
// and the upstream arraySentinel string both render as a placeholder.
func FormatResponse(raw json.RawMessage) string {
	p := ParsePayload(raw)
	if p.Kind == PayloadArray {
		return "[array response]"
	}
	text := p.Pretty()
	if p.Kind == PayloadString && strings.TrimSpace(text) == arraySentinel {
		return "[array response]"
	}
	return text
}

// Clip truncates s to at most max runes, appending an ellipsis when anything
// was cut. It never splits a rune.
func Clip(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
