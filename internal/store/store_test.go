package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tracefire-io/tracefire/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tracefire.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestInsertAndList(t *testing.T) {
	s := openTestStore(t)

	calls := []models.ModelCall{
		{
			CreatedAt: 1700000000000,
			RoomID:    "room-1",
			Body: models.ModelCallBody{
				ModelType: "TEXT_LARGE",
				ModelKey:  "gpt-4o",
				Response:  json.RawMessage(`{"usage":{"prompt_tokens":10,"completion_tokens":5,"total_tokens":15}}`),
			},
		},
		{
			CreatedAt: 1700000060000,
			RoomID:    "room-1",
			Body:      models.ModelCallBody{ModelType: "TEXT_EMBEDDING", ModelKey: "embed-3"},
		},
		{
			CreatedAt: 1700000120000,
			RoomID:    "room-2",
			Body:      models.ModelCallBody{ModelType: "IMAGE_GENERATION", ModelKey: "dall-e-3"},
		},
	}
	for _, c := range calls {
		if _, err := s.Insert("agent-1", c); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	// All rooms, nothing excluded: creation order.
	got, err := s.List("agent-1", "", nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	if got[0].Body.ModelKey != "gpt-4o" || got[2].Body.ModelKey != "dall-e-3" {
		t.Errorf("records out of creation order: %s, %s", got[0].Body.ModelKey, got[2].Body.ModelKey)
	}
	if got[0].ID == "" {
		t.Error("Insert did not assign an ID")
	}
	if u := got[0].Body.Usage; u == nil || u.Total != 15 {
		t.Errorf("token usage not persisted: %+v", got[0].Body.Usage)
	}

	// Room narrowing.
	got, err = s.List("agent-1", "room-2", nil)
	if err != nil {
		t.Fatalf("List(room-2): %v", err)
	}
	if len(got) != 1 || got[0].Body.ModelType != "IMAGE_GENERATION" {
		t.Errorf("room filter: got %+v", got)
	}

	// Server-side category exclusion.
	got, err = s.List("agent-1", "", []string{"TEXT_EMBEDDING"})
	if err != nil {
		t.Fatalf("List(exclude): %v", err)
	}
	for _, c := range got {
		if c.Body.ModelType == "TEXT_EMBEDDING" {
			t.Error("excluded model type leaked through List")
		}
	}
	if len(got) != 2 {
		t.Errorf("got %d records with exclusion, want 2", len(got))
	}

	// Unknown agent is empty, not an error.
	got, err = s.List("agent-nobody", "", nil)
	if err != nil {
		t.Fatalf("List(unknown agent): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unknown agent returned %d records", len(got))
	}
}

func TestInsertSanitizesParams(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Insert("agent-1", models.ModelCall{
		CreatedAt: 1700000000000,
		Body: models.ModelCallBody{
			ModelType: "TEXT_SMALL",
			Params:    json.RawMessage(`{"prompt":"hi","api_key":"sk-secret","temperature":0.2}`),
		},
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := s.List("agent-1", "", nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != id {
		t.Fatalf("unexpected records: %+v", got)
	}

	var params map[string]interface{}
	if err := json.Unmarshal(got[0].Body.Params, &params); err != nil {
		t.Fatalf("params not valid JSON: %v", err)
	}
	if _, leaked := params["api_key"]; leaked {
		t.Error("api_key survived sanitization")
	}
	if params["prompt"] != "hi" {
		t.Errorf("legitimate field lost: %+v", params)
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Insert("agent-1", models.ModelCall{
		CreatedAt: 1700000000000,
		Body:      models.ModelCallBody{ModelType: "TEXT_LARGE"},
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := s.Delete("agent-1", id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete("agent-1", id); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}

	// Deleting under the wrong agent must not touch other agents' records.
	id2, _ := s.Insert("agent-2", models.ModelCall{Body: models.ModelCallBody{ModelType: "TEXT_LARGE"}})
	if err := s.Delete("agent-1", id2); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-agent delete: got %v, want ErrNotFound", err)
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.Insert("agent-1", models.ModelCall{
			CreatedAt: int64(1700000000000 + i),
			Body: models.ModelCallBody{
				ModelType: "TEXT_LARGE",
				ModelKey:  "gpt-4o",
				Usage:     &models.TokenUsage{Prompt: 10, Completion: 10, Total: 20},
			},
		})
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if _, err := s.Insert("agent-1", models.ModelCall{
		Body: models.ModelCallBody{ModelType: "TRANSCRIPTION", ModelKey: "whisper-1"},
	}); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	stats, err := s.Stats("agent-1")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalCalls != 4 {
		t.Errorf("TotalCalls = %d, want 4", stats.TotalCalls)
	}
	if stats.TotalTokens != 60 {
		t.Errorf("TotalTokens = %d, want 60", stats.TotalTokens)
	}
	if len(stats.Models) != 2 {
		t.Fatalf("got %d model groups, want 2", len(stats.Models))
	}
	if stats.Models[0].ModelKey != "gpt-4o" || stats.Models[0].Calls != 3 {
		t.Errorf("top model = %+v, want gpt-4o with 3 calls", stats.Models[0])
	}
}

func TestIngestJSONL(t *testing.T) {
	s := openTestStore(t)

	path := filepath.Join(t.TempDir(), "calls.jsonl")
	content := `{"agentId":"agent-1","type":"MODEL_USED","createdAt":1700000000000,"body":{"modelType":"TEXT_LARGE","modelKey":"gpt-4o"}}
not json at all
{"agentId":"","body":{"modelType":"TEXT_LARGE"}}
{"agentId":"agent-1","type":"MODEL_USED","createdAt":1700000060000,"body":{"modelType":"TRANSCRIPTION","modelKey":"whisper-1"}}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	n, err := s.Ingest(path)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if n != 2 {
		t.Errorf("ingested %d records, want 2 (malformed lines skipped)", n)
	}

	got, err := s.List("agent-1", "", nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d records after ingest, want 2", len(got))
	}
}
