package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListActions(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"actions":[
			{"id":"a1","type":"MODEL_USED","createdAt":1700000000000,"body":{"modelType":"TEXT_LARGE","modelKey":"gpt-4o"}},
			{"id":"a2","type":"MODEL_USED","createdAt":1700000060000,"body":{"modelType":"TRANSCRIPTION","modelKey":"whisper-1"}}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	actions, err := c.ListActions(context.Background(), "agent-1", "room-9", []string{"TEXT_EMBEDDING", "INTERNAL"})
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}

	if gotPath != "/v1/agents/agent-1/actions" {
		t.Errorf("path = %q", gotPath)
	}
	if got := gotQuery["room"]; len(got) != 1 || got[0] != "room-9" {
		t.Errorf("room query = %v", got)
	}
	if got := gotQuery["exclude"]; len(got) != 2 {
		t.Errorf("exclude query = %v, want two values", got)
	}

	if len(actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(actions))
	}
	if actions[0].ID != "a1" || actions[0].Body.ModelKey != "gpt-4o" {
		t.Errorf("first action = %+v", actions[0])
	}
}

func TestDeleteAction(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.DeleteAction(context.Background(), "agent-1", "log-42"); err != nil {
		t.Fatalf("DeleteAction: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", gotMethod)
	}
	if gotPath != "/v1/agents/agent-1/logs/log-42" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestServerErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"log not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteAction(context.Background(), "agent-1", "missing")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if got := err.Error(); !strings.Contains(got, "log not found") {
		t.Errorf("error %q should carry the server message", got)
	}
}
