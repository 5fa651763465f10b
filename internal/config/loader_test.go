package config

import (
	"path/filepath"
	"testing"

	"github.com/tracefire-io/tracefire/internal/models"
)

func TestSaveAndLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	in := &models.Settings{
		Version:      1,
		ServerURL:    "http://example.test:7416",
		AgentID:      "agent-1",
		ExcludeTypes: []string{"TEXT_EMBEDDING"},
		PageSize:     25,
	}
	if err := SaveYAML(path, in); err != nil {
		t.Fatalf("SaveYAML: %v", err)
	}

	var out models.Settings
	if err := LoadYAML(path, &out); err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if out.ServerURL != in.ServerURL || out.AgentID != in.AgentID || out.PageSize != 25 {
		t.Errorf("roundtrip mismatch: %+v", out)
	}
	if len(out.ExcludeTypes) != 1 || out.ExcludeTypes[0] != "TEXT_EMBEDDING" {
		t.Errorf("exclude types lost: %v", out.ExcludeTypes)
	}
}

func TestLoadYAMLOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "settings.yaml")

	s, err := LoadYAMLOrDefault(missing, models.NewSettings)
	if err != nil {
		t.Fatalf("LoadYAMLOrDefault: %v", err)
	}
	if s.ServerURL == "" {
		t.Error("defaults missing server URL")
	}

	if err := SaveYAML(missing, &models.Settings{AgentID: "agent-2"}); err != nil {
		t.Fatalf("SaveYAML: %v", err)
	}
	s, err = LoadYAMLOrDefault(missing, models.NewSettings)
	if err != nil {
		t.Fatalf("LoadYAMLOrDefault(existing): %v", err)
	}
	if s.AgentID != "agent-2" {
		t.Errorf("loaded AgentID = %q, want agent-2", s.AgentID)
	}
}
