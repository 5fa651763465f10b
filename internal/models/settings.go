package models

// Settings represents the viewer configuration.
// This corresponds to ~/.tracefire/settings.yaml; flags override it.
type Settings struct {
	Version      int      `yaml:"version"`
	ServerURL    string   `yaml:"server_url"`
	AgentID      string   `yaml:"agent_id"`
	RoomID       string   `yaml:"room_id"`
	ExcludeTypes []string `yaml:"exclude_types"`
	PageSize     int      `yaml:"page_size"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:   1,
		ServerURL: "http://127.0.0.1:7416",
	}
}
