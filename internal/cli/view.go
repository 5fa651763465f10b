package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracefire-io/tracefire/internal/client"
	"github.com/tracefire-io/tracefire/internal/config"
	"github.com/tracefire-io/tracefire/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the activity log viewer",
	Long: `Open the full-screen activity log viewer for an agent.

The agent, room and server come from flags, falling back to
~/.tracefire/settings.yaml.`,
	RunE: runView,
}

func init() {
	addViewFlags(viewCmd)
}

// addViewFlags registers the viewer flags; shared with the root command so
// bare `tracefire` accepts them too.
func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().String("server", "", "service base URL (default from settings)")
	cmd.Flags().String("agent", "", "agent ID to inspect (default from settings)")
	cmd.Flags().String("room", "", "restrict to one room")
	cmd.Flags().StringSlice("exclude", nil, "model types to exclude server-side")
	cmd.Flags().Int("page-size", 0, "entries revealed per pagination step")
}

// resolveViewOptions merges flags over the settings file.
func resolveViewOptions(cmd *cobra.Command) (string, tui.Options, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return "", tui.Options{}, fmt.Errorf("failed to load settings: %w", err)
	}

	serverURL, _ := cmd.Flags().GetString("server")
	if serverURL == "" {
		serverURL = settings.ServerURL
	}
	agentID, _ := cmd.Flags().GetString("agent")
	if agentID == "" {
		agentID = settings.AgentID
	}
	roomID, _ := cmd.Flags().GetString("room")
	if roomID == "" {
		roomID = settings.RoomID
	}
	excludeTypes, _ := cmd.Flags().GetStringSlice("exclude")
	if len(excludeTypes) == 0 {
		excludeTypes = settings.ExcludeTypes
	}
	pageSize, _ := cmd.Flags().GetInt("page-size")
	if pageSize <= 0 {
		pageSize = settings.PageSize
	}

	if agentID == "" {
		return "", tui.Options{}, fmt.Errorf("no agent ID: pass --agent or set agent_id in settings")
	}

	return serverURL, tui.Options{
		AgentID:      agentID,
		RoomID:       roomID,
		ExcludeTypes: excludeTypes,
		PageSize:     pageSize,
	}, nil
}

func runView(cmd *cobra.Command, args []string) error {
	serverURL, opts, err := resolveViewOptions(cmd)
	if err != nil {
		return err
	}
	return tui.Run(client.New(serverURL), opts)
}
