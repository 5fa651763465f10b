package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tracefire-io/tracefire/internal/actionlog"
	"github.com/tracefire-io/tracefire/internal/client"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List recorded model invocations",
	Long: `List an agent's recorded model invocations without the TUI,
for scripts and quick inspection.`,
	RunE: runActions,
}

func init() {
	addViewFlags(actionsCmd)
	actionsCmd.Flags().Bool("json", false, "emit raw JSON instead of formatted lines")
}

func runActions(cmd *cobra.Command, args []string) error {
	serverURL, opts, err := resolveViewOptions(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	actions, err := client.New(serverURL).ListActions(ctx, opts.AgentID, opts.RoomID, opts.ExcludeTypes)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(actions)
	}

	if len(actions) == 0 {
		fmt.Println(styleLabel.Render("No model activity recorded."))
		return nil
	}

	now := time.Now()
	for _, a := range actions {
		cat := actionlog.Classify(a.Body.ModelType)
		name := a.Body.ModelKey
		if name == "" {
			name = cat.String()
		}

		line := fmt.Sprintf("%s  %-28s %-18s %s",
			styleLabel.Render(actionlog.RelativeTimeMillis(a.CreatedAt, now)),
			styleValue.Render(name),
			styleAccent.Render(cat.String()),
			styleLabel.Render(a.ID),
		)
		if u := actionlog.ExtractTokenUsage(a.Body); u != nil && u.Total > 0 {
			line += styleLabel.Render(fmt.Sprintf("  %d tok", u.Total))
		}
		fmt.Println(line)
	}
	fmt.Println(styleLabel.Render(fmt.Sprintf("%d entries", len(actions))))
	return nil
}
