package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tracefire-io/tracefire/internal/models"
)

// ActionService is what the viewer needs from a backend: fetch an agent's
// activity and delete single entries. internal/client implements it over HTTP.
type ActionService interface {
	ListActions(ctx context.Context, agentID, roomID string, excludeTypes []string) ([]models.ModelCall, error)
	DeleteAction(ctx context.Context, agentID, logID string) error
}

// revealDelay is how long a near-bottom scroll waits before revealing the
// next page, so a fast scroll-through doesn't pull in everything at once.
const revealDelay = 500 * time.Millisecond

func loadActionsCmd(svc ActionService, opts Options, initial bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		actions, err := svc.ListActions(ctx, opts.AgentID, opts.RoomID, opts.ExcludeTypes)
		if err != nil {
			if initial {
				return FetchErrorMsg{Err: fmt.Errorf("failed to load activity: %w", err)}
			}
			return ErrorMsg{Err: fmt.Errorf("failed to load activity: %w", err)}
		}
		return ActionsLoadedMsg{Actions: actions}
	}
}

func deleteActionCmd(svc ActionService, agentID, logID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := svc.DeleteAction(ctx, agentID, logID); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to delete log: %w", err)}
		}
		return ActionDeletedMsg{LogID: logID}
	}
}

func copyPayloadCmd(label, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to copy %s: %w", label, err)}
		}
		return CopiedMsg{Label: label}
	}
}

func revealTick() tea.Cmd {
	return tea.Tick(revealDelay, func(_ time.Time) tea.Msg {
		return RevealTickMsg{}
	})
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearCopiedMsg{}
	})
}
