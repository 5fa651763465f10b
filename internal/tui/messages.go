package tui

import "github.com/tracefire-io/tracefire/internal/models"

// ActionsLoadedMsg carries a fetched activity list.
type ActionsLoadedMsg struct {
	Actions []models.ModelCall
}

// ActionDeletedMsg signals a log entry was deleted server-side.
type ActionDeletedMsg struct {
	LogID string
}

// ErrorMsg carries an error to display in the status bar.
type ErrorMsg struct {
	Err error
}

// FetchErrorMsg carries a failed initial fetch; unlike ErrorMsg it replaces
// the whole view with an error panel instead of the status bar.
type FetchErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// RevealTickMsg fires when the delayed near-bottom reveal elapses.
type RevealTickMsg struct{}

// CopiedMsg signals a payload was copied to the clipboard.
type CopiedMsg struct {
	Label string
}

// ClearCopiedMsg clears the "Copied" indicator.
type ClearCopiedMsg struct{}
