// Package tui implements the interactive activity log viewer.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Options configure which agent's activity the viewer shows.
type Options struct {
	AgentID      string
	RoomID       string
	ExcludeTypes []string
	PageSize     int
}

// Run launches the activity log viewer against the given service.
func Run(svc ActionService, opts Options) error {
	ref := &programRef{}
	model := NewModel(svc, opts, ref)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	ref.Set(p)

	_, err := p.Run()
	return err
}
