package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tracefire-io/tracefire/internal/actionlog"
	"github.com/tracefire-io/tracefire/internal/models"
)

// Model is the root Bubbletea model for the activity viewer.
type Model struct {
	svc  ActionService
	opts Options

	// Fetched and derived data
	entries  []models.ModelCall
	filtered []models.ModelCall

	// Filter state
	filterIdx int
	search    textinput.Model
	searching bool

	// Presentation state
	pager    *actionlog.Pager
	cardList *CardList
	detail   *DetailView
	spinner  spinner.Model

	// Fetch lifecycle
	loaded  bool
	loadErr error

	// Confirm mode
	confirmMode  int
	confirmLogID string

	// Status display
	err    error
	copied string

	activeOverlay int
	width         int
	height        int

	// Program reference for goroutine Send()
	program *programRef
}

// NewModel creates the initial viewer model.
func NewModel(svc ActionService, opts Options, program *programRef) Model {
	search := textinput.New()
	search.Placeholder = "search activity"
	search.Prompt = "/ "

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(colorCyan)),
	)

	return Model{
		svc:      svc,
		opts:     opts,
		search:   search,
		spinner:  sp,
		cardList: NewCardList(),
		detail:   NewDetailView(),
		program:  program,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadActionsCmd(m.svc, m.opts, true),
	)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ActionsLoadedMsg:
		m.entries = msg.Actions
		m.loaded = true
		m.loadErr = nil
		m.refilter(false)
		return m, nil

	case FetchErrorMsg:
		m.loadErr = msg.Err
		return m, nil

	case ActionDeletedMsg:
		m.confirmMode = confirmNone
		if e := m.detail.Entry(); e != nil && e.ID == msg.LogID {
			m.detail.Clear()
		}
		return m, loadActionsCmd(m.svc, m.opts, false)

	case RevealTickMsg:
		m.pager.FinishReveal()
		m.rebuildRows()
		return m, nil

	case ErrorMsg:
		m.confirmMode = confirmNone
		m.err = msg.Err
		cmds = append(cmds, clearErrorAfter(5*time.Second))
		return m, tea.Batch(cmds...)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case CopiedMsg:
		m.copied = msg.Label
		return m, clearCopiedAfter(2 * time.Second)

	case ClearCopiedMsg:
		m.copied = ""
		return m, nil
	}

	return m, nil
}

// ── Key handling ─────────────────────────────────────────────────

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Confirm mode captures everything
	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}

	// Help overlay: any bound close key dismisses it
	if m.activeOverlay == overlayHelp {
		if key.Matches(msg, confirmKeys.Cancel) || key.Matches(msg, listKeys.Help) || key.Matches(msg, listKeys.Quit) {
			m.activeOverlay = overlayNone
		}
		return nil
	}

	// Search input captures typing
	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.detail.Active() {
		return m.handleDetailKey(msg)
	}

	// Global shortcuts
	switch {
	case key.Matches(msg, listKeys.Quit):
		return m.doQuit()
	case key.Matches(msg, listKeys.Help):
		m.activeOverlay = overlayHelp
		return nil
	case key.Matches(msg, listKeys.Search):
		m.searching = true
		m.updateDimensions()
		return m.search.Focus()
	case key.Matches(msg, listKeys.Refresh):
		return loadActionsCmd(m.svc, m.opts, !m.loaded)
	}

	// Filter tabs
	switch {
	case key.Matches(msg, tabKeys.Tab1):
		return m.setFilter(0)
	case key.Matches(msg, tabKeys.Tab2):
		return m.setFilter(1)
	case key.Matches(msg, tabKeys.Tab3):
		return m.setFilter(2)
	case key.Matches(msg, tabKeys.Tab4):
		return m.setFilter(3)
	case key.Matches(msg, tabKeys.Tab5):
		return m.setFilter(4)
	case key.Matches(msg, tabKeys.Prev):
		return m.setFilter(m.filterIdx - 1)
	case key.Matches(msg, tabKeys.Next):
		return m.setFilter(m.filterIdx + 1)
	}

	return m.handleListKey(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, listKeys.Up):
		m.cardList.MoveUp()
	case key.Matches(msg, listKeys.Down):
		m.cardList.MoveDown()
		return m.maybeReveal()
	case key.Matches(msg, listKeys.PageUp):
		for i := 0; i < 5; i++ {
			m.cardList.MoveUp()
		}
	case key.Matches(msg, listKeys.PageDown):
		for i := 0; i < 5; i++ {
			m.cardList.MoveDown()
		}
		return m.maybeReveal()
	case key.Matches(msg, listKeys.Top):
		m.cardList.MoveTop()
	case key.Matches(msg, listKeys.Bottom):
		m.cardList.MoveBottom()
		return m.maybeReveal()
	case key.Matches(msg, listKeys.Enter):
		if m.cardList.OnLoadMore() {
			// Explicit load more skips the delayed-reveal gate.
			m.pager.Advance()
			m.rebuildRows()
			return nil
		}
		if e := m.cardList.SelectedEntry(); e != nil {
			m.detail.SetEntry(e, time.Now())
		}
	case key.Matches(msg, listKeys.Delete):
		if e := m.cardList.SelectedEntry(); e != nil && e.ID != "" {
			m.confirmMode = confirmDelete
			m.confirmLogID = e.ID
		}
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, searchKeys.Accept):
		m.searching = false
		m.search.Blur()
		m.updateDimensions()
		return nil
	case key.Matches(msg, searchKeys.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.updateDimensions()
		m.refilter(true)
		return nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.refilter(true)
	}
	return cmd
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, detailKeys.Back):
		m.detail.Clear()
	case key.Matches(msg, detailKeys.Up):
		m.detail.ScrollUp()
	case key.Matches(msg, detailKeys.Down):
		m.detail.ScrollDown()
	case key.Matches(msg, detailKeys.PageUp):
		m.detail.PageUp()
	case key.Matches(msg, detailKeys.PageDown):
		m.detail.PageDown()
	case key.Matches(msg, detailKeys.CopyParams):
		if e := m.detail.Entry(); e != nil {
			return copyPayloadCmd("params", actionlog.FormatParams(e.Body.Params))
		}
	case key.Matches(msg, detailKeys.CopyResponse):
		if e := m.detail.Entry(); e != nil {
			return copyPayloadCmd("response", actionlog.FormatResponse(e.Body.Response))
		}
	case key.Matches(msg, detailKeys.Delete):
		if e := m.detail.Entry(); e != nil && e.ID != "" {
			m.confirmMode = confirmDelete
			m.confirmLogID = e.ID
		}
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		if m.confirmMode == confirmDelete {
			m.confirmMode = confirmNone
			return deleteActionCmd(m.svc, m.opts.AgentID, m.confirmLogID)
		}
	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		m.confirmMode = confirmNone
	}
	return nil
}

// ── Filter plumbing ──────────────────────────────────────────────

func (m *Model) setFilter(idx int) tea.Cmd {
	if idx < 0 || idx >= len(actionlog.Filters) || idx == m.filterIdx {
		return nil
	}
	m.filterIdx = idx
	m.refilter(true)
	return nil
}

// refilter recomputes the filtered list. reset shrinks the reveal window back
// to one page and rewinds the cursor (filter or query changed); otherwise the
// window and cursor survive a refetch.
func (m *Model) refilter(reset bool) {
	m.filtered = actionlog.Filter(m.entries, actionlog.Filters[m.filterIdx], m.search.Value())
	if m.pager == nil {
		m.pager = actionlog.NewPager(m.opts.PageSize, len(m.filtered))
	} else if reset {
		m.pager.Reset(len(m.filtered))
	} else {
		m.pager.Retarget(len(m.filtered))
	}
	if reset {
		m.cardList.ResetCursor()
	}
	m.rebuildRows()
}

func (m *Model) rebuildRows() {
	visible := m.filtered[:m.pager.Visible()]
	groups := actionlog.GroupByDate(visible)
	m.cardList.SetRows(groups, m.pager.Total()-m.pager.Visible())
}

func (m *Model) maybeReveal() tea.Cmd {
	if m.cardList.NearBottom() && m.pager.BeginReveal() {
		return revealTick()
	}
	return nil
}

// doQuit clears the program ref so late goroutine sends hit a gone program.
func (m *Model) doQuit() tea.Cmd {
	m.program.Clear()
	return tea.Quit
}

// ── Dimensions ───────────────────────────────────────────────────

func (m *Model) searchVisible() bool {
	return m.searching || m.search.Value() != ""
}

func (m *Model) bodyHeight() int {
	h := m.height - 2 // header + status bar
	if m.searchVisible() {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) updateDimensions() {
	m.cardList.SetSize(m.width, m.bodyHeight())
	m.detail.SetSize(m.width, m.bodyHeight())
	m.search.Width = m.width - 6
}

// ── View ─────────────────────────────────────────────────────────

// View renders the viewer.
func (m Model) View() string {
	if m.width < 60 || m.height < 15 {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					"Need 60x15, have "+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	if m.loadErr != nil {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				lipgloss.NewStyle().Foreground(colorRed).Bold(true).Render("Could not load activity"),
				lipgloss.NewStyle().Foreground(colorDim).Render(m.loadErr.Error()),
				"",
				lipgloss.NewStyle().Foreground(colorDim).Render("r retry · q quit"),
			))
	}

	if !m.loaded {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorDim).
			Render(m.spinner.View() + " Loading activity...")
	}

	header := renderHeader(m.opts.AgentID, m.filterIdx, m.pagerVisible(), m.pagerTotal(), m.width)

	sections := []string{header}
	if m.searchVisible() {
		sections = append(sections, " "+m.search.View())
	}

	body := m.renderBody()
	bodyStyle := lipgloss.NewStyle().Width(m.width).Height(m.bodyHeight())
	sections = append(sections, bodyStyle.Render(body))

	sections = append(sections, renderStatusBar(&m, m.width))

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.activeOverlay == overlayHelp {
		view = renderOverlay(view, renderHelp(m.width), m.width, m.height)
	}
	return view
}

func (m Model) renderBody() string {
	if m.detail.Active() {
		return m.detail.View(time.Now())
	}

	if len(m.entries) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(colorDim).
			Render("\nNo model activity yet.")
	}

	if len(m.filtered) == 0 {
		label := actionlog.Filters[m.filterIdx].Label()
		msg := fmt.Sprintf("\nNo %s activity", label)
		if q := m.search.Value(); q != "" {
			msg = fmt.Sprintf("\nNo matches for %q in %s", q, label)
		}
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(colorDim).
			Render(msg)
	}

	return m.cardList.View(time.Now())
}

func (m Model) pagerVisible() int {
	if m.pager == nil {
		return 0
	}
	return m.pager.Visible()
}

func (m Model) pagerTotal() int {
	if m.pager == nil {
		return 0
	}
	return m.pager.Total()
}
