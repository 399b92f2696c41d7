package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paybatch-io/paybatch/internal/api"
)

// confirmMode values.
const (
	confirmNone    = 0
	confirmProcess = 1
	confirmDraft   = 2
)

// Model is the root Bubbletea model for the review screen.
type Model struct {
	admin *api.Admin

	// Filter state. A change supersedes any in-flight fetch: fetchSeq is
	// bumped and responses carrying an older seq are dropped.
	startDate string
	endDate   string
	fetchSeq  int

	// UI state
	loading    bool
	processing bool
	confirm    int
	err        error
	notice     string
	width      int
	height     int

	// Child components
	list    *WorkLogList
	filter  *FilterForm
	spinner spinner.Model
}

// NewModel creates the initial review model.
func NewModel(admin *api.Admin, startDate, endDate string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorGreen)

	return Model{
		admin:     admin,
		startDate: startDate,
		endDate:   endDate,
		list:      NewWorkLogList(),
		spinner:   sp,
	}
}

// Init issues the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadEligibleCmd(m.admin, m.fetchSeq, m.startDate, m.endDate),
	)
}

// refetch supersedes any in-flight fetch for the current range.
func (m *Model) refetch() tea.Cmd {
	m.fetchSeq++
	m.loading = true
	m.err = nil
	return tea.Batch(
		m.spinner.Tick,
		loadEligibleCmd(m.admin, m.fetchSeq, m.startDate, m.endDate),
	)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// header(2) + totals(1) + banner(1) + status bar(1) + padding
		pageSize := m.height - 7
		m.list.SetPageSize(pageSize)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading && !m.processing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case eligibleLoadedMsg:
		if msg.Seq != m.fetchSeq {
			// Stale response from a superseded fetch.
			return m, nil
		}
		m.loading = false
		m.list.SetWorkLogs(msg.Logs)
		return m, nil

	case eligibleFailedMsg:
		if msg.Seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		// Kept until the next fetch supersedes it; auto-clearing would
		// leave the empty-state text standing in for a failure.
		m.err = msg.Err
		return m, nil

	case batchDoneMsg:
		m.processing = false
		if msg.Draft {
			m.notice = fmt.Sprintf("Draft batch #%d created: %d worklogs, %.2f. Confirm with 'paybatch admin batch confirm %d'.",
				msg.Batch.ID, msg.Batch.WorkLogCount, msg.Batch.TotalAmount, msg.Batch.ID)
		} else {
			m.notice = fmt.Sprintf("Processed batch #%d: %d worklogs, %.2f paid.",
				msg.Batch.ID, msg.Batch.WorkLogCount, msg.Batch.TotalAmount)
		}
		// The server state changed; the eligible list is stale now.
		return m, tea.Batch(m.refetch(), clearNoticeAfter(5*time.Second))

	case batchFailedMsg:
		m.processing = false
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case clearErrorMsg:
		m.err = nil
		return m, nil

	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Confirm mode captures everything
	if m.confirm != confirmNone {
		return m.handleConfirmKey(msg)
	}

	// Filter overlay captures everything
	if m.filter != nil {
		return m.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, reviewKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, reviewKeys.Up):
		m.list.MoveUp()
	case key.Matches(msg, reviewKeys.Down):
		m.list.MoveDown()
	case key.Matches(msg, reviewKeys.PrevPage):
		m.list.PrevPage()
	case key.Matches(msg, reviewKeys.NextPage):
		m.list.NextPage()

	case key.Matches(msg, reviewKeys.Toggle):
		m.list.Toggle()
	case key.Matches(msg, reviewKeys.All):
		m.list.IncludeAll()

	case key.Matches(msg, reviewKeys.Refresh):
		return m, m.refetch()

	case key.Matches(msg, reviewKeys.Filter):
		m.filter = NewFilterForm(m.startDate, m.endDate)

	case key.Matches(msg, reviewKeys.Process):
		if m.canSubmit() {
			m.confirm = confirmProcess
		}
	case key.Matches(msg, reviewKeys.Draft):
		if m.canSubmit() {
			m.confirm = confirmDraft
		}
	}

	return m, nil
}

// canSubmit reports whether a process/draft action may start. The trigger
// is disabled while a request is already in flight.
func (m Model) canSubmit() bool {
	if m.processing || m.loading {
		return false
	}
	return len(m.list.IncludedIDs()) > 0
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		mode := m.confirm
		m.confirm = confirmNone
		if !m.canSubmit() {
			return m, nil
		}
		m.processing = true
		ids := m.list.IncludedIDs()
		if mode == confirmProcess {
			return m, tea.Batch(m.spinner.Tick, processPaymentCmd(m.admin, ids))
		}
		return m, tea.Batch(m.spinner.Tick, createBatchCmd(m.admin, ids))

	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		m.confirm = confirmNone
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, overlayKeys.Cancel):
		m.filter = nil
		return m, nil

	case key.Matches(msg, overlayKeys.Tab):
		m.filter.FocusNext()
		return m, nil

	case key.Matches(msg, overlayKeys.Apply):
		if err := m.filter.Validate(); err != nil {
			m.err = err
			return m, clearErrorAfter(3 * time.Second)
		}
		m.startDate, m.endDate = m.filter.Values()
		m.filter = nil
		return m, m.refetch()
	}

	m.filter.Update(msg)
	return m, nil
}

// ── View ─────────────────────────────────────────────────────────

// View renders the review screen.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	header := headerStyle.Render("Payment review") + "  " +
		headerRangeStyle.Render(m.startDate+" – "+m.endDate)

	count, total := m.list.Totals()
	totals := fmt.Sprintf("%d of %d included · total ", count, m.list.Len()) +
		totalsStyle.Render(fmt.Sprintf("%.2f", total))

	var body string
	switch {
	case m.loading:
		body = m.spinner.View() + " Loading eligible worklogs..."
	default:
		body = m.list.View(m.width)
	}

	banner := ""
	switch {
	case m.err != nil:
		banner = errorBannerStyle.Render("✗ " + m.err.Error())
	case m.processing:
		banner = confirmBarStyle.Render(m.spinner.View() + " Processing... actions disabled")
	case m.notice != "":
		banner = noticeBannerStyle.Render("✓ " + m.notice)
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		totals,
		"",
		body,
		"",
		banner,
		m.renderStatusBar(),
	)

	if m.filter != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.filter.View())
	}

	return view
}

func (m Model) renderStatusBar() string {
	if m.confirm == confirmProcess {
		count, total := m.list.Totals()
		return confirmBarStyle.Render(fmt.Sprintf("Pay %d worklogs totalling %.2f now? (y/n)", count, total))
	}
	if m.confirm == confirmDraft {
		count, total := m.list.Totals()
		return confirmBarStyle.Render(fmt.Sprintf("Create draft batch over %d worklogs totalling %.2f? (y/n)", count, total))
	}

	hints := []struct{ k, h string }{
		{"Space", "include/exclude"},
		{"a", "all"},
		{"f", "date range"},
		{"p", "process"},
		{"b", "draft"},
		{"r", "refresh"},
		{"q", "quit"},
	}
	var parts []string
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.k)+hintStyle.Render(" "+h.h))
	}
	bar := " " + strings.Join(parts, hintStyle.Render(" · "))
	return statusBarStyle.Width(m.width).Render(bar)
}
