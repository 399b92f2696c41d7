package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/paybatch-io/paybatch/internal/models"
)

// WorkLogList is the eligible-worklog list with per-row exclusion and
// client-side paging over the full fetched set.
type WorkLogList struct {
	logs     []models.WorkLog
	excluded map[int64]bool
	cursor   int
	pageSize int
}

// NewWorkLogList creates an empty list.
func NewWorkLogList() *WorkLogList {
	return &WorkLogList{
		excluded: map[int64]bool{},
		pageSize: 10,
	}
}

// SetWorkLogs replaces the result set. Exclusion and cursor state belong
// to the previous set, so both reset.
func (wl *WorkLogList) SetWorkLogs(logs []models.WorkLog) {
	wl.logs = logs
	wl.excluded = map[int64]bool{}
	wl.cursor = 0
}

// SetPageSize sets the number of rows per page.
func (wl *WorkLogList) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	wl.pageSize = n
}

// Len returns the size of the fetched set.
func (wl *WorkLogList) Len() int {
	return len(wl.logs)
}

// Selected returns the worklog under the cursor, or nil.
func (wl *WorkLogList) Selected() *models.WorkLog {
	if wl.cursor < 0 || wl.cursor >= len(wl.logs) {
		return nil
	}
	return &wl.logs[wl.cursor]
}

// MoveUp moves the cursor up.
func (wl *WorkLogList) MoveUp() {
	if wl.cursor > 0 {
		wl.cursor--
	}
}

// MoveDown moves the cursor down.
func (wl *WorkLogList) MoveDown() {
	if wl.cursor < len(wl.logs)-1 {
		wl.cursor++
	}
}

// PrevPage jumps back one page.
func (wl *WorkLogList) PrevPage() {
	wl.cursor -= wl.pageSize
	if wl.cursor < 0 {
		wl.cursor = 0
	}
}

// NextPage jumps forward one page.
func (wl *WorkLogList) NextPage() {
	wl.cursor += wl.pageSize
	if wl.cursor > len(wl.logs)-1 {
		wl.cursor = len(wl.logs) - 1
	}
	if wl.cursor < 0 {
		wl.cursor = 0
	}
}

// Page returns the current page index and total page count.
func (wl *WorkLogList) Page() (current, total int) {
	if len(wl.logs) == 0 {
		return 0, 0
	}
	return wl.cursor/wl.pageSize + 1, (len(wl.logs) + wl.pageSize - 1) / wl.pageSize
}

// Toggle flips the exclusion state of the worklog under the cursor.
func (wl *WorkLogList) Toggle() {
	w := wl.Selected()
	if w == nil {
		return
	}
	if wl.excluded[w.ID] {
		delete(wl.excluded, w.ID)
	} else {
		wl.excluded[w.ID] = true
	}
}

// IncludeAll clears all exclusions.
func (wl *WorkLogList) IncludeAll() {
	wl.excluded = map[int64]bool{}
}

// IncludedIDs returns the ids of the non-excluded worklogs, in display
// order.
func (wl *WorkLogList) IncludedIDs() []int64 {
	ids := make([]int64, 0, len(wl.logs))
	for _, w := range wl.logs {
		if !wl.excluded[w.ID] {
			ids = append(ids, w.ID)
		}
	}
	return ids
}

// Totals returns the count and amount of the non-excluded worklogs.
func (wl *WorkLogList) Totals() (count int, total float64) {
	return models.IncludedTotals(wl.logs, wl.excluded)
}

// View renders the current page.
func (wl *WorkLogList) View(width int) string {
	if len(wl.logs) == 0 {
		return emptyStyle.Render("No payment-eligible worklogs in this range.")
	}

	start := (wl.cursor / wl.pageSize) * wl.pageSize
	end := start + wl.pageSize
	if end > len(wl.logs) {
		end = len(wl.logs)
	}

	var lines []string
	for i := start; i < end; i++ {
		w := wl.logs[i]

		check := includedMarkStyle.Render("[✓]")
		if wl.excluded[w.ID] {
			check = excludedMarkStyle.Render("[ ]")
		}

		name := w.FreelancerName
		if name == "" {
			name = fmt.Sprintf("freelancer %d", w.FreelancerID)
		}
		row := fmt.Sprintf("%s #%-5d %-34s %-18s %9.2f", check, w.ID, w.TaskTitle, name, w.TotalAmount)

		maxWidth := width - 2
		if maxWidth > 0 {
			row = ansi.Truncate(row, maxWidth, "…")
		}

		style := rowStyle
		if wl.excluded[w.ID] {
			style = excludedRowStyle
		}
		line := style.Render(row)
		if i == wl.cursor {
			line = selectedRowStyle.Width(width).Render(row)
		}
		lines = append(lines, "  "+line)
	}

	current, total := wl.Page()
	if total > 1 {
		lines = append(lines, pageStyle.Render(fmt.Sprintf("  page %d/%d (%d items)", current, total, len(wl.logs))))
	}

	return strings.Join(lines, "\n")
}
