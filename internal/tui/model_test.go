package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paybatch-io/paybatch/internal/models"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testModel() Model {
	m := NewModel(nil, "2026-08-01", "2026-08-25")
	m.width = 80
	m.height = 24
	return m
}

func loadedModel() Model {
	m := testModel()
	m.list.SetWorkLogs(eligibleLogs())
	return m
}

func TestStaleFetchDiscarded(t *testing.T) {
	m := testModel()
	m.loading = true
	m.fetchSeq = 2

	// Response from a superseded fetch arrives late.
	updated, _ := m.Update(eligibleLoadedMsg{Seq: 1, Logs: eligibleLogs()})
	m = updated.(Model)

	if !m.loading {
		t.Error("stale response cleared the loading state")
	}
	if m.list.Len() != 0 {
		t.Errorf("stale response populated the list: %d rows", m.list.Len())
	}

	// The current fetch's response is applied.
	updated, _ = m.Update(eligibleLoadedMsg{Seq: 2, Logs: eligibleLogs()})
	m = updated.(Model)

	if m.loading {
		t.Error("loading still set after current response")
	}
	if m.list.Len() != 3 {
		t.Errorf("list has %d rows, want 3", m.list.Len())
	}
}

func TestStaleErrorDiscarded(t *testing.T) {
	m := testModel()
	m.loading = true
	m.fetchSeq = 3

	updated, _ := m.Update(eligibleFailedMsg{Seq: 2, Err: errors.New("timeout")})
	m = updated.(Model)

	if m.err != nil {
		t.Errorf("stale error surfaced: %v", m.err)
	}
	if !m.loading {
		t.Error("stale error cleared the loading state")
	}
}

func TestFetchErrorPersistsUntilRefetch(t *testing.T) {
	m := testModel()
	m.loading = true
	m.fetchSeq = 1

	updated, cmd := m.Update(eligibleFailedMsg{Seq: 1, Err: errors.New("timeout")})
	m = updated.(Model)

	if m.err == nil {
		t.Fatal("fetch error not surfaced")
	}
	// No auto-clear: a vanished error would leave the empty-state text
	// standing in for a failure.
	if cmd != nil {
		t.Error("fetch error scheduled a follow-up command")
	}
	view := m.View()
	if !strings.Contains(view, "timeout") {
		t.Error("error banner missing from view")
	}

	// A new fetch supersedes the error.
	updated, _ = m.Update(keyPress('r'))
	m = updated.(Model)
	if m.err != nil {
		t.Errorf("error kept across refetch: %v", m.err)
	}
	if !m.loading {
		t.Error("refetch not started")
	}
}

func TestProcessDisabledWhileInFlight(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Model)
	}{
		{"while processing", func(m *Model) { m.processing = true }},
		{"while loading", func(m *Model) { m.loading = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := loadedModel()
			tt.setup(&m)

			updated, _ := m.Update(keyPress('p'))
			m = updated.(Model)

			if m.confirm != confirmNone {
				t.Error("process confirmation opened while a request is in flight")
			}
		})
	}
}

func TestProcessDisabledWithNothingIncluded(t *testing.T) {
	m := loadedModel()
	for range eligibleLogs() {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
		m = updated.(Model)
		updated, _ = m.Update(keyPress('j'))
		m = updated.(Model)
	}
	if count, _ := m.list.Totals(); count != 0 {
		t.Fatalf("setup: %d rows still included", count)
	}

	updated, _ := m.Update(keyPress('p'))
	m = updated.(Model)
	if m.confirm != confirmNone {
		t.Error("process confirmation opened with zero included worklogs")
	}
}

func TestProcessConfirmFlow(t *testing.T) {
	m := loadedModel()

	updated, _ := m.Update(keyPress('p'))
	m = updated.(Model)
	if m.confirm != confirmProcess {
		t.Fatalf("confirm = %d, want confirmProcess", m.confirm)
	}

	// 'n' cancels without starting anything.
	updated, _ = m.Update(keyPress('n'))
	m = updated.(Model)
	if m.confirm != confirmNone || m.processing {
		t.Fatal("cancel did not reset the confirm state")
	}

	// 'y' starts the request.
	updated, _ = m.Update(keyPress('p'))
	m = updated.(Model)
	updated, cmd := m.Update(keyPress('y'))
	m = updated.(Model)
	if !m.processing {
		t.Error("processing not set after confirm")
	}
	if cmd == nil {
		t.Error("confirm produced no command")
	}

	// A second trigger while in flight is ignored.
	updated, _ = m.Update(keyPress('b'))
	m = updated.(Model)
	if m.confirm != confirmNone {
		t.Error("draft confirmation opened while processing")
	}
}

func TestBatchDoneRefetches(t *testing.T) {
	m := loadedModel()
	m.processing = true
	seqBefore := m.fetchSeq

	updated, cmd := m.Update(batchDoneMsg{
		Batch: &models.PaymentBatch{ID: 7, WorkLogCount: 2, TotalAmount: 125.50},
	})
	m = updated.(Model)

	if m.processing {
		t.Error("processing still set after batch completion")
	}
	if m.fetchSeq != seqBefore+1 {
		t.Errorf("fetchSeq = %d, want %d", m.fetchSeq, seqBefore+1)
	}
	if !m.loading {
		t.Error("refetch not started after batch completion")
	}
	if cmd == nil {
		t.Error("no refetch command issued")
	}
	if !strings.Contains(m.notice, "#7") {
		t.Errorf("notice = %q, want batch id", m.notice)
	}
}

func TestBatchFailedSurfacesError(t *testing.T) {
	m := loadedModel()
	m.processing = true

	updated, _ := m.Update(batchFailedMsg{Err: errors.New("worklog 3 is no longer eligible")})
	m = updated.(Model)

	if m.processing {
		t.Error("processing still set after failure")
	}
	if m.err == nil {
		t.Fatal("error not surfaced")
	}
	// The set stays on screen so the admin can retry.
	if m.list.Len() != 3 {
		t.Errorf("list has %d rows after failure, want 3", m.list.Len())
	}
}

func TestFilterOverlay(t *testing.T) {
	m := loadedModel()

	updated, _ := m.Update(keyPress('f'))
	m = updated.(Model)
	if m.filter == nil {
		t.Fatal("filter overlay not opened")
	}

	// Esc closes without changing the range.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.filter != nil {
		t.Fatal("filter overlay not closed on esc")
	}
	if m.startDate != "2026-08-01" || m.endDate != "2026-08-25" {
		t.Errorf("range changed on cancel: %s – %s", m.startDate, m.endDate)
	}
}

func TestFilterApplyRefetches(t *testing.T) {
	m := loadedModel()
	seqBefore := m.fetchSeq

	updated, _ := m.Update(keyPress('f'))
	m = updated.(Model)
	m.filter.start.SetValue("2026-07-01")
	m.filter.end.SetValue("2026-07-31")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.filter != nil {
		t.Fatal("filter overlay still open after apply")
	}
	if m.startDate != "2026-07-01" || m.endDate != "2026-07-31" {
		t.Errorf("range = %s – %s", m.startDate, m.endDate)
	}
	if m.fetchSeq != seqBefore+1 {
		t.Errorf("fetchSeq = %d, want %d", m.fetchSeq, seqBefore+1)
	}
	if cmd == nil {
		t.Error("no refetch command issued")
	}
}

func TestFilterRejectsInvalidRange(t *testing.T) {
	m := loadedModel()

	updated, _ := m.Update(keyPress('f'))
	m = updated.(Model)
	m.filter.start.SetValue("2026-08-25")
	m.filter.end.SetValue("2026-08-01")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if m.filter == nil {
		t.Error("overlay closed despite invalid range")
	}
	if m.err == nil {
		t.Error("no validation error surfaced")
	}
}

func TestEmptyResultIsNotAnError(t *testing.T) {
	m := testModel()
	m.loading = true
	m.fetchSeq = 1

	updated, _ := m.Update(eligibleLoadedMsg{Seq: 1, Logs: nil})
	m = updated.(Model)

	if m.err != nil {
		t.Errorf("empty result produced an error: %v", m.err)
	}
	view := m.View()
	if !strings.Contains(view, "No payment-eligible worklogs") {
		t.Error("empty-state text missing from view")
	}
}
