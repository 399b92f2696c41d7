package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/paybatch-io/paybatch/internal/api"
)

func loadEligibleCmd(admin *api.Admin, seq int, startDate, endDate string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logs, err := admin.PaymentEligible(ctx, startDate, endDate)
		if err != nil {
			return eligibleFailedMsg{Seq: seq, Err: fmt.Errorf("failed to load eligible worklogs: %w", err)}
		}
		return eligibleLoadedMsg{Seq: seq, Logs: logs}
	}
}

func processPaymentCmd(admin *api.Admin, worklogIDs []int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		batch, err := admin.ProcessPayment(ctx, worklogIDs)
		if err != nil {
			return batchFailedMsg{Err: fmt.Errorf("failed to process payment: %w", err)}
		}
		return batchDoneMsg{Batch: batch}
	}
}

func createBatchCmd(admin *api.Admin, worklogIDs []int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		batch, err := admin.CreatePaymentBatch(ctx, worklogIDs)
		if err != nil {
			return batchFailedMsg{Err: fmt.Errorf("failed to create draft batch: %w", err)}
		}
		return batchDoneMsg{Batch: batch, Draft: true}
	}
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

func clearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}
