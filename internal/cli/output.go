package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/x/ansi"

	"github.com/paybatch-io/paybatch/internal/models"
)

func statusBadge(s models.WorkLogStatus) string {
	switch s {
	case models.WorkLogStatusPending:
		return badgePending.Render("[P]")
	case models.WorkLogStatusApproved:
		return badgeApproved.Render("[A]")
	case models.WorkLogStatusPaid:
		return badgePaid.Render("[$]")
	case models.WorkLogStatusRejected:
		return badgeRejected.Render("[✗]")
	}
	return "[ ]"
}

func batchBadge(s models.BatchStatus) string {
	if s == models.BatchStatusConfirmed {
		return badgeConfirmed.Render("[confirmed]")
	}
	return badgeDraft.Render("[draft]")
}

// printWorkLogGroup prints one status section of a worklog listing.
func printWorkLogGroup(name string, logs []models.WorkLog, showFreelancer bool) {
	if len(logs) == 0 {
		return
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].ID < logs[j].ID
	})

	fmt.Printf("\n%s (%d):\n", name, len(logs))
	for _, w := range logs {
		line := fmt.Sprintf("  %s #%-5d %-40s %6.1fh  %10.2f", statusBadge(w.Status), w.ID, truncate(w.TaskTitle, 40), w.TotalHours, w.TotalAmount)
		if showFreelancer && w.FreelancerName != "" {
			line += "  " + styleHint.Render(w.FreelancerName)
		}
		fmt.Println(line)
	}
}

// printWorkLogs groups a listing by status, pending first.
func printWorkLogs(logs []models.WorkLog, showFreelancer bool) {
	groups := map[models.WorkLogStatus][]models.WorkLog{}
	for _, w := range logs {
		groups[w.Status] = append(groups[w.Status], w)
	}
	printWorkLogGroup("Pending", groups[models.WorkLogStatusPending], showFreelancer)
	printWorkLogGroup("Approved", groups[models.WorkLogStatusApproved], showFreelancer)
	printWorkLogGroup("Paid", groups[models.WorkLogStatusPaid], showFreelancer)
	printWorkLogGroup("Rejected", groups[models.WorkLogStatusRejected], showFreelancer)
}

func printWorkLogDetail(w *models.WorkLog) {
	fmt.Printf("%s #%d  %s\n", statusBadge(w.Status), w.ID, styleBrand.Render(w.TaskTitle))
	if w.TaskDescription != "" {
		fmt.Printf("  %s\n", w.TaskDescription)
	}
	if w.FreelancerName != "" {
		fmt.Printf("  %s %s\n", styleLabel.Render("Freelancer:"), w.FreelancerName)
	}
	fmt.Printf("  %s %s\n", styleLabel.Render("Status:"), string(w.Status))
	fmt.Printf("  %s %.1fh, %s\n", styleLabel.Render("Total:"), w.TotalHours, styleAmount.Render(fmt.Sprintf("%.2f", w.TotalAmount)))
	fmt.Printf("  %s %s\n", styleLabel.Render("Updated:"), w.UpdatedAt.Format("2006-01-02 15:04"))

	if len(w.TimeEntries) > 0 {
		fmt.Printf("\nTime entries (%d):\n", len(w.TimeEntries))
		for _, e := range w.TimeEntries {
			end := "running"
			if e.EndTime != nil {
				end = e.EndTime.Format("15:04")
			}
			notes := ""
			if e.Notes != nil {
				notes = "  " + styleHint.Render(truncate(*e.Notes, 30))
			}
			fmt.Printf("  #%-5d %s–%s  %5.2fh  %8.2f%s\n",
				e.ID, e.StartTime.Format("2006-01-02 15:04"), end, e.Hours, e.Amount, notes)
		}
	}

	if !w.Editable() {
		fmt.Println(styleHint.Render("\nThis worklog is " + string(w.Status) + "; it can no longer be edited."))
	}
}

func printBatch(b *models.PaymentBatch) {
	fmt.Printf("%s Batch #%d  %s – %s\n", batchBadge(b.Status), b.ID, b.StartDate, b.EndDate)
	fmt.Printf("  %s %d worklogs, total %s\n", styleLabel.Render("Scope:"), b.WorkLogCount, styleAmount.Render(fmt.Sprintf("%.2f", b.TotalAmount)))
	fmt.Printf("  %s %s\n", styleLabel.Render("Created:"), b.CreatedAt.Format("2006-01-02 15:04"))

	if len(b.PaymentLines) > 0 {
		fmt.Printf("\nPayment lines (%d):\n", len(b.PaymentLines))
		for _, l := range b.PaymentLines {
			name := l.FreelancerName
			if name == "" {
				name = fmt.Sprintf("freelancer %d", l.FreelancerID)
			}
			fmt.Printf("  #%-5d worklog %-5d %-25s %10.2f\n", l.ID, l.WorkLogID, truncate(name, 25), l.Amount)
		}
	}
}

func truncate(s string, maxLen int) string {
	return ansi.Truncate(s, maxLen, "...")
}
