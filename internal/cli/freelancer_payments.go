package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flPaymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Show your payment history",
	RunE:  runFreelancerPayments,
}

func runFreelancerPayments(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}

	payments, err := deps.freelancer.Payments(cmd.Context())
	if err != nil {
		return deps.describeError(err)
	}

	if len(payments) == 0 {
		fmt.Println("No payments yet.")
		return nil
	}

	var total float64
	fmt.Printf("Payments (%d):\n", len(payments))
	for _, p := range payments {
		total += p.Amount
		fmt.Printf("  #%-5d batch %-5d worklog %-5d %10.2f  %s\n",
			p.ID, p.BatchID, p.WorkLogID, p.Amount, styleHint.Render(p.PaidAt.Format("2006-01-02")))
	}
	fmt.Printf("\n%s %s\n", styleLabel.Render("Total received:"), styleAmount.Render(fmt.Sprintf("%.2f", total)))
	return nil
}
