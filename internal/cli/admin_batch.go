package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/paybatch-io/paybatch/internal/tui"
)

var adminProcessCmd = &cobra.Command{
	Use:   "process [worklog-id...]",
	Short: "Pay the given worklogs in one batch",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdminProcess,
}

var adminBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Manage payment batches",
}

var adminBatchCreateCmd = &cobra.Command{
	Use:   "create [worklog-id...]",
	Short: "Create a draft batch over the given worklogs",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdminBatchCreate,
}

var adminBatchListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List payment batches",
	RunE:    runAdminBatchList,
}

var adminBatchShowCmd = &cobra.Command{
	Use:   "show [batch-id]",
	Short: "Show a batch with its payment lines",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminBatchShow,
}

var adminBatchConfirmCmd = &cobra.Command{
	Use:   "confirm [batch-id]",
	Short: "Confirm a draft batch",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminBatchConfirm,
}

var adminReviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review payment-eligible worklogs interactively",
	Long: `Open the interactive review screen for a date range: exclude worklogs,
watch the running total, and process or draft a batch over what remains.`,
	RunE: runAdminReview,
}

func init() {
	adminReviewCmd.Flags().StringVar(&adminStartFlag, "start", "", "start date (YYYY-MM-DD, default first of month)")
	adminReviewCmd.Flags().StringVar(&adminEndFlag, "end", "", "end date (YYYY-MM-DD, default today)")

	adminBatchCmd.AddCommand(adminBatchConfirmCmd)
	adminBatchCmd.AddCommand(adminBatchCreateCmd)
	adminBatchCmd.AddCommand(adminBatchListCmd)
	adminBatchCmd.AddCommand(adminBatchShowCmd)
}

const dateLayout = "2006-01-02"

func validateDateRange(start, end string) error {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return fmt.Errorf("invalid start date: %s", start)
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return fmt.Errorf("invalid end date: %s", end)
	}
	if e.Before(s) {
		return fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return nil
}

func parseIDArgs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg, "worklog id")
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runAdminProcess(cmd *cobra.Command, args []string) error {
	deps, err := requireAdminSession()
	if err != nil {
		return err
	}
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	answer := promptLine(fmt.Sprintf("Pay %d worklogs now? This cannot be undone [y/N]", len(ids)))
	if strings.ToLower(answer) != "y" {
		fmt.Println("Aborted.")
		return nil
	}

	batch, err := deps.admin.ProcessPayment(cmd.Context(), ids)
	if err != nil {
		return deps.describeError(err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Processed batch #%d: %d worklogs, total %.2f.", batch.ID, batch.WorkLogCount, batch.TotalAmount)))
	return nil
}

func runAdminBatchCreate(cmd *cobra.Command, args []string) error {
	deps, err := requireAdminSession()
	if err != nil {
		return err
	}
	ids, err := parseIDArgs(args)
	if err != nil {
		return err
	}

	batch, err := deps.admin.CreatePaymentBatch(cmd.Context(), ids)
	if err != nil {
		return deps.describeError(err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Draft batch #%d created: %d worklogs, total %.2f.", batch.ID, batch.WorkLogCount, batch.TotalAmount)))
	fmt.Println(styleHint.Render(fmt.Sprintf("Confirm with 'paybatch admin batch confirm %d'.", batch.ID)))
	return nil
}

func runAdminBatchList(cmd *cobra.Command, args []string) error {
	deps, err := requireAdminSession()
	if err != nil {
		return err
	}

	batches, err := deps.admin.Batches(cmd.Context())
	if err != nil {
		return deps.describeError(err)
	}

	if len(batches) == 0 {
		fmt.Println("No payment batches.")
		return nil
	}

	fmt.Printf("Payment batches (%d):\n", len(batches))
	for _, b := range batches {
		fmt.Printf("  #%-5d %s %s – %s  %d worklogs %12.2f\n",
			b.ID, batchBadge(b.Status), b.StartDate, b.EndDate, b.WorkLogCount, b.TotalAmount)
	}
	return nil
}

func runAdminBatchShow(cmd *cobra.Command, args []string) error {
	deps, err := requireAdminSession()
	if err != nil {
		return err
	}
	id, err := parseID(args[0], "batch id")
	if err != nil {
		return err
	}

	batch, err := deps.admin.Batch(cmd.Context(), id)
	if err != nil {
		return deps.describeError(err)
	}
	printBatch(batch)
	return nil
}

func runAdminBatchConfirm(cmd *cobra.Command, args []string) error {
	deps, err := requireAdminSession()
	if err != nil {
		return err
	}
	id, err := parseID(args[0], "batch id")
	if err != nil {
		return err
	}

	answer := promptLine(fmt.Sprintf("Confirm batch #%d? This cannot be undone [y/N]", id))
	if strings.ToLower(answer) != "y" {
		fmt.Println("Aborted.")
		return nil
	}

	batch, err := deps.admin.ConfirmBatch(cmd.Context(), id)
	if err != nil {
		return deps.describeError(err)
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Batch #%d confirmed: total %.2f.", batch.ID, batch.TotalAmount)))
	return nil
}

func runAdminReview(cmd *cobra.Command, args []string) error {
	deps, err := requireAdminSession()
	if err != nil {
		return err
	}

	now := time.Now()
	start := adminStartFlag
	if start == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
	}
	end := adminEndFlag
	if end == "" {
		end = now.Format(dateLayout)
	}
	if err := validateDateRange(start, end); err != nil {
		return err
	}

	return tui.Run(deps.admin, start, end)
}
