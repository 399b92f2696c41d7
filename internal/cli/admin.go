package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paybatch-io/paybatch/internal/api"
	"github.com/paybatch-io/paybatch/internal/models"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin portal",
	Long:  `Review worklogs across freelancers and process payment batches.`,
}

var adminLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the admin portal",
	RunE:  runAdminLogin,
}

var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the admin portal",
	RunE:  runAdminLogout,
}

var adminWorkLogsCmd = &cobra.Command{
	Use:   "worklogs",
	Short: "List worklogs across freelancers",
	RunE:  runAdminWorkLogs,
}

var adminWorkLogShowCmd = &cobra.Command{
	Use:   "worklog [worklog-id]",
	Short: "Show a worklog with its time entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminWorkLogShow,
}

var adminEligibleCmd = &cobra.Command{
	Use:   "eligible",
	Short: "List payment-eligible worklogs for a date range",
	RunE:  runAdminEligible,
}

var (
	adminStatusFlag     string
	adminFreelancerFlag int64
	adminStartFlag      string
	adminEndFlag        string
)

func init() {
	adminWorkLogsCmd.Flags().StringVar(&adminStatusFlag, "status", "", "filter by status (pending|approved|paid|rejected)")
	adminWorkLogsCmd.Flags().Int64Var(&adminFreelancerFlag, "freelancer", 0, "filter by freelancer id")
	adminWorkLogsCmd.Flags().StringVar(&adminStartFlag, "start", "", "start date (YYYY-MM-DD)")
	adminWorkLogsCmd.Flags().StringVar(&adminEndFlag, "end", "", "end date (YYYY-MM-DD)")

	adminEligibleCmd.Flags().StringVar(&adminStartFlag, "start", "", "start date (YYYY-MM-DD)")
	adminEligibleCmd.Flags().StringVar(&adminEndFlag, "end", "", "end date (YYYY-MM-DD)")
	_ = adminEligibleCmd.MarkFlagRequired("start")
	_ = adminEligibleCmd.MarkFlagRequired("end")

	adminCmd.AddCommand(adminBatchCmd)
	adminCmd.AddCommand(adminEligibleCmd)
	adminCmd.AddCommand(adminLoginCmd)
	adminCmd.AddCommand(adminLogoutCmd)
	adminCmd.AddCommand(adminProcessCmd)
	adminCmd.AddCommand(adminReviewCmd)
	adminCmd.AddCommand(adminWorkLogShowCmd)
	adminCmd.AddCommand(adminWorkLogsCmd)
}

func runAdminLogin(cmd *cobra.Command, args []string) error {
	deps, err := adminDeps()
	if err != nil {
		return err
	}

	email := promptLine("Email")
	if email == "" {
		return fmt.Errorf("email is required")
	}
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	if err := deps.auth.Login(cmd.Context(), email, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Println(styleSuccess.Render("Signed in to the admin portal."))
	return nil
}

func runAdminLogout(cmd *cobra.Command, args []string) error {
	deps, err := adminDeps()
	if err != nil {
		return err
	}
	if err := deps.auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out of the admin portal.")
	return nil
}

func runAdminWorkLogs(cmd *cobra.Command, args []string) error {
	deps, err := requireAdminSession()
	if err != nil {
		return err
	}

	logs, err := deps.admin.WorkLogs(cmd.Context(), api.WorkLogFilter{
		Status:       models.WorkLogStatus(adminStatusFlag),
		FreelancerID: adminFreelancerFlag,
		StartDate:    adminStartFlag,
		EndDate:      adminEndFlag,
	})
	if err != nil {
		return deps.describeError(err)
	}

	if len(logs) == 0 {
		fmt.Println("No worklogs match.")
		return nil
	}
	printWorkLogs(logs, true)
	fmt.Printf("\n%s %.2f across %d worklogs\n", styleLabel.Render("Total:"), models.SumAmounts(logs), len(logs))
	return nil
}

func runAdminWorkLogShow(cmd *cobra.Command, args []string) error {
	deps, err := requireAdminSession()
	if err != nil {
		return err
	}
	id, err := parseID(args[0], "worklog id")
	if err != nil {
		return err
	}

	w, err := deps.admin.WorkLog(cmd.Context(), id)
	if err != nil {
		return deps.describeError(err)
	}
	printWorkLogDetail(w)
	return nil
}

func runAdminEligible(cmd *cobra.Command, args []string) error {
	deps, err := requireAdminSession()
	if err != nil {
		return err
	}
	if err := validateDateRange(adminStartFlag, adminEndFlag); err != nil {
		return err
	}

	logs, err := deps.admin.PaymentEligible(cmd.Context(), adminStartFlag, adminEndFlag)
	if err != nil {
		return deps.describeError(err)
	}

	if len(logs) == 0 {
		fmt.Printf("No payment-eligible worklogs between %s and %s.\n", adminStartFlag, adminEndFlag)
		return nil
	}

	fmt.Printf("Payment-eligible %s – %s (%d):\n", adminStartFlag, adminEndFlag, len(logs))
	for _, w := range logs {
		name := w.FreelancerName
		if name == "" {
			name = fmt.Sprintf("freelancer %d", w.FreelancerID)
		}
		fmt.Printf("  #%-5d %-35s %-20s %10.2f\n", w.ID, truncate(w.TaskTitle, 35), truncate(name, 20), w.TotalAmount)
	}
	fmt.Printf("\n%s %s\n", styleLabel.Render("Eligible total:"), styleAmount.Render(fmt.Sprintf("%.2f", models.SumAmounts(logs))))
	fmt.Println(styleHint.Render("Run 'paybatch admin review' to exclude items and process interactively."))
	return nil
}
