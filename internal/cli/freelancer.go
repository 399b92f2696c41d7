package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/paybatch-io/paybatch/internal/models"
)

var freelancerCmd = &cobra.Command{
	Use:     "freelancer",
	Aliases: []string{"fl"},
	Short:   "Freelancer portal",
	Long:    `Log time against tasks and follow your earnings and payment history.`,
}

var flLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the freelancer portal",
	RunE:  runFreelancerLogin,
}

var flLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the freelancer portal",
	RunE:  runFreelancerLogout,
}

var flRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new freelancer account",
	RunE:  runFreelancerRegister,
}

var flWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in profile",
	RunE:  runFreelancerWhoami,
}

var flProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update the signed-in profile",
	RunE:  runFreelancerProfile,
}

var flPasswdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password",
	RunE:  runFreelancerPasswd,
}

func init() {
	freelancerCmd.AddCommand(flEntryCmd)
	freelancerCmd.AddCommand(flLoginCmd)
	freelancerCmd.AddCommand(flLogoutCmd)
	freelancerCmd.AddCommand(flPasswdCmd)
	freelancerCmd.AddCommand(flPaymentsCmd)
	freelancerCmd.AddCommand(flProfileCmd)
	freelancerCmd.AddCommand(flRegisterCmd)
	freelancerCmd.AddCommand(flWhoamiCmd)
	freelancerCmd.AddCommand(flWorkLogCmd)
}

func runFreelancerLogin(cmd *cobra.Command, args []string) error {
	deps, err := freelancerDeps()
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

	profile, err := deps.auth.Profile(cmd.Context())
	if err != nil {
		return deps.describeError(err)
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Signed in as %s <%s>", profile.Name, profile.Email)))
	return nil
}

func runFreelancerLogout(cmd *cobra.Command, args []string) error {
	deps, err := freelancerDeps()
	if err != nil {
		return err
	}
	if err := deps.auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out of the freelancer portal.")
	return nil
}

func runFreelancerRegister(cmd *cobra.Command, args []string) error {
	deps, err := freelancerDeps()
	if err != nil {
		return err
	}

	name := promptLine("Name")
	if name == "" {
		return fmt.Errorf("name is required")
	}
	email := promptLine("Email")
	if email == "" {
		return fmt.Errorf("email is required")
	}
	rateStr := promptLine("Hourly rate")
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil || rate <= 0 {
		return fmt.Errorf("invalid hourly rate: %s", rateStr)
	}
	password, err := promptPassword("Password")
	if err != nil {
		return err
	}

	profile, err := deps.auth.Register(cmd.Context(), models.RegisterRequest{
		Name:       name,
		Email:      email,
		Password:   password,
		HourlyRate: rate,
	})
	if err != nil {
		return deps.describeError(err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Account created for %s.", profile.Email)))
	fmt.Println(styleHint.Render("Run 'paybatch freelancer login' to sign in."))
	return nil
}

func runFreelancerWhoami(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}

	profile, err := deps.auth.Profile(cmd.Context())
	if err != nil {
		return deps.describeError(err)
	}

	active := styleSuccess.Render("active")
	if !profile.IsActive {
		active = styleWarning.Render("inactive")
	}
	fmt.Printf("%s <%s>\n", styleBrand.Render(profile.Name), profile.Email)
	fmt.Printf("  %s %.2f/h\n", styleLabel.Render("Rate:"), profile.HourlyRate)
	fmt.Printf("  %s %s\n", styleLabel.Render("Account:"), active)
	fmt.Printf("  %s %s\n", styleLabel.Render("Since:"), profile.CreatedAt.Format("2006-01-02"))
	return nil
}

func runFreelancerProfile(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}

	current, err := deps.auth.Profile(cmd.Context())
	if err != nil {
		return deps.describeError(err)
	}

	name := promptDefault("Name", current.Name)
	email := promptDefault("Email", current.Email)
	rateStr := promptDefault("Hourly rate", strconv.FormatFloat(current.HourlyRate, 'f', 2, 64))
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil || rate <= 0 {
		return fmt.Errorf("invalid hourly rate: %s", rateStr)
	}

	req := models.UpdateProfileRequest{}
	if name != current.Name {
		req.Name = &name
	}
	if email != current.Email {
		req.Email = &email
	}
	if rate != current.HourlyRate {
		req.HourlyRate = &rate
	}
	if req.Name == nil && req.Email == nil && req.HourlyRate == nil {
		fmt.Println("No changes.")
		return nil
	}

	updated, err := deps.freelancer.UpdateMe(cmd.Context(), req)
	if err != nil {
		return deps.describeError(err)
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Profile updated for %s.", updated.Email)))
	return nil
}

func runFreelancerPasswd(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}

	current, err := promptPassword("Current password")
	if err != nil {
		return err
	}
	next, err := promptPassword("New password")
	if err != nil {
		return err
	}
	confirm, err := promptPassword("Repeat new password")
	if err != nil {
		return err
	}
	if next != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := deps.freelancer.ChangePassword(cmd.Context(), current, next); err != nil {
		return deps.describeError(err)
	}
	fmt.Println(styleSuccess.Render("Password changed."))
	return nil
}
