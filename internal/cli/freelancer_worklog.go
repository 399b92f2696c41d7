package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/paybatch-io/paybatch/internal/models"
)

var flWorkLogCmd = &cobra.Command{
	Use:     "worklog",
	Aliases: []string{"wl"},
	Short:   "Manage your worklogs",
}

var flWorkLogListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your worklogs",
	RunE:    runWorkLogList,
}

var flWorkLogShowCmd = &cobra.Command{
	Use:   "show [worklog-id]",
	Short: "Show a worklog with its time entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkLogShow,
}

var flWorkLogAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Open a new worklog",
	RunE:  runWorkLogAdd,
}

var flWorkLogEditCmd = &cobra.Command{
	Use:   "edit [worklog-id]",
	Short: "Edit a pending worklog",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkLogEdit,
}

var flWorkLogDeleteCmd = &cobra.Command{
	Use:     "delete [worklog-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a pending worklog",
	Args:    cobra.ExactArgs(1),
	RunE:    runWorkLogDelete,
}

var workLogStatusFlag string

func init() {
	flWorkLogListCmd.Flags().StringVar(&workLogStatusFlag, "status", "", "filter by status (pending|approved|paid|rejected)")

	flWorkLogCmd.AddCommand(flWorkLogAddCmd)
	flWorkLogCmd.AddCommand(flWorkLogDeleteCmd)
	flWorkLogCmd.AddCommand(flWorkLogEditCmd)
	flWorkLogCmd.AddCommand(flWorkLogListCmd)
	flWorkLogCmd.AddCommand(flWorkLogShowCmd)
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", what, arg)
	}
	return id, nil
}

// fetchEditable loads a worklog and refuses locally when its status no
// longer permits mutation. The backend enforces the same rule.
func fetchEditable(deps *portalDeps, cmd *cobra.Command, id int64) (*models.WorkLog, error) {
	w, err := deps.freelancer.WorkLog(cmd.Context(), id)
	if err != nil {
		return nil, deps.describeError(err)
	}
	if !w.Editable() {
		return nil, fmt.Errorf("worklog #%d is %s; only pending worklogs can be changed", w.ID, w.Status)
	}
	return w, nil
}

func runWorkLogList(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}

	logs, err := deps.freelancer.WorkLogs(cmd.Context(), models.WorkLogStatus(workLogStatusFlag))
	if err != nil {
		return deps.describeError(err)
	}

	if len(logs) == 0 {
		fmt.Println("No worklogs. Run 'paybatch freelancer worklog add' to open one.")
		return nil
	}

	printWorkLogs(logs, false)
	fmt.Printf("\n%s %.2f across %d worklogs\n", styleLabel.Render("Total:"), models.SumAmounts(logs), len(logs))
	return nil
}

func runWorkLogShow(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}
	id, err := parseID(args[0], "worklog id")
	if err != nil {
		return err
	}

	w, err := deps.freelancer.WorkLog(cmd.Context(), id)
	if err != nil {
		return deps.describeError(err)
	}
	printWorkLogDetail(w)
	return nil
}

func runWorkLogAdd(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}

	title := promptLine("Task title")
	if title == "" {
		return fmt.Errorf("task title is required")
	}
	description := promptLine("Description (optional)")

	w, err := deps.freelancer.CreateWorkLog(cmd.Context(), models.CreateWorkLogRequest{
		TaskTitle:       title,
		TaskDescription: description,
	})
	if err != nil {
		return deps.describeError(err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Worklog #%d created.", w.ID)))
	fmt.Println(styleHint.Render(fmt.Sprintf("Log time with 'paybatch freelancer entry add %d'.", w.ID)))
	return nil
}

func runWorkLogEdit(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}
	id, err := parseID(args[0], "worklog id")
	if err != nil {
		return err
	}

	w, err := fetchEditable(deps, cmd, id)
	if err != nil {
		return err
	}

	title := promptDefault("Task title", w.TaskTitle)
	description := promptDefault("Description", w.TaskDescription)

	req := models.UpdateWorkLogRequest{}
	if title != w.TaskTitle {
		req.TaskTitle = &title
	}
	if description != w.TaskDescription {
		req.TaskDescription = &description
	}
	if req.TaskTitle == nil && req.TaskDescription == nil {
		fmt.Println("No changes.")
		return nil
	}

	if _, err := deps.freelancer.UpdateWorkLog(cmd.Context(), id, req); err != nil {
		return deps.describeError(err)
	}
	fmt.Printf("Worklog #%d updated.\n", id)
	return nil
}

func runWorkLogDelete(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}
	id, err := parseID(args[0], "worklog id")
	if err != nil {
		return err
	}

	if _, err := fetchEditable(deps, cmd, id); err != nil {
		return err
	}

	if err := deps.freelancer.DeleteWorkLog(cmd.Context(), id); err != nil {
		return deps.describeError(err)
	}
	fmt.Printf("Worklog #%d deleted.\n", id)
	return nil
}

// ── Time entries ─────────────────────────────────────────────────

var flEntryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage time entries on a pending worklog",
}

var flEntryAddCmd = &cobra.Command{
	Use:   "add [worklog-id]",
	Short: "Add a time entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryAdd,
}

var flEntryEditCmd = &cobra.Command{
	Use:   "edit [worklog-id] [entry-id]",
	Short: "Edit a time entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runEntryEdit,
}

var flEntryDeleteCmd = &cobra.Command{
	Use:     "delete [worklog-id] [entry-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a time entry",
	Args:    cobra.ExactArgs(2),
	RunE:    runEntryDelete,
}

func init() {
	flEntryCmd.AddCommand(flEntryAddCmd)
	flEntryCmd.AddCommand(flEntryDeleteCmd)
	flEntryCmd.AddCommand(flEntryEditCmd)
}

const timeLayout = "2006-01-02 15:04"

func runEntryAdd(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}
	worklogID, err := parseID(args[0], "worklog id")
	if err != nil {
		return err
	}

	if _, err := fetchEditable(deps, cmd, worklogID); err != nil {
		return err
	}

	startStr := promptDefault("Start (YYYY-MM-DD HH:MM)", time.Now().Format(timeLayout))
	start, err := time.ParseInLocation(timeLayout, startStr, time.Local)
	if err != nil {
		return fmt.Errorf("invalid start time: %s", startStr)
	}

	req := models.CreateTimeEntryRequest{StartTime: start}

	hoursStr := promptLine("Hours (leave empty to give an end time)")
	if hoursStr != "" {
		hours, err := strconv.ParseFloat(hoursStr, 64)
		if err != nil || hours <= 0 {
			return fmt.Errorf("invalid hours: %s", hoursStr)
		}
		req.Hours = &hours
	} else {
		endStr := promptLine("End (YYYY-MM-DD HH:MM)")
		end, err := time.ParseInLocation(timeLayout, endStr, time.Local)
		if err != nil {
			return fmt.Errorf("invalid end time: %s", endStr)
		}
		if !end.After(start) {
			return fmt.Errorf("end time must be after start time")
		}
		req.EndTime = &end
	}

	if notes := promptLine("Notes (optional)"); notes != "" {
		req.Notes = &notes
	}

	entry, err := deps.freelancer.AddTimeEntry(cmd.Context(), worklogID, req)
	if err != nil {
		return deps.describeError(err)
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Entry #%d added: %.2fh, %.2f.", entry.ID, entry.Hours, entry.Amount)))
	return nil
}

func runEntryEdit(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}
	worklogID, err := parseID(args[0], "worklog id")
	if err != nil {
		return err
	}
	entryID, err := parseID(args[1], "entry id")
	if err != nil {
		return err
	}

	if _, err := fetchEditable(deps, cmd, worklogID); err != nil {
		return err
	}

	req := models.UpdateTimeEntryRequest{}
	if startStr := promptLine("Start (YYYY-MM-DD HH:MM, empty to keep)"); startStr != "" {
		start, err := time.ParseInLocation(timeLayout, startStr, time.Local)
		if err != nil {
			return fmt.Errorf("invalid start time: %s", startStr)
		}
		req.StartTime = &start
	}
	if hoursStr := promptLine("Hours (empty to keep)"); hoursStr != "" {
		hours, err := strconv.ParseFloat(hoursStr, 64)
		if err != nil || hours <= 0 {
			return fmt.Errorf("invalid hours: %s", hoursStr)
		}
		req.Hours = &hours
	}
	if notes := promptLine("Notes (empty to keep)"); notes != "" {
		req.Notes = &notes
	}
	if req.StartTime == nil && req.Hours == nil && req.Notes == nil {
		fmt.Println("No changes.")
		return nil
	}

	if _, err := deps.freelancer.UpdateTimeEntry(cmd.Context(), worklogID, entryID, req); err != nil {
		return deps.describeError(err)
	}
	fmt.Printf("Entry #%d updated.\n", entryID)
	return nil
}

func runEntryDelete(cmd *cobra.Command, args []string) error {
	deps, err := requireFreelancerSession()
	if err != nil {
		return err
	}
	worklogID, err := parseID(args[0], "worklog id")
	if err != nil {
		return err
	}
	entryID, err := parseID(args[1], "entry id")
	if err != nil {
		return err
	}

	if _, err := fetchEditable(deps, cmd, worklogID); err != nil {
		return err
	}

	if err := deps.freelancer.DeleteTimeEntry(cmd.Context(), worklogID, entryID); err != nil {
		return deps.describeError(err)
	}
	fmt.Printf("Entry #%d deleted.\n", entryID)
	return nil
}
