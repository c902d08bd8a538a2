package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Log and inspect contributed hours",
}

var hoursLogCmd = &cobra.Command{
	Use:   "log <task-id> <username> <hours>",
	Short: "Log hours an employee spent on a subtask",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}
		hours, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid hours %q", args[2])
		}

		c, err := contributionSvc.LogContribution(cmd.Context(), args[1], taskID, hours)
		if err != nil {
			return err
		}

		fmt.Printf("Logged %.2f hours for %s on task %d at %s\n",
			c.Hours, c.Username, c.TaskID, c.RecordedAt.Format(time.RFC3339))
		return nil
	},
}

var hoursListCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List the contributions logged on a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}

		contributions, err := contributionSvc.ListContributions(cmd.Context(), taskID)
		if err != nil {
			return err
		}

		for _, c := range contributions {
			fmt.Printf("%s\t%.2f\t%s\n", c.Username, c.Hours, c.RecordedAt.Format(time.RFC3339))
		}
		return nil
	},
}

var hoursTotalCmd = &cobra.Command{
	Use:   "total <task-id>",
	Short: "Show the total hours logged on a task and its subtasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}

		total, err := contributionSvc.TotalHoursForTask(cmd.Context(), taskID)
		if err != nil {
			return err
		}

		fmt.Printf("%.2f\n", total)
		return nil
	},
}

var hoursDeleteCmd = &cobra.Command{
	Use:   "delete <task-id> <username> <recorded-at>",
	Short: "Delete a contribution by its exact timestamp",
	Long: `Delete the contribution matching the exact (employee, task, timestamp)
triple, as printed by "hours log" and "hours list".`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}
		recordedAt, err := time.Parse(time.RFC3339, args[2])
		if err != nil {
			return fmt.Errorf("invalid timestamp %q, want RFC3339", args[2])
		}

		if err := contributionSvc.DeleteContribution(cmd.Context(), args[1], taskID, recordedAt); err != nil {
			return err
		}

		fmt.Println("Deleted contribution")
		return nil
	},
}

func init() {
	hoursCmd.AddCommand(hoursLogCmd, hoursListCmd, hoursTotalCmd, hoursDeleteCmd)
	rootCmd.AddCommand(hoursCmd)
}
