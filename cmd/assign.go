package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assignCmd = &cobra.Command{
	Use:   "assign <task-id> <username>",
	Short: "Assign an employee to a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireManager(); err != nil {
			return err
		}

		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := assignmentSvc.Assign(cmd.Context(), taskID, args[1]); err != nil {
			return err
		}

		fmt.Printf("Assigned %s to task %d\n", args[1], taskID)
		return nil
	},
}

var unassignCmd = &cobra.Command{
	Use:   "unassign <task-id> <username>",
	Short: "Remove an employee from a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireManager(); err != nil {
			return err
		}

		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := assignmentSvc.Unassign(cmd.Context(), taskID, args[1]); err != nil {
			return err
		}

		fmt.Printf("Unassigned %s from task %d\n", args[1], taskID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assignCmd, unassignCmd)
}
