package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var depCmd = &cobra.Command{
	Use:   "dep",
	Short: "Manage must-follow dependencies between subtasks",
}

var depAddCmd = &cobra.Command{
	Use:   "add <task-id> <must-follow-id>",
	Short: "Record that a task must follow another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		forID, err := parseID(args[0])
		if err != nil {
			return err
		}
		mustFollowID, err := parseID(args[1])
		if err != nil {
			return err
		}

		if err := dependencySvc.AddDependency(cmd.Context(), forID, mustFollowID); err != nil {
			return err
		}

		fmt.Printf("Task %d must follow task %d\n", forID, mustFollowID)
		return nil
	},
}

var depRemoveCmd = &cobra.Command{
	Use:   "remove <task-id> <must-follow-id>",
	Short: "Remove a must-follow dependency",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		forID, err := parseID(args[0])
		if err != nil {
			return err
		}
		mustFollowID, err := parseID(args[1])
		if err != nil {
			return err
		}

		if err := dependencySvc.RemoveDependency(cmd.Context(), forID, mustFollowID); err != nil {
			return err
		}

		fmt.Printf("Removed dependency %d -> %d\n", forID, mustFollowID)
		return nil
	},
}

var depListCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List the tasks a task must follow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forID, err := parseID(args[0])
		if err != nil {
			return err
		}

		deps, err := dependencySvc.ListDependencies(cmd.Context(), forID)
		if err != nil {
			return err
		}

		for _, d := range deps {
			fmt.Printf("%d must follow %d\n", d.TaskID, d.MustFollowID)
		}
		return nil
	},
}

func init() {
	depCmd.AddCommand(depAddCmd, depRemoveCmd, depListCmd)
	rootCmd.AddCommand(depCmd)
}
