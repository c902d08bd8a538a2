package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var artifactCmd = &cobra.Command{
	Use:   "artifact",
	Short: "Manage file artifacts recorded against subtasks",
}

var artifactAddCmd = &cobra.Command{
	Use:   "add <task-id> <username> <path>",
	Short: "Record an artifact produced on a task",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := contributionSvc.AddArtifact(cmd.Context(), taskID, args[1], args[2])
		if err != nil {
			return err
		}

		fmt.Printf("Recorded artifact %s: %s\n", a.ID, a.Path)
		return nil
	},
}

var artifactListCmd = &cobra.Command{
	Use:   "list <task-id>",
	Short: "List the artifacts recorded against a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}

		artifacts, err := contributionSvc.ListArtifacts(cmd.Context(), taskID)
		if err != nil {
			return err
		}

		for _, a := range artifacts {
			fmt.Printf("%s\t%s\t%s\n", a.ID, a.Username, a.Path)
		}
		return nil
	},
}

var artifactRemoveCmd = &cobra.Command{
	Use:   "remove <artifact-id>",
	Short: "Remove an artifact record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := contributionSvc.RemoveArtifact(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Println("Removed artifact")
		return nil
	},
}

func init() {
	artifactCmd.AddCommand(artifactAddCmd, artifactListCmd, artifactRemoveCmd)
	rootCmd.AddCommand(artifactCmd)
}
