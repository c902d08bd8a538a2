package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireManager(); err != nil {
			return err
		}

		start, err := parseDate(projectStartFlag)
		if err != nil {
			return err
		}
		end, err := parseDate(projectEndFlag)
		if err != nil {
			return err
		}

		project, err := hierarchySvc.CreateProject(cmd.Context(), models.Project{
			Title:       args[0],
			Description: projectDescFlag,
			StartDate:   start,
			EndDate:     end,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created project %d: %s\n", project.ID, project.Title)
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := hierarchySvc.ListProjects(cmd.Context())
		if err != nil {
			return err
		}

		for _, p := range projects {
			fmt.Printf("%d\t%s\t%s\n", p.ID, p.Title, p.Description)
		}
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project and everything under it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireManager(); err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if _, err := hierarchySvc.DeleteProject(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("Deleted project %d\n", id)
		return nil
	},
}

var projectHoursCmd = &cobra.Command{
	Use:   "hours <id>",
	Short: "Show the total hours logged under a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		total, err := contributionSvc.TotalHoursForProject(cmd.Context(), id)
		if err != nil {
			return err
		}
		involved, err := assignmentSvc.CountInvolvedForProject(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Project %d: %.2f hours, %d employees involved\n", id, total, involved)
		return nil
	},
}

var (
	projectDescFlag  string
	projectStartFlag string
	projectEndFlag   string
)

func init() {
	projectCreateCmd.Flags().StringVar(&projectDescFlag, "description", "", "project description")
	projectCreateCmd.Flags().StringVar(&projectStartFlag, "start", "", "start date (YYYY-MM-DD)")
	projectCreateCmd.Flags().StringVar(&projectEndFlag, "end", "", "end date (YYYY-MM-DD)")

	projectCmd.AddCommand(projectCreateCmd, projectListCmd, projectDeleteCmd, projectHoursCmd)
	rootCmd.AddCommand(projectCmd)
}
