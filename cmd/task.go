package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks and subtasks",
}

var taskCreateCmd = &cobra.Command{
	Use:   "create <project-id> <title>",
	Short: "Create a top-level task under a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := parseID(args[0])
		if err != nil {
			return err
		}

		fields, err := taskFieldsFromFlags(args[1])
		if err != nil {
			return err
		}

		id, err := hierarchySvc.CreateTopLevelTask(cmd.Context(), projectID, 0, fields)
		if err != nil {
			return err
		}

		fmt.Printf("Created task %d\n", id)
		return nil
	},
}

var taskSubCmd = &cobra.Command{
	Use:   "sub <parent-task-id> <title>",
	Short: "Create a subtask under a top-level task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		parentID, err := parseID(args[0])
		if err != nil {
			return err
		}

		fields, err := taskFieldsFromFlags(args[1])
		if err != nil {
			return err
		}

		id, err := hierarchySvc.CreateSubtask(cmd.Context(), parentID, fields)
		if err != nil {
			return err
		}

		fmt.Printf("Created subtask %d\n", id)
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List the top-level tasks of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := parseID(args[0])
		if err != nil {
			return err
		}

		tasks, err := hierarchySvc.ListTopLevelTasks(cmd.Context(), projectID)
		if err != nil {
			return err
		}

		for _, t := range tasks {
			fmt.Printf("%d\t%s\t%.1fh planned\n", t.ID, t.Title, t.DurationHours)
		}
		return nil
	},
}

var taskSubsCmd = &cobra.Command{
	Use:   "subs <task-id>",
	Short: "List the subtasks of a top-level task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}

		subtasks, err := hierarchySvc.ListSubtasks(cmd.Context(), taskID)
		if err != nil {
			return err
		}

		for _, t := range subtasks {
			fmt.Printf("%d\t%s\t%.1fh planned\n", t.ID, t.Title, t.DurationHours)
		}
		return nil
	},
}

var taskShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show a task with its hours, assignees and dependencies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}

		task, err := hierarchySvc.GetTask(cmd.Context(), taskID)
		if err != nil {
			return err
		}

		total, err := contributionSvc.TotalHoursForTask(cmd.Context(), taskID)
		if err != nil {
			return err
		}
		deps, err := dependencySvc.ListDependencies(cmd.Context(), taskID)
		if err != nil {
			return err
		}
		assignees, err := assignmentSvc.ListAssignees(cmd.Context(), taskID)
		if err != nil {
			return err
		}

		kind := "task"
		if task.IsSubtask() {
			kind = fmt.Sprintf("subtask of %d", *task.ParentID)
		}
		fmt.Printf("%d\t%s (%s)\n", task.ID, task.Title, kind)
		fmt.Printf("logged: %.2f of %.1f planned hours\n", total, task.DurationHours)
		for _, d := range deps {
			fmt.Printf("must follow task %d\n", d.MustFollowID)
		}
		for _, e := range assignees {
			fmt.Printf("assigned: %s (%s)\n", e.Username, e.Name)
		}
		return nil
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task and everything under it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireManager(); err != nil {
			return err
		}

		taskID, err := parseID(args[0])
		if err != nil {
			return err
		}

		if _, err := hierarchySvc.DeleteTask(cmd.Context(), taskID); err != nil {
			return err
		}

		fmt.Printf("Deleted task %d\n", taskID)
		return nil
	},
}

var (
	taskDescFlag     string
	taskStartFlag    string
	taskEndFlag      string
	taskDurationFlag float64
)

func taskFieldsFromFlags(title string) (models.TaskFields, error) {
	start, err := parseDate(taskStartFlag)
	if err != nil {
		return models.TaskFields{}, err
	}
	end, err := parseDate(taskEndFlag)
	if err != nil {
		return models.TaskFields{}, err
	}

	return models.TaskFields{
		Title:         title,
		Description:   taskDescFlag,
		StartDate:     start,
		EndDate:       end,
		DurationHours: taskDurationFlag,
	}, nil
}

func init() {
	for _, c := range []*cobra.Command{taskCreateCmd, taskSubCmd} {
		c.Flags().StringVar(&taskDescFlag, "description", "", "task description")
		c.Flags().StringVar(&taskStartFlag, "start", "", "start date (YYYY-MM-DD)")
		c.Flags().StringVar(&taskEndFlag, "end", "", "end date (YYYY-MM-DD)")
		c.Flags().Float64Var(&taskDurationFlag, "duration", 0, "planned duration in hours")
	}

	taskCmd.AddCommand(taskCreateCmd, taskSubCmd, taskListCmd, taskSubsCmd, taskShowCmd, taskDeleteCmd)
	rootCmd.AddCommand(taskCmd)
}
