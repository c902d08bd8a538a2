package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage the skill catalog and employee skills",
}

var skillAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a skill to the global catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireManager(); err != nil {
			return err
		}

		rows, err := skillSvc.AddSkillToCatalog(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if rows == 0 {
			fmt.Printf("Skill %s already in catalog\n", args[0])
		} else {
			fmt.Printf("Added skill %s\n", args[0])
		}
		return nil
	},
}

var skillRemoveCmd = &cobra.Command{
	Use:   "remove <title>",
	Short: "Remove a skill from the global catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireManager(); err != nil {
			return err
		}

		rows, err := skillSvc.RemoveSkillFromCatalog(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if rows == 0 {
			fmt.Printf("Skill %s was not in catalog\n", args[0])
		} else {
			fmt.Printf("Removed skill %s\n", args[0])
		}
		return nil
	},
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skill catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, err := skillSvc.ListCatalog(cmd.Context())
		if err != nil {
			return err
		}

		for _, s := range skills {
			fmt.Println(s.Title)
		}
		return nil
	},
}

var skillAssignCmd = &cobra.Command{
	Use:   "assign <username> <title> <level>",
	Short: "Assign a catalog skill to an employee",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireManager(); err != nil {
			return err
		}

		level, err := models.ParseSkillLevel(args[2])
		if err != nil {
			return err
		}

		if err := skillSvc.AssignSkill(cmd.Context(), args[0], args[1], level); err != nil {
			return err
		}

		fmt.Printf("Assigned %s (%s) to %s\n", args[1], level, args[0])
		return nil
	},
}

var skillUnassignCmd = &cobra.Command{
	Use:   "unassign <username> <title> <level>",
	Short: "Remove a skill from an employee",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireManager(); err != nil {
			return err
		}

		level, err := models.ParseSkillLevel(args[2])
		if err != nil {
			return err
		}

		if err := skillSvc.UnassignSkill(cmd.Context(), args[0], args[1], level); err != nil {
			return err
		}

		fmt.Printf("Unassigned %s (%s) from %s\n", args[1], level, args[0])
		return nil
	},
}

var wageCmd = &cobra.Command{
	Use:   "wage <username>",
	Short: "Show an employee's skill-weighted hourly wage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := skillSvc.BaseWage(args[0])
		wage, err := skillSvc.HourlyWage(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("base: %.2f\thourly: %.2f\n", base, wage)
		return nil
	},
}

func init() {
	skillCmd.AddCommand(skillAddCmd, skillRemoveCmd, skillListCmd, skillAssignCmd, skillUnassignCmd)
	rootCmd.AddCommand(skillCmd, wageCmd)
}
