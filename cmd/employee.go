package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage the employee registry",
}

var employeeRegisterCmd = &cobra.Command{
	Use:   "register <username> <name> <email> <password>",
	Short: "Register a new employee",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireManager(); err != nil {
			return err
		}

		emp := models.Employee{
			Username:     args[0],
			Name:         args[1],
			Email:        args[2],
			Password:     args[3],
			WorkdayStart: workdayStartFlag,
			WorkdayEnd:   workdayEndFlag,
		}
		if err := employeeSvc.Register(cmd.Context(), emp); err != nil {
			return err
		}

		fmt.Printf("Registered %s\n", emp.Username)
		return nil
	},
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered employees",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		employees, err := employeeSvc.List(cmd.Context())
		if err != nil {
			return err
		}

		for _, e := range employees {
			fmt.Printf("%s\t%s\t%s\t%s-%s\n", e.Username, e.Name, e.Email, e.WorkdayStart, e.WorkdayEnd)
		}
		return nil
	},
}

var employeeShowCmd = &cobra.Command{
	Use:   "show <username>",
	Short: "Show an employee with their skills and wage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		emp, err := employeeSvc.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		wage, err := skillSvc.HourlyWage(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s\t%s\t%s\n", emp.Username, emp.Name, emp.Email)
		for _, es := range emp.Skills {
			fmt.Printf("skill: %s (%s)\n", es.SkillTitle, es.Level)
		}
		fmt.Printf("hourly wage: %.2f\n", wage)
		return nil
	},
}

var employeeRemoveCmd = &cobra.Command{
	Use:   "remove <username>",
	Short: "Remove an employee and their records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireManager(); err != nil {
			return err
		}

		if err := employeeSvc.Remove(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

var (
	workdayStartFlag string
	workdayEndFlag   string
)

func init() {
	employeeRegisterCmd.Flags().StringVar(&workdayStartFlag, "workday-start", "09:00", "workday start (HH:MM)")
	employeeRegisterCmd.Flags().StringVar(&workdayEndFlag, "workday-end", "17:00", "workday end (HH:MM)")

	employeeCmd.AddCommand(employeeRegisterCmd, employeeListCmd, employeeShowCmd, employeeRemoveCmd)
	rootCmd.AddCommand(employeeCmd)
}
