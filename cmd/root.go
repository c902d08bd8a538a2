package cmd

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/config"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/database"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/logging"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/services/assignment"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/services/contribution"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/services/dependency"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/services/employee"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/services/hierarchy"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/services/skill"
)

// The command layer is the engine's external caller: it owns authorization
// (manager vs worker) and presentation, and invokes the services for
// everything else.
var (
	db   *sql.DB
	repo *database.Repository

	hierarchySvc    hierarchy.Service
	dependencySvc   dependency.Service
	assignmentSvc   assignment.Service
	contributionSvc contribution.Service
	employeeSvc     employee.Service
	skillSvc        skill.Service

	roleFlag string
)

var rootCmd = &cobra.Command{
	Use:   "plannex",
	Short: "Plannex - project, task and time management",
	Long: `Plannex manages projects, their tasks and subtasks, the dependencies
between subtasks, work assignments, logged hours and skill-based wages.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := logging.Init(cfg.LogLevel); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		db, err = database.Open(cmd.Context(), cfg.DatabasePath)
		if err != nil {
			return err
		}

		repo = database.NewRepository(db)
		hierarchySvc = hierarchy.NewService(repo)
		dependencySvc = dependency.NewService(repo)
		assignmentSvc = assignment.NewService(repo)
		contributionSvc = contribution.NewService(repo)
		employeeSvc = employee.NewService(repo)
		skillSvc = skill.NewService(repo, cfg.BaseWage)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			_ = db.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&roleFlag, "role", "worker", "caller role: worker or manager")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// callerRole maps the --role flag to a role. Anything that isn't the
// manager is a worker.
func callerRole() models.Role {
	if roleFlag == "manager" {
		return models.RoleManager
	}
	return models.RoleWorker
}

// requireManager gates operations the engine itself does not authorize.
func requireManager() error {
	if callerRole() != models.RoleManager {
		return fmt.Errorf("operation requires the manager role (use --role manager)")
	}
	return nil
}

// parseID parses a numeric entity id argument.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseDate parses a YYYY-MM-DD flag value, tolerating the empty string.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}
