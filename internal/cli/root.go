package cli

import (
	"fmt"

	"github.com/martijn/exerlog/internal/core/repository"
	"github.com/martijn/exerlog/internal/core/service"
	"github.com/martijn/exerlog/internal/infrastructure/memory"
	"github.com/martijn/exerlog/internal/infrastructure/sqlite"
	"github.com/martijn/exerlog/pkg/config"
	"github.com/martijn/exerlog/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "exerlog",
	Short: "exerlog - exercise tracking API",
	Long: `exerlog tracks exercises for registered users.

It provides:
- User registration with stable ids
- Exercise logging with lenient date handling
- Log queries filtered by date range and count
- A REST API compatible with the freeCodeCamp exercise tracker tests`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.DefaultConfigPath+")")
}

// Services holds all initialized services
type Services struct {
	Log             *logger.Logger
	DB              *sqlite.DB
	UserRepo        repository.UserRepository
	ExerciseRepo    repository.ExerciseRepository
	UserService     *service.UserService
	ExerciseService *service.ExerciseService
}

// initServices initializes storage and services for the configured driver
func initServices(cfg *config.Config) (*Services, error) {
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	services := &Services{Log: log}

	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := sqlite.New(cfg.DBPath)
		if err != nil {
			log.Close()
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		services.DB = db
		services.UserRepo = sqlite.NewUserRepository(db)
		services.ExerciseRepo = sqlite.NewExerciseRepository(db)
	default:
		store := memory.NewStore()
		services.UserRepo = memory.NewUserRepository(store)
		services.ExerciseRepo = memory.NewExerciseRepository(store)
	}

	log.WithField("driver", cfg.DBDriver).Debug("storage initialized")

	services.UserService = service.NewUserService(services.UserRepo, nil, log)
	services.ExerciseService = service.NewExerciseService(services.UserRepo, services.ExerciseRepo, log)

	return services, nil
}

// Close closes the database and the log file
func (s *Services) Close() {
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			s.Log.WithError(err).Warn("failed to close database")
		}
	}
	if s.Log != nil {
		s.Log.Close()
	}
}

// ephemeral reports whether nothing outlives the process.
func ephemeral(c *config.Config) bool {
	return c.DBDriver == config.DriverMemory || c.DBPath == sqlite.MemoryPath
}

const ephemeralWarning = "storage is in memory; set db_driver=sqlite and an on-disk db_path to keep data"

// warnEphemeral tells CLI users that a one-shot command against memory
// storage is lost when it exits.
func warnEphemeral(cmd *cobra.Command) {
	if ephemeral(cfg) {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: "+ephemeralWarning)
	}
}
