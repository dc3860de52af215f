package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/service"
	"github.com/spf13/cobra"
)

var (
	exerciseDescription string
	exerciseDuration    string
	exerciseDate        string

	logFrom  string
	logTo    string
	logLimit string
)

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Log and query exercises",
	Long:  "Log and query exercises in the configured storage.",
}

var exercisesAddCmd = &cobra.Command{
	Use:   "add <user-id>",
	Short: "Log an exercise for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		warnEphemeral(cmd)

		services, err := initServices(cfg)
		if err != nil {
			return err
		}
		defer services.Close()

		user, exercise, err := services.ExerciseService.AddExercise(cmd.Context(), args[0], service.ExerciseInput{
			Description: exerciseDescription,
			Duration:    exerciseDuration,
			Date:        exerciseDate,
		})
		if err != nil {
			return describeError(err, args[0])
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged %d minutes of '%s' for %s on %s\n",
			exercise.Duration, exercise.Description, user.Username, exercise.Date.Display())
		return nil
	},
}

var exercisesLogCmd = &cobra.Command{
	Use:   "log <user-id>",
	Short: "Show a user's exercise log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		warnEphemeral(cmd)

		services, err := initServices(cfg)
		if err != nil {
			return err
		}
		defer services.Close()

		log, err := services.ExerciseService.GetLog(cmd.Context(), args[0], service.LogParams{
			From:  logFrom,
			To:    logTo,
			Limit: logLimit,
		})
		if err != nil {
			return describeError(err, args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s): %d entries\n", log.User.Username, log.User.ID, len(log.Entries))
		if len(log.Entries) == 0 {
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tDURATION\tDESCRIPTION")
		for _, e := range log.Entries {
			fmt.Fprintf(w, "%s\t%d\t%s\n", e.Date.Display(), e.Duration, e.Description)
		}
		w.Flush()

		return nil
	},
}

func describeError(err error, userID string) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("user not found: %s", userID)
	}
	return err
}

func init() {
	exercisesAddCmd.Flags().StringVar(&exerciseDescription, "description", "", "what was done")
	exercisesAddCmd.Flags().StringVar(&exerciseDuration, "duration", "", "duration in minutes")
	exercisesAddCmd.Flags().StringVar(&exerciseDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	_ = exercisesAddCmd.MarkFlagRequired("duration")

	exercisesLogCmd.Flags().StringVar(&logFrom, "from", "", "earliest date, inclusive")
	exercisesLogCmd.Flags().StringVar(&logTo, "to", "", "latest date, inclusive")
	exercisesLogCmd.Flags().StringVar(&logLimit, "limit", "", "maximum number of entries")

	rootCmd.AddCommand(exercisesCmd)
	exercisesCmd.AddCommand(exercisesAddCmd)
	exercisesCmd.AddCommand(exercisesLogCmd)
}
