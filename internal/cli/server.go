package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/martijn/exerlog/internal/api"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve the exercise tracker API",
	Long: `Serve the exercise tracker API on api_host:api_port (PORT overrides the port).

The server runs until SIGINT or SIGTERM, then drains open requests for up to 10s.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices(cfg)
		if err != nil {
			return err
		}
		defer services.Close()

		if ephemeral(cfg) {
			services.Log.Warn(ephemeralWarning)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := api.NewServer(cfg, services.Log, services.UserService, services.ExerciseService)
		return serve(ctx, server, services.Log, shutdownTimeout)
	},
}

// serve runs server until ctx is done, then shuts it down within timeout.
// A listener that fails to come up is returned as an error right away.
func serve(ctx context.Context, server *api.Server, log logrus.FieldLogger, timeout time.Duration) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- server.Start()
	}()

	select {
	case err := <-listenErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
