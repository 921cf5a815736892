package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/deppfellow/connect-case-creator/internal/config"
	"github.com/deppfellow/connect-case-creator/internal/handler"
	"github.com/deppfellow/connect-case-creator/internal/lib/utils"
	"github.com/deppfellow/connect-case-creator/internal/logger"
	"github.com/deppfellow/connect-case-creator/internal/server"
	"github.com/deppfellow/connect-case-creator/internal/service"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke",
	Short: "Invoke the handler once with an event",
	Long: `Invoke the handler once and print the response as JSON.

The event is read from --event, or from stdin when --event is "-" or unset.`,
	Args: cobra.NoArgs,
	RunE: runInvoke,
}

var invokeEvent string

func init() {
	rootCmd.AddCommand(invokeCmd)

	invokeCmd.Flags().StringVarP(&invokeEvent, "event", "e", "-", `event JSON file, or "-" for stdin`)
}

func runInvoke(cmd *cobra.Command, _ []string) error {
	event, err := readEvent(cmd.InOrStdin(), invokeEvent)
	if err != nil {
		return err
	}

	// The handler validates configuration itself, so a partial config is
	// still handed to it and the failure is reported the way Lambda would.
	cfg, cfgErr := config.LoadConfig()
	if cfg == nil {
		return cfgErr
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cmd.Context(), cfg, &log, loggerService)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	services, err := service.NewService(srv)
	if err != nil {
		return err
	}

	resp, err := handler.NewHandlers(srv, services).Case.Handle(cmd.Context(), event)
	if err != nil {
		return err
	}

	return utils.PrintJSON(cmd.OutOrStdout(), resp)
}

// readEvent decodes the event from path, or from stdin when path is "-".
func readEvent(stdin io.Reader, path string) (handler.Event, error) {
	var event handler.Event

	var r io.Reader = stdin
	if path != "-" && path != "" {
		f, err := os.Open(path)
		if err != nil {
			return event, errors.Wrap(err, "failed to open event file")
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&event); err != nil {
		return event, errors.Wrapf(err, "failed to decode event from %q", path)
	}

	return event, nil
}
