package app

import (
	"context"
	"os/signal"
	"syscall"

	apperrors "github.com/primkit/primkit/internal/errors"
	"github.com/primkit/primkit/internal/logging"
	"github.com/primkit/primkit/internal/server"
)

// runServe starts the HTTP API and blocks until a termination signal.
// The run timeout does not apply in serve mode; the server lives until
// SIGINT or SIGTERM.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := logging.NewLogger(a.ErrWriter, "server")
	srv := server.New(a.Config, a.Factory, logger)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server terminated", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
