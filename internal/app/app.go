// Package app wires configuration, strategies, presentation, and the HTTP
// host binding into a runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/primkit/primkit/internal/config"
	apperrors "github.com/primkit/primkit/internal/errors"
	"github.com/primkit/primkit/internal/fibonacci"
	"github.com/primkit/primkit/internal/ui"
)

// Version is the application version, overridable at build time via -ldflags.
var Version = "dev"

// Application represents the primkit application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = fibonacci.NewDefaultFactory()
	}

	availableAlgos := app.Factory.List()

	programName := "primkit"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		fmt.Fprintf(out, "primkit %s\n", Version)
		return apperrors.ExitSuccess
	}

	a.configureLogging()
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Serve {
		return a.runServe(ctx)
	}

	switch a.Config.Op {
	case config.OpSort:
		return a.runSortDemo(ctx, out)
	case config.OpMatMul:
		return a.runMatMulDemo(ctx, out)
	default:
		return a.runFibonacci(ctx, out)
	}
}

// configureLogging sets the global log level from the verbosity flags.
func (a *Application) configureLogging() {
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
