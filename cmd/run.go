package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/symcheck/internal/action"
	"github.com/abhisek/symcheck/internal/app"
	"github.com/abhisek/symcheck/internal/catalog"
	"github.com/abhisek/symcheck/internal/config"
	"github.com/abhisek/symcheck/internal/logging"
)

// runApp resolves config, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	logConfig(logger, cfg)

	policy, err := cfg.EvaluationPolicy()
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Catalog: catalog.Default(),
		Policy:  policy,
		Actions: newDispatcher(cfg, logger),
		Logger:  logger,
	})
}

// newDispatcher wires the system opener and clipboard into the follow-up
// actions.
func newDispatcher(cfg *config.Config, logger *zap.Logger) *action.Dispatcher {
	opener := action.NewSystemOpener()
	clip := action.SystemClipboard{}
	return &action.Dispatcher{
		Dialer: &action.URIDialer{
			Opener:    opener,
			Clipboard: clip,
			Logger:    logger,
		},
		Locator: &action.MapsLocator{
			BaseURL:   cfg.Actions.MapsURL,
			Opener:    opener,
			Clipboard: clip,
			Logger:    logger,
		},
		EmergencyNumber: cfg.Actions.EmergencyNumber,
		ClinicQuery:     cfg.Actions.ClinicQuery,
		Timeout:         cfg.GetOpenTimeout(),
		Logger:          logger,
	}
}
