package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/symcheck/internal/config"
	"github.com/abhisek/symcheck/internal/triage"
)

var rootCmd = &cobra.Command{
	Use:   "symcheck",
	Short: "Student symptom checker",
	Long: "symcheck: a terminal symptom checker that asks a short series of yes/no\n" +
		"questions and recommends self-care, the campus clinic, urgent care, or\n" +
		"emergency services. It does not provide medical advice.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides SYMCHECK_CONFIG env var)")
	rootCmd.PersistentFlags().String("policy", "",
		fmt.Sprintf("Evaluation policy: %s (default %q)", policyList(), triage.DefaultPolicy))
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides SYMCHECK_LOG_FILE)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func policyList() string {
	s := ""
	for i, n := range triage.PolicyNames() {
		if i > 0 {
			s += "|"
		}
		s += string(n)
	}
	return s
}

// resolveConfig loads the config file (--config flag, then SYMCHECK_CONFIG,
// then the default XDG path), applies flag overrides and validates the
// result.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("policy"); v != "" {
		cfg.Policy = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Logging.File = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func logConfig(logger *zap.Logger, cfg *config.Config) {
	logger.Info("Config resolved",
		zap.String("policy", cfg.Policy),
		zap.String("emergency_number", cfg.Actions.EmergencyNumber),
		zap.String("maps_url", cfg.Actions.MapsURL),
		zap.Duration("open_timeout", cfg.GetOpenTimeout()))
}
