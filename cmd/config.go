package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/symcheck/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the symcheck config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			path = p
		}
		force, _ := cmd.Flags().GetBool("force")
		return initConfig(cmd.OutOrStdout(), path, force)
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

// initConfig writes the default config to path. An existing file is kept
// unless force is set.
func initConfig(w io.Writer, path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Wrote %s\n", path)
	return err
}
