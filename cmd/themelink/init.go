package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/themelink/internal/config"
)

var initOpts struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default themelink.toml",
	Long: `Write a themelink.toml with the default settings into the project root
(or the path given by --config), ready to be edited.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initOpts.force, "force", false,
		"Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := globalOpts.configPath
	if path == "" {
		path = config.ConfigPath(globalOpts.root)
	}

	if _, err := os.Stat(path); err == nil && !initOpts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
