package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keyline-dev/keyline/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "keyline",
	Short: "keyline: terminal editor for localization catalogs",
	Long: `keyline is a terminal client for localization catalogs. It shows a
project's translation entries as a key-by-language matrix, lets you edit
single cells or batches of cells, and syncs every change back to the
localization service.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	defer func() {
		if deps != nil {
			_ = deps.Close()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("keyline %s\n", version.GetVersion()))
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// noColor reports whether colored output is disabled for this invocation,
// by flag or by configuration.
func noColor(cmd *cobra.Command) bool {
	if flag, _ := cmd.Flags().GetBool("no-color"); flag {
		return true
	}
	if deps != nil {
		if cfg := deps.Config.Get(); cfg != nil {
			return cfg.System.NoColor
		}
	}
	return false
}
