package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keyline-dev/keyline/internal/ui"
)

var langCmd = &cobra.Command{
	Use:   "lang",
	Short: "Manage the active language",
}

func init() {
	rootCmd.AddCommand(langCmd)

	langCmd.AddCommand(
		newLangListCmd(),
		newLangUseCmd(),
	)
}

func newLangListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the server's languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if err := deps.EnsureState(ctx); err != nil {
				return err
			}
			if err := deps.EnsureAPI(); err != nil {
				return err
			}

			progress := ui.NewProgress(deps.Headless, noColor(cmd))
			spin := progress.Spinner("loading languages")
			languages, err := fetchLanguages(ctx)
			spin.Stop()
			if err != nil {
				return fmt.Errorf("list languages: %w", err)
			}

			active, hasActive := deps.Languages.Active()
			for _, l := range languages {
				marker := " "
				if hasActive && l.Code == active.Code {
					marker = symActive()
				}
				fmt.Fprintf(out, "%s %-8s %s\n", marker, l.Code, l.Name)
			}
			return nil
		},
	}
}

func newLangUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <code>",
		Short: "Set the active language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			code := args[0]

			if err := deps.EnsureState(ctx); err != nil {
				return err
			}
			if err := deps.EnsureAPI(); err != nil {
				return err
			}

			progress := ui.NewProgress(deps.Headless, noColor(cmd))
			spin := progress.Spinner("loading languages")
			languages, err := fetchLanguages(ctx)
			spin.Stop()
			if err != nil {
				return fmt.Errorf("list languages: %w", err)
			}

			for _, l := range languages {
				if l.Code == code {
					if err := deps.Languages.SetActive(ctx, l); err != nil {
						return fmt.Errorf("persist active language: %w", err)
					}
					fmt.Fprintf(out, "%s active language: %s (%s)\n", symSuccess(), l.Name, l.Code)
					return nil
				}
			}
			return fmt.Errorf("no language %q on the server", code)
		},
	}
}
