package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keyline-dev/keyline/internal/ui"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage the active project",
}

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.AddCommand(
		newProjectListCmd(),
		newProjectUseCmd(),
	)
}

func newProjectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the server's projects",
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
			spin := progress.Spinner("loading projects")
			projects, err := fetchProjects(ctx)
			spin.Stop()
			if err != nil {
				return fmt.Errorf("list projects: %w", err)
			}

			active, hasActive := deps.Projects.Active()
			for _, p := range projects {
				marker := " "
				if hasActive && p.ID == active.ID {
					marker = symActive()
				}
				fmt.Fprintf(out, "%s %-24s %s\n", marker, p.ID, p.Name)
			}
			return nil
		},
	}
}

func newProjectUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <project-id>",
		Short: "Set the active project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			id := args[0]

			if err := deps.EnsureState(ctx); err != nil {
				return err
			}
			if err := deps.EnsureAPI(); err != nil {
				return err
			}

			progress := ui.NewProgress(deps.Headless, noColor(cmd))
			spin := progress.Spinner("loading projects")
			projects, err := fetchProjects(ctx)
			spin.Stop()
			if err != nil {
				return fmt.Errorf("list projects: %w", err)
			}

			for _, p := range projects {
				if p.ID == id {
					if err := deps.Projects.SetActive(ctx, p); err != nil {
						return fmt.Errorf("persist active project: %w", err)
					}
					fmt.Fprintf(out, "%s active project: %s (%s)\n", symSuccess(), p.Name, p.ID)
					return nil
				}
			}
			return fmt.Errorf("no project %q on the server", id)
		},
	}
}
