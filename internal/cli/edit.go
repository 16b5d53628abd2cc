package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/keyline-dev/keyline/internal/editor"
	"github.com/keyline-dev/keyline/internal/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive translation matrix",
	Long: `Open the translation matrix for the active project and language.
Filter by category, search across keys and values, edit single cells, or
select entries and edit a whole column at once.`,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringP("project", "p", "", "Project to open (defaults to the active project)")
	editCmd.Flags().StringP("lang", "l", "", "Language column to edit (defaults to the active language)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := deps.EnsureState(ctx); err != nil {
		return err
	}
	if err := deps.EnsureAPI(); err != nil {
		return err
	}
	if deps.Headless.IsHeadless() {
		return fmt.Errorf("edit needs a terminal; use 'keyline set' for scripted updates")
	}

	projectFlag, _ := cmd.Flags().GetString("project")
	langFlag, _ := cmd.Flags().GetString("lang")

	project, err := resolveProject(ctx, projectFlag)
	if err != nil {
		return err
	}
	lang, err := resolveLanguage(ctx, langFlag)
	if err != nil {
		return err
	}

	cfg := deps.Config.Get()
	view := editor.NewView()
	view.SetCategory(deps.Categories.Active())
	inval := entriesInvalidator{cache: deps.Cache}
	session := editor.NewSession(deps.API, view, inval, project.ID, cfg.User.Name, nil, deps.Logger)
	batch := editor.NewBatch(deps.API, view, view, inval, project.ID, cfg.User.Name, nil, deps.Logger)

	model := tui.New(tui.Options{
		View:       view,
		Session:    session,
		Batch:      batch,
		Cache:      deps.Cache,
		Project:    project,
		Language:   lang,
		Categories: deps.Categories,
		NoColor:    noColor(cmd),
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run matrix: %w", err)
	}
	return nil
}
