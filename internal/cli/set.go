package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keyline-dev/keyline/internal/cache"
	"github.com/keyline-dev/keyline/internal/catalog"
	"github.com/keyline-dev/keyline/internal/ui"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <lang> <value>",
	Short: "Update a single translation cell without the matrix",
	Long: `Update one translation value by entry key. The other languages of
the entry are left untouched. Intended for scripts and CI, where the
interactive matrix is unavailable.`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().StringP("project", "p", "", "Project to update (defaults to the active project)")
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	entryKey, lang, value := args[0], args[1], args[2]

	if err := deps.EnsureState(ctx); err != nil {
		return err
	}
	if err := deps.EnsureAPI(); err != nil {
		return err
	}

	projectFlag, _ := cmd.Flags().GetString("project")
	project, err := resolveProject(ctx, projectFlag)
	if err != nil {
		return err
	}

	progress := ui.NewProgress(deps.Headless, noColor(cmd))
	spin := progress.Spinner(fmt.Sprintf("loading %s", project.Name))
	entries, err := deps.Cache.Load(ctx, cache.EntriesKey(project.ID))
	spin.Stop()
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}

	var target *catalog.Entry
	for i := range entries {
		if entries[i].Key == entryKey {
			target = &entries[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no entry with key %q in project %s", entryKey, project.ID)
	}

	editorName := deps.Config.Get().User.Name
	merged := catalog.Merge(target.Translations, lang, value, editorName, time.Now().UTC())

	spin = progress.Spinner(fmt.Sprintf("saving %s", entryKey))
	_, err = deps.API.UpdateEntry(ctx, project.ID, target.ID, merged)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("update %s: %w", entryKey, err)
	}
	deps.Cache.Invalidate(cache.EntriesKey(project.ID))

	fmt.Fprintf(out, "%s %s.%s = %q\n", symSuccess(), entryKey, lang, value)
	return nil
}
