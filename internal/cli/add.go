package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keyline-dev/keyline/internal/api"
	"github.com/keyline-dev/keyline/internal/cache"
	"github.com/keyline-dev/keyline/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <key> <lang=value>...",
	Short: "Create a new translation entry",
	Long: `Create an entry in the active project. At least one initial
translation must be given as lang=value pairs:

  keyline add menu.settings en="Settings" fr="Paramètres" --category menu`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("project", "p", "", "Project to add to (defaults to the active project)")
	addCmd.Flags().StringP("category", "c", "", "Category for the new entry")
	addCmd.Flags().StringP("description", "d", "", "Description shown to translators")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	entryKey := args[0]

	translations := make(map[string]api.NewTranslation, len(args)-1)
	for _, pair := range args[1:] {
		lang, value, ok := strings.Cut(pair, "=")
		if !ok || lang == "" {
			return fmt.Errorf("invalid translation %q, want lang=value", pair)
		}
		translations[lang] = api.NewTranslation{Value: value}
	}

	if err := deps.EnsureState(ctx); err != nil {
		return err
	}
	if err := deps.EnsureAPI(); err != nil {
		return err
	}

	projectFlag, _ := cmd.Flags().GetString("project")
	category, _ := cmd.Flags().GetString("category")
	description, _ := cmd.Flags().GetString("description")

	project, err := resolveProject(ctx, projectFlag)
	if err != nil {
		return err
	}

	progress := ui.NewProgress(deps.Headless, noColor(cmd))
	spin := progress.Spinner(fmt.Sprintf("creating %s", entryKey))
	entry, err := deps.API.CreateEntry(ctx, project.ID, api.NewEntry{
		Key:          entryKey,
		Category:     category,
		Description:  description,
		Translations: translations,
	})
	spin.Stop()
	if err != nil {
		return fmt.Errorf("create %s: %w", entryKey, err)
	}
	deps.Cache.Invalidate(cache.EntriesKey(project.ID))

	fmt.Fprintf(out, "%s created %s (id %d) with %d translation(s)\n",
		symSuccess(), entry.Key, entry.ID, len(translations))
	return nil
}
