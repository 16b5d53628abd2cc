package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keyline-dev/keyline/internal/cache"
	"github.com/keyline-dev/keyline/internal/catalog"
	"github.com/keyline-dev/keyline/internal/editor"
	"github.com/keyline-dev/keyline/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print translation entries for the active project",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("project", "p", "", "Project to list (defaults to the active project)")
	listCmd.Flags().StringP("lang", "l", "", "Language column to show (defaults to the active language)")
	listCmd.Flags().StringP("category", "c", "", "Filter by category")
	listCmd.Flags().StringP("search", "s", "", "Filter by search text")
	listCmd.Flags().Int("page", 0, "Show a single page (0 shows everything)")
	listCmd.Flags().Bool("refresh", false, "Bypass the entry cache")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if err := deps.EnsureState(ctx); err != nil {
		return err
	}
	if err := deps.EnsureAPI(); err != nil {
		return err
	}

	projectFlag, _ := cmd.Flags().GetString("project")
	langFlag, _ := cmd.Flags().GetString("lang")
	category, _ := cmd.Flags().GetString("category")
	search, _ := cmd.Flags().GetString("search")
	page, _ := cmd.Flags().GetInt("page")
	refresh, _ := cmd.Flags().GetBool("refresh")

	project, err := resolveProject(ctx, projectFlag)
	if err != nil {
		return err
	}
	lang, err := resolveLanguage(ctx, langFlag)
	if err != nil {
		return err
	}
	if category == "" {
		category = deps.Categories.Active()
	}

	progress := ui.NewProgress(deps.Headless, noColor(cmd))
	spin := progress.Spinner(fmt.Sprintf("loading %s", project.Name))
	key := cache.EntriesKey(project.ID)
	var entries []catalog.Entry
	if refresh {
		entries, err = deps.Cache.Refresh(ctx, key)
	} else {
		entries, err = deps.Cache.Load(ctx, key)
	}
	spin.Stop()
	if err != nil {
		return fmt.Errorf("load entries: %w", err)
	}

	filtered := editor.FilterEntries(entries, category, search)
	total := editor.PageCount(len(filtered))
	if page > 0 {
		filtered = editor.PageSlice(filtered, page)
	}

	if len(filtered) == 0 {
		fmt.Fprintln(out, cliMuted.Render("no entries match"))
		return nil
	}

	header := fmt.Sprintf("%-32s %-16s %s", "KEY", "CATEGORY", lang.Code)
	fmt.Fprintln(out, cliPrimary.Render(header))
	for _, entry := range filtered {
		value := entry.Value(lang.Code)
		if value == "" {
			value = cliMuted.Render("—")
		}
		fmt.Fprintf(out, "%-32s %-16s %s\n", entry.Key, entry.Category, value)
	}
	if page > 0 {
		fmt.Fprintln(out, cliMuted.Render(fmt.Sprintf("page %d/%d", page, total)))
	}
	return nil
}
