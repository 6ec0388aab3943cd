package main

import (
	"os"

	"github.com/rbtvdl/rbtvdl/internal/query"
	"github.com/spf13/cobra"
)

func init() {
	var (
		flags        selectionFlags
		listEpisodes bool
	)

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "List shows, episodes, hosts and blog posts",
		Long: `List mediathek records without downloading anything.

A show or bohne selection prints the matching shows or hosts;
--episodes expands the selection to its episodes instead. With
--search and no other selection, the backend's full-text search is
queried.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, &flags, listEpisodes)
		},
	}

	flags.register(browseCmd, true)
	browseCmd.Flags().BoolVar(&listEpisodes, "episodes", false, "List the episodes of the selection")

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, flags *selectionFlags, listEpisodes bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mod, err := flags.modifiers()
	if err != nil {
		return err
	}
	sel := flags.selection()

	log := newLogger(cfg)
	src, release, err := openSource(cfg, log)
	if err != nil {
		return err
	}
	defer release()

	ctx := cmd.Context()
	missing := cfg.Download.MissingValue
	resolver := query.NewResolver(src, missing)
	out := os.Stdout

	// --search without any other selection queries the backend's
	// full-text search; combined with a selection it narrows the
	// resolved records instead.
	if mod.Search != "" && isEmptySelection(sel) {
		result, err := resolver.Search(ctx, mod.Search)
		if err != nil {
			return err
		}
		printSearchResult(out, result, missing)
		return nil
	}

	switch {
	case len(sel.BlogIDs) > 0 || sel.AllBlog:
		posts, err := resolver.Posts(ctx, sel, mod)
		if err != nil {
			return err
		}
		printPosts(out, posts, missing)

	case listEpisodes || len(sel.EpisodeIDs) > 0 || len(sel.SeasonIDs) > 0:
		episodes, err := resolver.Episodes(ctx, sel, mod)
		if err != nil {
			return err
		}
		printEpisodes(out, episodes, missing)

	case len(sel.BohneIDs) > 0 || len(sel.BohneNames) > 0 || sel.AllBohnen:
		bohnen, err := resolver.Bohnen(ctx, sel, mod)
		if err != nil {
			return err
		}
		printBohnen(out, bohnen, missing)

	default:
		shows, err := resolver.Shows(ctx, sel, mod)
		if err != nil {
			return err
		}
		printShows(out, shows, missing)
	}
	return nil
}

func isEmptySelection(sel query.Selection) bool {
	return len(sel.EpisodeIDs) == 0 && len(sel.SeasonIDs) == 0 &&
		len(sel.ShowIDs) == 0 && len(sel.ShowNames) == 0 && !sel.AllShows &&
		len(sel.BohneIDs) == 0 && len(sel.BohneNames) == 0 && !sel.AllBohnen &&
		len(sel.BlogIDs) == 0 && !sel.AllBlog
}
