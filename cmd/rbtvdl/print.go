package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
)

const dateFormat = "2006-01-02 15:04"

func orMissing(s, missing string) string {
	if s == "" {
		return missing
	}
	return s
}

func fmtDuration(seconds int) string {
	if seconds <= 0 {
		return "?"
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm", seconds/60)
	}
	return fmt.Sprintf("%dh%02dm", seconds/3600, seconds%3600/60)
}

func printEpisodes(w io.Writer, episodes []catalog.Episode, missing string) {
	for _, ep := range episodes {
		date := missing
		if !ep.FirstBroadcast.IsZero() {
			date = ep.FirstBroadcast.Format(dateFormat)
		}
		fmt.Fprintf(w, "%8d  %s: %s [%s, %s, %d part(s)]\n",
			ep.ID,
			orMissing(ep.ShowName, missing),
			orMissing(ep.Title, missing),
			date,
			fmtDuration(ep.Duration),
			len(ep.YoutubeTokens),
		)
	}
}

func printShows(w io.Writer, shows []catalog.Show, missing string) {
	for _, show := range shows {
		var notes []string
		if len(show.Seasons) > 0 {
			notes = append(notes, fmt.Sprintf("%d seasons", len(show.Seasons)))
		}
		if show.HasUnsortedEpisodes {
			notes = append(notes, "unsorted episodes")
		}
		if show.IsTruePodcast {
			notes = append(notes, "podcast")
		}
		suffix := ""
		if len(notes) > 0 {
			suffix = " (" + strings.Join(notes, ", ") + ")"
		}
		fmt.Fprintf(w, "%6d  %s%s\n", show.ID, orMissing(show.Title, missing), suffix)
	}
}

func printBohnen(w io.Writer, bohnen []catalog.Bohne, missing string) {
	for _, b := range bohnen {
		fmt.Fprintf(w, "%6d  %s (%d episodes)\n", b.ID, orMissing(b.Name, missing), b.EpisodeCount)
	}
}

func printPosts(w io.Writer, posts []catalog.BlogPost, missing string) {
	for _, p := range posts {
		date := missing
		if !p.PublishDate.IsZero() {
			date = p.PublishDate.Format(dateFormat)
		}
		fmt.Fprintf(w, "%6d  %s [%s]\n", p.ID, orMissing(p.Title, missing), date)
	}
}

func printSearchResult(w io.Writer, result *catalog.SearchResult, missing string) {
	if len(result.Shows) > 0 {
		fmt.Fprintln(w, "Shows:")
		printShows(w, result.Shows, missing)
	}
	if len(result.Episodes) > 0 {
		fmt.Fprintln(w, "Episodes:")
		printEpisodes(w, result.Episodes, missing)
	}
	if len(result.Posts) > 0 {
		fmt.Fprintln(w, "Blog posts:")
		printPosts(w, result.Posts, missing)
	}
	if len(result.Shows)+len(result.Episodes)+len(result.Posts) == 0 {
		fmt.Fprintln(w, "No matches.")
	}
}
