// Package query resolves CLI selections to concrete record sets and
// applies the secondary filters: unsorted-only, host thresholds,
// free-text search, sorting and limits. Filters compose by sequential
// application in that order.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rbtvdl/rbtvdl/internal/catalog"
)

// SortField selects the sort key for browse output.
type SortField string

const (
	SortNone     SortField = ""
	SortID       SortField = "id"
	SortTitle    SortField = "title"
	SortShowName SortField = "showName"
	SortDate     SortField = "firstBroadcastdate"
)

// ParseSortField validates a --sort-by value.
func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case SortNone, SortID, SortTitle, SortShowName, SortDate:
		return f, nil
	default:
		return SortNone, fmt.Errorf("unknown sort field %q (want id, title, showName or firstBroadcastdate)", s)
	}
}

// Unsorted keeps episodes that belong to no season.
func Unsorted(episodes []catalog.Episode) []catalog.Episode {
	var out []catalog.Episode
	for _, ep := range episodes {
		if !ep.InSeason() {
			out = append(out, ep)
		}
	}
	return out
}

// ByHosts keeps episodes where at least num of the requested hosts are
// present. With exclusive set, episodes featuring any host outside the
// requested set are dropped as well.
func ByHosts(episodes []catalog.Episode, hostIDs []int, num int, exclusive bool) []catalog.Episode {
	requested := make(map[int]bool, len(hostIDs))
	for _, id := range hostIDs {
		requested[id] = true
	}

	var out []catalog.Episode
	for _, ep := range episodes {
		present := 0
		foreign := false
		for _, host := range ep.Hosts {
			if requested[host] {
				present++
			} else {
				foreign = true
			}
		}
		if present < num {
			continue
		}
		if exclusive && foreign {
			continue
		}
		out = append(out, ep)
	}
	return out
}

// BySearch keeps episodes whose title or show name contains the query,
// case-insensitively.
func BySearch(episodes []catalog.Episode, text string) []catalog.Episode {
	needle := strings.ToLower(text)
	var out []catalog.Episode
	for _, ep := range episodes {
		if strings.Contains(strings.ToLower(ep.Title), needle) ||
			strings.Contains(strings.ToLower(ep.ShowName), needle) {
			out = append(out, ep)
		}
	}
	return out
}

// ShowsBySearch keeps shows whose title contains the query,
// case-insensitively.
func ShowsBySearch(shows []catalog.Show, text string) []catalog.Show {
	needle := strings.ToLower(text)
	var out []catalog.Show
	for _, show := range shows {
		if strings.Contains(strings.ToLower(show.Title), needle) {
			out = append(out, show)
		}
	}
	return out
}

// BohnenBySearch keeps hosts whose name contains the query,
// case-insensitively.
func BohnenBySearch(bohnen []catalog.Bohne, text string) []catalog.Bohne {
	needle := strings.ToLower(text)
	var out []catalog.Bohne
	for _, b := range bohnen {
		if strings.Contains(strings.ToLower(b.Name), needle) {
			out = append(out, b)
		}
	}
	return out
}

// PostsBySearch keeps blog posts whose title or subtitle contains the
// query, case-insensitively.
func PostsBySearch(posts []catalog.BlogPost, text string) []catalog.BlogPost {
	needle := strings.ToLower(text)
	var out []catalog.BlogPost
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Subtitle), needle) {
			out = append(out, p)
		}
	}
	return out
}

// SortEpisodes stably sorts episodes by the given field. Missing
// values (empty strings, zero dates) take the placeholder and order
// after present ones.
func SortEpisodes(episodes []catalog.Episode, field SortField, placeholder string) {
	switch field {
	case SortID:
		sort.SliceStable(episodes, func(i, j int) bool {
			return episodes[i].ID < episodes[j].ID
		})
	case SortTitle:
		sort.SliceStable(episodes, func(i, j int) bool {
			return lessString(episodes[i].Title, episodes[j].Title, placeholder)
		})
	case SortShowName:
		sort.SliceStable(episodes, func(i, j int) bool {
			return lessString(episodes[i].ShowName, episodes[j].ShowName, placeholder)
		})
	case SortDate:
		sort.SliceStable(episodes, func(i, j int) bool {
			a, b := episodes[i].FirstBroadcast, episodes[j].FirstBroadcast
			switch {
			case a.IsZero() && b.IsZero():
				return false
			case a.IsZero():
				return false // missing dates sort last
			case b.IsZero():
				return true
			default:
				return a.Before(b)
			}
		})
	}
}

// SortShows stably sorts shows; fields other than title fall back to
// id order.
func SortShows(shows []catalog.Show, field SortField, placeholder string) {
	switch field {
	case SortTitle, SortShowName:
		sort.SliceStable(shows, func(i, j int) bool {
			return lessString(shows[i].Title, shows[j].Title, placeholder)
		})
	case SortID, SortDate:
		sort.SliceStable(shows, func(i, j int) bool {
			return shows[i].ID < shows[j].ID
		})
	}
}

// SortBohnen stably sorts hosts; title sorts by name, anything else by
// id.
func SortBohnen(bohnen []catalog.Bohne, field SortField, placeholder string) {
	switch field {
	case SortTitle:
		sort.SliceStable(bohnen, func(i, j int) bool {
			return lessString(bohnen[i].Name, bohnen[j].Name, placeholder)
		})
	case SortID, SortShowName, SortDate:
		sort.SliceStable(bohnen, func(i, j int) bool {
			return bohnen[i].ID < bohnen[j].ID
		})
	}
}

// SortPosts stably sorts blog posts by id, title or publish date.
func SortPosts(posts []catalog.BlogPost, field SortField, placeholder string) {
	switch field {
	case SortTitle:
		sort.SliceStable(posts, func(i, j int) bool {
			return lessString(posts[i].Title, posts[j].Title, placeholder)
		})
	case SortDate:
		sort.SliceStable(posts, func(i, j int) bool {
			a, b := posts[i].PublishDate, posts[j].PublishDate
			switch {
			case a.IsZero() && b.IsZero():
				return false
			case a.IsZero():
				return false
			case b.IsZero():
				return true
			default:
				return a.Before(b)
			}
		})
	case SortID:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].ID < posts[j].ID
		})
	}
}

func lessString(a, b, placeholder string) bool {
	if a == "" {
		a = placeholder
	}
	if b == "" {
		b = placeholder
	}
	if a == placeholder && b != placeholder {
		return false
	}
	if b == placeholder && a != placeholder {
		return true
	}
	return a < b
}

// Limit truncates items to at most n entries; n <= 0 means no limit.
func Limit[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
