package main

import (
	"github.com/rbtvdl/rbtvdl/internal/query"
	"github.com/spf13/cobra"
)

// selectionFlags holds the record selection and modifier flags shared
// by download and browse.
type selectionFlags struct {
	episodeIDs []int
	seasonIDs  []int
	showIDs    []int
	showNames  []string
	allShows   bool
	bohneIDs   []int
	bohneNames []string
	allBohnen  bool
	blogIDs    []int
	allBlog    bool

	unsortedOnly   bool
	bohneNum       int
	bohneExclusive bool
	sortBy         string
	limit          int
	search         string
}

func (f *selectionFlags) register(cmd *cobra.Command, withBrowseFlags bool) {
	fl := cmd.Flags()
	fl.IntSliceVar(&f.episodeIDs, "episode-id", nil, "Select episodes by id")
	fl.IntSliceVar(&f.seasonIDs, "season-id", nil, "Select all episodes of seasons")
	fl.IntSliceVar(&f.showIDs, "show-id", nil, "Select all episodes of shows")
	fl.StringArrayVar(&f.showNames, "show-name", nil, "Select all episodes of shows by name")
	fl.BoolVar(&f.allShows, "all-shows", false, "Select every show")
	fl.IntSliceVar(&f.bohneIDs, "bohne-id", nil, "Select episodes featuring hosts by id")
	fl.StringArrayVar(&f.bohneNames, "bohne-name", nil, "Select episodes featuring hosts by name")
	fl.IntSliceVar(&f.blogIDs, "blog-id", nil, "Select blog posts by id")
	fl.BoolVar(&f.allBlog, "all-blog", false, "Select every blog post")

	fl.BoolVar(&f.unsortedOnly, "unsorted-only", false, "Only episodes outside any season")
	fl.IntVar(&f.bohneNum, "bohne-num", 1, "Minimum number of selected hosts per episode")
	fl.BoolVar(&f.bohneExclusive, "bohne-exclusive", false, "Drop episodes featuring unselected hosts")
	fl.StringVar(&f.sortBy, "sort-by", "", "Sort by id, title, showName or firstBroadcastdate")
	fl.IntVar(&f.limit, "limit", 0, "Limit the number of records (0 = no limit)")

	if withBrowseFlags {
		fl.BoolVar(&f.allBohnen, "all-bohnen", false, "Select every host")
		fl.StringVar(&f.search, "search", "", "Filter records by a case-insensitive substring")
	}

	cmd.MarkFlagsMutuallyExclusive("all-shows", "show-id")
	cmd.MarkFlagsMutuallyExclusive("all-shows", "show-name")
	if withBrowseFlags {
		cmd.MarkFlagsMutuallyExclusive("all-bohnen", "bohne-id")
		cmd.MarkFlagsMutuallyExclusive("all-bohnen", "bohne-name")
	}
}

func (f *selectionFlags) selection() query.Selection {
	return query.Selection{
		EpisodeIDs: f.episodeIDs,
		SeasonIDs:  f.seasonIDs,
		ShowIDs:    f.showIDs,
		ShowNames:  f.showNames,
		AllShows:   f.allShows,
		BohneIDs:   f.bohneIDs,
		BohneNames: f.bohneNames,
		AllBohnen:  f.allBohnen,
		BlogIDs:    f.blogIDs,
		AllBlog:    f.allBlog,
	}
}

func (f *selectionFlags) modifiers() (query.Modifiers, error) {
	sortBy, err := query.ParseSortField(f.sortBy)
	if err != nil {
		return query.Modifiers{}, err
	}
	return query.Modifiers{
		UnsortedOnly: f.unsortedOnly,
		MinBohnen:    f.bohneNum,
		Exclusive:    f.bohneExclusive,
		Search:       f.search,
		SortBy:       sortBy,
		Limit:        f.limit,
	}, nil
}
