package query

import "errors"

// Selection describes what the user asked for. Exactly one criterion
// group must be set; show ids and show names combine into one group,
// as do bohne ids and names.
type Selection struct {
	EpisodeIDs []int
	SeasonIDs  []int
	ShowIDs    []int
	ShowNames  []string
	AllShows   bool
	BohneIDs   []int
	BohneNames []string
	AllBohnen  bool
	BlogIDs    []int
	AllBlog    bool
}

// Modifiers narrow and shape a resolved selection.
type Modifiers struct {
	UnsortedOnly bool
	MinBohnen    int // minimum requested hosts per episode, 0 means 1
	Exclusive    bool
	Search       string
	SortBy       SortField
	Limit        int
}

func (s Selection) hasShows() bool {
	return len(s.ShowIDs) > 0 || len(s.ShowNames) > 0 || s.AllShows
}

func (s Selection) hasBohnen() bool {
	return len(s.BohneIDs) > 0 || len(s.BohneNames) > 0 || s.AllBohnen
}

func (s Selection) hasBlog() bool {
	return len(s.BlogIDs) > 0 || s.AllBlog
}

// Validate checks that the selection names exactly one criterion group
// and that the modifiers apply to it.
func (s Selection) Validate(mod Modifiers) error {
	groups := 0
	if len(s.EpisodeIDs) > 0 {
		groups++
	}
	if len(s.SeasonIDs) > 0 {
		groups++
	}
	if s.hasShows() {
		groups++
	}
	if s.hasBohnen() {
		groups++
	}
	if s.hasBlog() {
		groups++
	}

	switch {
	case groups == 0:
		return errors.New("no selection given")
	case groups > 1:
		return errors.New("selection criteria are mutually exclusive")
	}

	if s.AllShows && (len(s.ShowIDs) > 0 || len(s.ShowNames) > 0) {
		return errors.New("--all-shows cannot be combined with specific shows")
	}
	if s.AllBohnen && (len(s.BohneIDs) > 0 || len(s.BohneNames) > 0) {
		return errors.New("--all-bohnen cannot be combined with specific bohnen")
	}

	if mod.UnsortedOnly && !s.hasShows() {
		return errors.New("--unsorted-only requires a show selection")
	}
	if (mod.MinBohnen > 1 || mod.Exclusive) && !s.hasBohnen() {
		return errors.New("--bohne-num and --bohne-exclusive require a bohne selection")
	}
	return nil
}
