package query

import (
	"fmt"
	"strings"
)

// SelectionError reports a name selector that matched nothing in the
// catalog, optionally with close candidates.
type SelectionError struct {
	Kind        string // "show" or "bohne"
	Query       string
	Suggestions []string
}

func (e *SelectionError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no %s named %q", e.Kind, e.Query)
	}
	return fmt.Sprintf("no %s named %q (did you mean %s?)",
		e.Kind, e.Query, strings.Join(e.Suggestions, ", "))
}
