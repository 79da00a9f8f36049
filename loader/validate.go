package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/nathoo/streakcore/engine/shop"
	"github.com/nathoo/streakcore/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks the compiled catalog for referential integrity and
// consistency.
func validate(cat *types.Catalog) error {
	ve := &ValidationError{}

	// Game title required.
	if cat.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}

	// At least one puzzle.
	if len(cat.Puzzles) == 0 {
		ve.Errors = append(ve.Errors, "no puzzles defined")
	}

	// Puzzle topics defined, phrases well-formed, no duplicates.
	seen := map[string]bool{}
	for _, p := range cat.Puzzles {
		if p.Topic == "" {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"puzzle %q has no topic", p.Text))
		} else if _, ok := cat.Topics[p.Topic]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"puzzle %q references undefined topic %q", p.Text, p.Topic))
		}

		if !validPhrase(p.Text) {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"puzzle %q must contain only letters A-Z and single spaces", p.Text))
		}

		if seen[p.Text] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"duplicate puzzle %q", p.Text))
		}
		seen[p.Text] = true
	}

	// Free letters must be A-Z; unlock refs must name prestige items.
	for name, topic := range cat.Topics {
		for r := range topic.Free {
			if r < 'A' || r > 'Z' {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"topic %q free letter %q is not A-Z", name, r))
			}
		}
		if topic.Unlock != "" {
			item, ok := shop.ItemByID(topic.Unlock)
			if !ok || item.Kind != types.KindPrestige {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"topic %q unlock %q does not name a prestige shop item", name, topic.Unlock))
			}
		}
	}

	// Warnings: topics with no puzzles.
	counts := map[string]int{}
	for _, p := range cat.Puzzles {
		counts[p.Topic]++
	}
	for name := range cat.Topics {
		if counts[name] == 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"topic %q has no puzzles", name))
		}
	}

	// Print warnings to stderr.
	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

// validPhrase reports whether s is one or more words of A-Z letters
// separated by single spaces.
func validPhrase(s string) bool {
	if s == "" {
		return false
	}
	words := strings.Split(s, " ")
	for _, w := range words {
		if w == "" {
			return false
		}
		for _, r := range w {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
	}
	return true
}
