package nav

import (
	"fmt"

	derrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// BrokenReferenceError reports a document id missing from the content registry.
type BrokenReferenceError struct {
	Sidebar string
	ID      string
	Loc     string
}

func (e *BrokenReferenceError) Error() string {
	return fmt.Sprintf("sidebar %q: %s references unknown document %q", e.Sidebar, e.Loc, e.ID)
}

// DuplicateReferenceError reports a navigation target listed more than once.
type DuplicateReferenceError struct {
	Sidebar string
	ID      string
	First   string
	Second  string
}

func (e *DuplicateReferenceError) Error() string {
	return fmt.Sprintf("sidebar %q: %q referenced at both %s and %s", e.Sidebar, e.ID, e.First, e.Second)
}

// EmptyCategoryError reports a category with no items.
type EmptyCategoryError struct {
	Sidebar string
	Label   string
	Loc     string
}

func (e *EmptyCategoryError) Error() string {
	return fmt.Sprintf("sidebar %q: category %q at %s has no items", e.Sidebar, e.Label, e.Loc)
}

// MissingSlugError reports a generated index whose label yields no route segment.
type MissingSlugError struct {
	Sidebar string
	Label   string
	Loc     string
}

func (e *MissingSlugError) Error() string {
	return fmt.Sprintf("sidebar %q: category %q at %s has a generated index without a usable slug; set link.slug", e.Sidebar, e.Label, e.Loc)
}

// Classify wraps a validation failure into a fatal navigation error for the CLI.
func Classify(sidebar string, err error) error {
	if err == nil {
		return nil
	}
	return derrors.WrapError(err, derrors.CategoryNavigation, "sidebar validation failed").
		Fatal().
		UserAction().
		WithContext("sidebar", sidebar).
		Build()
}
