package nav

import (
	"strings"

	"github.com/gosimple/slug"
)

// Entry is one node of a sidebar. The only implementations are DocRef and Category.
type Entry interface {
	isEntry()
}

// DocRef is a leaf pointing at an externally resolved content document.
type DocRef struct {
	ID string
	// Label overrides the document title in the sidebar. Empty means use the title.
	Label string
}

func (DocRef) isEntry() {}

// Category groups child entries under a label.
type Category struct {
	Label string
	Link  *IndexLink
	// Collapsed is the initial state in the rendered sidebar.
	Collapsed bool
	// Collapsible false pins the category open regardless of Collapsed.
	Collapsible bool
	Items       []Entry
}

func (Category) isEntry() {}

// InitiallyOpen reports whether the category is expanded on first load.
func (c Category) InitiallyOpen() bool {
	return !c.Collapsible || !c.Collapsed
}

// IndexSlug returns the route segment of a generated index page, or "" when the
// category has no generated index or its label has no slug characters.
func (c Category) IndexSlug() string {
	if c.Link == nil || c.Link.Kind != IndexGenerated {
		return ""
	}
	if c.Link.Slug != "" {
		return strings.Trim(c.Link.Slug, "/")
	}
	return slug.Make(c.Label)
}

// IndexKind selects how a category landing page is produced.
type IndexKind int

const (
	// IndexGenerated asks the site generator to assemble a landing page from the
	// category's children and Description.
	IndexGenerated IndexKind = iota + 1
	// IndexDoc uses an authored content document as the landing page.
	IndexDoc
)

func (k IndexKind) String() string {
	switch k {
	case IndexGenerated:
		return "generated-index"
	case IndexDoc:
		return "doc"
	default:
		return "unknown"
	}
}

// IndexLink is a category landing page.
type IndexLink struct {
	Kind IndexKind

	// Generated index fields.
	Description string
	Title       string
	Slug        string

	// Explicit document field.
	DocID string
}
