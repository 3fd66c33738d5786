package nav

// Doc returns a leaf entry for the document id.
func Doc(id string) DocRef {
	return DocRef{ID: id}
}

// Docs returns one leaf entry per id, in order.
func Docs(ids ...string) []Entry {
	out := make([]Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, Doc(id))
	}
	return out
}

// CategoryOption customizes a Category built by NewCategory.
type CategoryOption func(*Category)

// NewCategory builds a collapsible, initially collapsed category.
// A category without items is accepted here and rejected by Validate.
func NewCategory(label string, items []Entry, opts ...CategoryOption) Category {
	c := Category{
		Label:       label,
		Collapsed:   true,
		Collapsible: true,
		Items:       items,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithGeneratedIndex gives the category an auto-built landing page.
func WithGeneratedIndex(description string) CategoryOption {
	return func(c *Category) {
		slug := ""
		if c.Link != nil {
			slug = c.Link.Slug
		}
		c.Link = &IndexLink{Kind: IndexGenerated, Description: description, Slug: slug}
	}
}

// WithDocIndex uses an existing document as the category landing page.
func WithDocIndex(docID string) CategoryOption {
	return func(c *Category) {
		c.Link = &IndexLink{Kind: IndexDoc, DocID: docID}
	}
}

// WithSlug overrides the generated index route segment. Apply after WithGeneratedIndex.
func WithSlug(s string) CategoryOption {
	return func(c *Category) {
		if c.Link != nil && c.Link.Kind == IndexGenerated {
			c.Link.Slug = s
		}
	}
}

// Expanded forces the category open on first load.
func Expanded() CategoryOption {
	return func(c *Category) { c.Collapsed = false }
}

// NotCollapsible pins the category open.
func NotCollapsible() CategoryOption {
	return func(c *Category) {
		c.Collapsible = false
		c.Collapsed = false
	}
}
