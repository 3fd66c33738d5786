package render

import (
	"fmt"
	"io"

	"git.home.luguber.info/inful/docsite/internal/nav"
)

// IndexPage is a generated category landing page.
type IndexPage struct {
	Path        string
	Title       string
	Description string
	Cards       []Card
}

// Card links one direct child of the category.
type Card struct {
	Label       string
	Href        string
	Description string
	Category    bool
}

// NewIndexPage builds the landing page for a category with a generated index.
func NewIndexPage(c nav.Category, documents Documents, routes *RouteTable) (IndexPage, error) {
	if c.IndexSlug() == "" {
		return IndexPage{}, fmt.Errorf("category %q has no generated index", c.Label)
	}
	page := IndexPage{
		Path:        routes.IndexPath(c),
		Title:       c.Link.Title,
		Description: c.Link.Description,
	}
	if page.Title == "" {
		page.Title = c.Label
	}
	for _, e := range c.Items {
		switch v := e.(type) {
		case nav.DocRef:
			d, ok := documents.Lookup(v.ID)
			if !ok {
				return IndexPage{}, &nav.BrokenReferenceError{ID: v.ID, Loc: page.Path}
			}
			href, _ := routes.DocPath(v.ID)
			label := v.Label
			if label == "" {
				label = d.Title
			}
			page.Cards = append(page.Cards, Card{Label: label, Href: href, Description: d.Description})
		case nav.Category:
			page.Cards = append(page.Cards, Card{
				Label:       v.Label,
				Href:        firstHref(v, routes),
				Description: itemCount(len(v.Items)),
				Category:    true,
			})
		}
	}
	return page, nil
}

// firstHref is the category's own landing page, else its first reachable document.
func firstHref(c nav.Category, routes *RouteTable) string {
	if p := routes.IndexPath(c); p != "" {
		return p
	}
	for _, id := range nav.DocIDs(c.Items) {
		if p, ok := routes.DocPath(id); ok {
			return p
		}
	}
	return ""
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

// IndexPages returns the generated landing pages of every category in sb, in
// navigation order.
func IndexPages(sb nav.Sidebar, documents Documents, routes *RouteTable) ([]IndexPage, error) {
	var pages []IndexPage
	err := nav.Walk(sb.Name, sb.Items, func(_ string, e nav.Entry) error {
		c, ok := e.(nav.Category)
		if !ok || c.IndexSlug() == "" {
			return nil
		}
		page, err := NewIndexPage(c, documents, routes)
		if err != nil {
			return err
		}
		pages = append(pages, page)
		return nil
	})
	return pages, err
}

// WriteIndexPage writes a generated index page body.
func WriteIndexPage(w io.Writer, page IndexPage) error {
	return templates.ExecuteTemplate(w, "generated-index", page)
}
