package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"git.home.luguber.info/inful/docsite/internal/nav"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Item is a sidebar node ready for rendering.
type Item struct {
	Category    bool
	Label       string
	Href        string
	Active      bool
	Open        bool
	Collapsible bool
	Items       []Item
}

// SidebarModel resolves labels and links for sb. activeID marks the current page;
// every category on its path is rendered open. An empty activeID renders the
// initial collapse state only.
func SidebarModel(sb nav.Sidebar, documents Documents, routes *RouteTable, activeID string) ([]Item, error) {
	b := modelBuilder{sidebar: sb.Name, documents: documents, routes: routes, activeID: activeID}
	return b.items(sb.Name, sb.Items)
}

type modelBuilder struct {
	sidebar   string
	documents Documents
	routes    *RouteTable
	activeID  string
}

func (b modelBuilder) items(root string, entries []nav.Entry) ([]Item, error) {
	out := make([]Item, 0, len(entries))
	for i, e := range entries {
		loc := fmt.Sprintf("%s[%d]", root, i)
		switch v := e.(type) {
		case nav.DocRef:
			item, err := b.doc(loc, v)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		case nav.Category:
			item, err := b.category(loc, v)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		default:
			return nil, fmt.Errorf("%w at %s: %T", nav.ErrInvalidEntry, loc, e)
		}
	}
	return out, nil
}

func (b modelBuilder) doc(loc string, ref nav.DocRef) (Item, error) {
	d, ok := b.documents.Lookup(ref.ID)
	if !ok {
		return Item{}, &nav.BrokenReferenceError{Sidebar: b.sidebar, ID: ref.ID, Loc: loc}
	}
	href, _ := b.routes.DocPath(ref.ID)
	label := ref.Label
	if label == "" {
		label = d.Label()
	}
	return Item{Label: label, Href: href, Active: ref.ID == b.activeID}, nil
}

func (b modelBuilder) category(loc string, c nav.Category) (Item, error) {
	children, err := b.items(loc+".items", c.Items)
	if err != nil {
		return Item{}, err
	}
	item := Item{
		Category:    true,
		Label:       c.Label,
		Href:        b.routes.IndexPath(c),
		Collapsible: c.Collapsible,
		Open:        c.InitiallyOpen(),
		Items:       children,
	}
	if c.Link != nil && c.Link.Kind == nav.IndexDoc && c.Link.DocID == b.activeID {
		item.Active = true
		item.Open = true
	}
	if containsActive(children) {
		item.Open = true
	}
	return item, nil
}

func containsActive(items []Item) bool {
	for _, it := range items {
		if it.Active || (it.Category && containsActive(it.Items)) {
			return true
		}
	}
	return false
}

// WriteSidebar writes the sidebar as a nested menu list.
func WriteSidebar(w io.Writer, name string, items []Item) error {
	return templates.ExecuteTemplate(w, "sidebar", struct {
		Name  string
		Items []Item
	}{name, items})
}
