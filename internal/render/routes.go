package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/docs"
	"git.home.luguber.info/inful/docsite/internal/nav"
)

// ErrRouteConflict reports two different targets claiming one URL path.
var ErrRouteConflict = errors.New("route conflict")

// RouteKind distinguishes document pages from generated category indexes.
type RouteKind string

const (
	RouteDoc            RouteKind = "doc"
	RouteGeneratedIndex RouteKind = "generated-index"
)

// Route is one entry in the routing table.
type Route struct {
	Path    string    `json:"path"`
	Kind    RouteKind `json:"kind"`
	DocID   string    `json:"doc_id,omitempty"`
	Sidebar string    `json:"sidebar,omitempty"`
	Title   string    `json:"title"`
}

// Documents looks up registered content documents.
type Documents interface {
	Lookup(id string) (docs.Document, bool)
	Documents() []docs.Document
}

// RouteTable maps URL paths to routes. It is immutable once built.
type RouteTable struct {
	base     string
	byPath   map[string]Route
	docPaths map[string]string
	order    []string
}

// BuildRoutes creates routes for every registered document and every generated
// category index in sidebars. base prefixes all routes, e.g. "/docs".
func BuildRoutes(base string, sidebars *nav.Sidebars, documents Documents) (*RouteTable, error) {
	rt := &RouteTable{
		base:     "/" + strings.Trim(base, "/"),
		byPath:   make(map[string]Route),
		docPaths: make(map[string]string),
	}
	if rt.base == "/" {
		rt.base = ""
	}

	for _, d := range documents.Documents() {
		r := Route{Path: rt.docPath(d), Kind: RouteDoc, DocID: d.ID, Title: d.Title}
		if sidebars != nil {
			if sb, ok := sidebars.SidebarFor(d.ID); ok {
				r.Sidebar = sb.Name
			}
		}
		if err := rt.add(r); err != nil {
			return nil, err
		}
		rt.docPaths[d.ID] = r.Path
	}

	if sidebars == nil {
		return rt, nil
	}
	for _, sb := range sidebars.All() {
		err := nav.Walk(sb.Name, sb.Items, func(_ string, e nav.Entry) error {
			c, ok := e.(nav.Category)
			if !ok || c.IndexSlug() == "" {
				return nil
			}
			title := c.Link.Title
			if title == "" {
				title = c.Label
			}
			return rt.add(Route{Path: rt.IndexPath(c), Kind: RouteGeneratedIndex, Sidebar: sb.Name, Title: title})
		})
		if err != nil {
			return nil, err
		}
	}
	return rt, nil
}

// docPath returns the cleaned route of a document. An absolute slug is rooted at
// the docs base, so "slug: /" maps to the base itself.
func (rt *RouteTable) docPath(d docs.Document) string {
	var p string
	switch {
	case d.Slug == "":
		p = rt.base + "/" + d.ID
	case strings.HasPrefix(d.Slug, "/"):
		p = rt.base + "/" + strings.TrimPrefix(d.Slug, "/")
	default:
		p = rt.base + "/" + path.Join(path.Dir(d.ID), d.Slug)
	}
	return path.Clean(p)
}

func (rt *RouteTable) add(r Route) error {
	if existing, ok := rt.byPath[r.Path]; ok {
		if existing == r {
			return nil
		}
		return fmt.Errorf("%w: %s claimed by %s %q and %s %q", ErrRouteConflict, r.Path, existing.Kind, existing.Title, r.Kind, r.Title)
	}
	rt.byPath[r.Path] = r
	rt.order = append(rt.order, r.Path)
	return nil
}

// DocPath returns the URL path of a document.
func (rt *RouteTable) DocPath(id string) (string, bool) {
	p, ok := rt.docPaths[id]
	return p, ok
}

// IndexPath returns the URL path of a category's landing page, or "" when the
// category has none.
func (rt *RouteTable) IndexPath(c nav.Category) string {
	if c.Link == nil {
		return ""
	}
	switch c.Link.Kind {
	case nav.IndexGenerated:
		return rt.base + "/category/" + c.IndexSlug()
	case nav.IndexDoc:
		p, _ := rt.DocPath(c.Link.DocID)
		return p
	default:
		return ""
	}
}

// Lookup returns the route for a URL path.
func (rt *RouteTable) Lookup(p string) (Route, bool) {
	r, ok := rt.byPath[p]
	return r, ok
}

// Routes returns every route sorted by path.
func (rt *RouteTable) Routes() []Route {
	paths := slices.Clone(rt.order)
	slices.Sort(paths)
	out := make([]Route, 0, len(paths))
	for _, p := range paths {
		out = append(out, rt.byPath[p])
	}
	return out
}

// MarshalJSON encodes the table as a sorted list of routes.
func (rt *RouteTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(rt.Routes())
}
