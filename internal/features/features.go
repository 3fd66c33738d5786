// Package features renders the landing page feature tiles.
package features

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// IconRef is an opaque handle to a visual asset, resolved by an IconResolver.
type IconRef string

// Descriptor is one landing page feature. Description is rich text and is passed
// through unmodified.
type Descriptor struct {
	Title       string
	Icon        IconRef
	Description template.HTML
}

// Tile is a rendered descriptor.
type Tile struct {
	Index       int
	Title       string
	Icon        template.HTML
	Description template.HTML
}

// IconResolver turns an icon handle into renderable markup.
type IconResolver interface {
	ResolveIcon(ref IconRef) (template.HTML, error)
}

//go:embed templates/*.html
var templateFS embed.FS

var sectionTemplate = template.Must(template.ParseFS(templateFS, "templates/section.html"))

// Render produces one tile per descriptor, in order. An empty list yields no tiles.
// Icon resolution errors come from the resolver and are returned wrapped.
func Render(descs []Descriptor, icons IconResolver) ([]Tile, error) {
	if icons == nil {
		icons = ImageResolver{}
	}
	tiles := make([]Tile, 0, len(descs))
	for i, d := range descs {
		icon, err := icons.ResolveIcon(d.Icon)
		if err != nil {
			return nil, fmt.Errorf("feature %d (%q): %w", i, d.Title, err)
		}
		tiles = append(tiles, Tile{
			Index:       i,
			Title:       d.Title,
			Icon:        icon,
			Description: d.Description,
		})
	}
	return tiles, nil
}

// WriteSection writes the landing page features section containing tiles.
func WriteSection(w io.Writer, tiles []Tile) error {
	return sectionTemplate.ExecuteTemplate(w, "section.html", tiles)
}

// ImageResolver references icons by URL instead of inlining them.
type ImageResolver struct {
	BaseURL string
}

var imgTemplate = template.Must(template.New("img").Parse(`<img class="featureSvg" role="img" alt="" src="{{.}}">`))

func (r ImageResolver) ResolveIcon(ref IconRef) (template.HTML, error) {
	if ref == "" {
		return "", nil
	}
	var b strings.Builder
	if err := imgTemplate.Execute(&b, joinURL(r.BaseURL, string(ref))); err != nil {
		return "", err
	}
	// #nosec G203 -- produced by html/template, attribute values are escaped.
	return template.HTML(b.String()), nil
}

func joinURL(base, ref string) string {
	if base == "" {
		return "/" + strings.TrimPrefix(ref, "/")
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(ref, "/")
}
