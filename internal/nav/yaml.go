package nav

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedEntry reports a sidebar item whose shape or type is not recognised.
var ErrUnsupportedEntry = errors.New("unsupported sidebar entry")

// The file format mirrors Docusaurus sidebars: a mapping of sidebar name to items,
// where an item is a bare document id or a mapping with type doc or category.
type rawEntry struct {
	Type        string    `yaml:"type"`
	ID          string    `yaml:"id,omitempty"`
	Label       string    `yaml:"label,omitempty"`
	Link        *rawLink  `yaml:"link,omitempty"`
	Collapsed   *bool     `yaml:"collapsed,omitempty"`
	Collapsible *bool     `yaml:"collapsible,omitempty"`
	Items       yaml.Node `yaml:"items,omitempty"`
}

type rawLink struct {
	Type        string `yaml:"type"`
	ID          string `yaml:"id,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Slug        string `yaml:"slug,omitempty"`
}

// outEntry is rawEntry with encodable items.
type outEntry struct {
	Type        string   `yaml:"type"`
	ID          string   `yaml:"id,omitempty"`
	Label       string   `yaml:"label,omitempty"`
	Link        *rawLink `yaml:"link,omitempty"`
	Collapsed   *bool    `yaml:"collapsed,omitempty"`
	Collapsible *bool    `yaml:"collapsible,omitempty"`
	Items       []any    `yaml:"items,omitempty"`
}

// LoadSidebars reads a sidebars YAML file.
func LoadSidebars(path string) (*Sidebars, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read sidebars: %w", err)
	}
	s, err := ParseSidebars(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseSidebars decodes sidebars from YAML.
func ParseSidebars(data []byte) (*Sidebars, error) {
	s := &Sidebars{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// UnmarshalYAML decodes the mapping while keeping sidebar declaration order.
func (s *Sidebars) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w: sidebars must be a mapping of name to items", node.Line, ErrUnsupportedEntry)
	}
	*s = Sidebars{byName: make(map[string]Sidebar, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		items, err := decodeItems(name, node.Content[i+1])
		if err != nil {
			return err
		}
		if err := s.add(Sidebar{Name: name, Items: items}); err != nil {
			return fmt.Errorf("line %d: %w", node.Content[i].Line, err)
		}
	}
	return nil
}

func decodeItems(loc string, node *yaml.Node) ([]Entry, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: %w: %s must be a list", node.Line, ErrUnsupportedEntry, loc)
	}
	items := make([]Entry, 0, len(node.Content))
	for i, child := range node.Content {
		e, err := decodeEntry(fmt.Sprintf("%s[%d]", loc, i), child)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}

func decodeEntry(loc string, node *yaml.Node) (Entry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return DocRef{ID: node.Value}, nil
	case yaml.MappingNode:
	default:
		return nil, fmt.Errorf("line %d: %w at %s", node.Line, ErrUnsupportedEntry, loc)
	}

	var raw rawEntry
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", node.Line, loc, err)
	}
	switch raw.Type {
	case "doc":
		if raw.ID == "" {
			return nil, fmt.Errorf("line %d: %w at %s: doc entry needs an id", node.Line, ErrUnsupportedEntry, loc)
		}
		return DocRef{ID: raw.ID, Label: raw.Label}, nil
	case "category":
		return decodeCategory(loc, node.Line, raw)
	default:
		return nil, fmt.Errorf("line %d: %w at %s: type %q", node.Line, ErrUnsupportedEntry, loc, raw.Type)
	}
}

func decodeCategory(loc string, line int, raw rawEntry) (Entry, error) {
	if raw.Label == "" {
		return nil, fmt.Errorf("line %d: %w at %s: category needs a label", line, ErrUnsupportedEntry, loc)
	}
	c := Category{Label: raw.Label, Collapsed: true, Collapsible: true}
	if raw.Collapsible != nil && !*raw.Collapsible {
		c.Collapsible = false
		c.Collapsed = false
	}
	if raw.Collapsed != nil {
		c.Collapsed = *raw.Collapsed
	}
	if raw.Link != nil {
		link, err := decodeLink(loc, line, raw.Link)
		if err != nil {
			return nil, err
		}
		c.Link = link
	}
	if raw.Items.Kind == 0 || len(raw.Items.Content) == 0 {
		sidebar, _, _ := strings.Cut(loc, "[")
		return nil, &EmptyCategoryError{Sidebar: sidebar, Label: raw.Label, Loc: loc}
	}
	items, err := decodeItems(loc+".items", &raw.Items)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return c, nil
}

func decodeLink(loc string, line int, raw *rawLink) (*IndexLink, error) {
	switch raw.Type {
	case "generated-index":
		return &IndexLink{Kind: IndexGenerated, Description: raw.Description, Title: raw.Title, Slug: raw.Slug}, nil
	case "doc":
		if raw.ID == "" {
			return nil, fmt.Errorf("line %d: %w at %s.link: doc link needs an id", line, ErrUnsupportedEntry, loc)
		}
		return &IndexLink{Kind: IndexDoc, DocID: raw.ID}, nil
	default:
		return nil, fmt.Errorf("line %d: %w at %s.link: type %q", line, ErrUnsupportedEntry, loc, raw.Type)
	}
}

// MarshalYAML encodes the sidebars in the same shape ParseSidebars reads.
func (s Sidebars) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, sb := range s.All() {
		var value yaml.Node
		if err := value.Encode(encodeItems(sb.Items)); err != nil {
			return nil, fmt.Errorf("encode sidebar %q: %w", sb.Name, err)
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: sb.Name}, &value)
	}
	return root, nil
}

func encodeItems(items []Entry) []any {
	out := make([]any, 0, len(items))
	for _, e := range items {
		switch v := e.(type) {
		case DocRef:
			if v.Label == "" {
				out = append(out, v.ID)
				continue
			}
			out = append(out, outEntry{Type: "doc", ID: v.ID, Label: v.Label})
		case Category:
			out = append(out, encodeCategory(v))
		}
	}
	return out
}

func encodeCategory(c Category) outEntry {
	o := outEntry{Type: "category", Label: c.Label, Items: encodeItems(c.Items)}
	no := false
	if !c.Collapsible {
		o.Collapsible = &no
	} else if !c.Collapsed {
		o.Collapsed = &no
	}
	if c.Link != nil {
		switch c.Link.Kind {
		case IndexGenerated:
			o.Link = &rawLink{Type: "generated-index", Description: c.Link.Description, Title: c.Link.Title, Slug: c.Link.Slug}
		case IndexDoc:
			o.Link = &rawLink{Type: "doc", ID: c.Link.DocID}
		}
	}
	return o
}
