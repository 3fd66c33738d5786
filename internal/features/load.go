package features

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

type rawDescriptor struct {
	Title       string `yaml:"title"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// Load reads descriptors from a YAML list. Descriptions are Markdown.
func Load(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read features: %w", err)
	}
	descs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return descs, nil
}

// Parse decodes descriptors from YAML.
func Parse(data []byte) ([]Descriptor, error) {
	var raw []rawDescriptor
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	md := goldmark.New()
	out := make([]Descriptor, 0, len(raw))
	for i, r := range raw {
		if r.Title == "" {
			return nil, fmt.Errorf("feature %d: title is required", i)
		}
		desc, err := markdownInline(md, r.Description)
		if err != nil {
			return nil, fmt.Errorf("feature %d (%q): %w", i, r.Title, err)
		}
		out = append(out, Descriptor{Title: r.Title, Icon: IconRef(r.Icon), Description: desc})
	}
	return out, nil
}

// markdownInline converts Markdown to HTML, unwrapping a lone paragraph so the
// result can sit inside the tile's own <p>.
func markdownInline(md goldmark.Markdown, src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	out := bytes.TrimSpace(buf.Bytes())
	if bytes.HasPrefix(out, []byte("<p>")) && bytes.HasSuffix(out, []byte("</p>")) && bytes.Count(out, []byte("<p>")) == 1 {
		out = out[len("<p>") : len(out)-len("</p>")]
	}
	// #nosec G203 -- goldmark escapes raw HTML unless WithUnsafe is set.
	return template.HTML(out), nil
}

// Marshal encodes descriptors back to the YAML shape Load reads.
func Marshal(descs []Descriptor) ([]byte, error) {
	raw := make([]rawDescriptor, 0, len(descs))
	for _, d := range descs {
		raw = append(raw, rawDescriptor{Title: d.Title, Icon: string(d.Icon), Description: string(d.Description)})
	}
	return yaml.Marshal(raw)
}
