package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/nav"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// TreeCmd prints the configured navigation.
type TreeCmd struct {
	Sidebar string `short:"s" help:"Only print this sidebar"`
	Format  string `short:"f" enum:"text,yaml" default:"text" help:"Output format (text, yaml)"`
}

func (t *TreeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	sidebars, err := site.LoadNavigation(cfg)
	if err != nil {
		return err
	}
	if t.Sidebar != "" {
		sb, ok := sidebars.Get(t.Sidebar)
		if !ok {
			return errors.NewError(errors.CategoryNotFound, "unknown sidebar").
				WithContext("sidebar", t.Sidebar).
				Build()
		}
		if sidebars, err = nav.NewSidebars(sb); err != nil {
			return err
		}
	}
	if t.Format == "yaml" {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(sidebars)
	}
	return WriteTree(os.Stdout, sidebars)
}

// WriteTree prints sidebars as an indented outline.
func WriteTree(w io.Writer, sidebars *nav.Sidebars) error {
	for _, sb := range sidebars.All() {
		if _, err := fmt.Fprintln(w, sb.Name); err != nil {
			return err
		}
		if err := writeEntries(w, sb.Items, 1); err != nil {
			return err
		}
	}
	return nil
}

func writeEntries(w io.Writer, entries []nav.Entry, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		var err error
		switch v := e.(type) {
		case nav.DocRef:
			if v.Label != "" {
				_, err = fmt.Fprintf(w, "%s- %s (%s)\n", indent, v.ID, v.Label)
			} else {
				_, err = fmt.Fprintf(w, "%s- %s\n", indent, v.ID)
			}
		case nav.Category:
			_, err = fmt.Fprintf(w, "%s+ %s%s\n", indent, v.Label, categoryNotes(v))
			if err == nil {
				err = writeEntries(w, v.Items, depth+1)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func categoryNotes(c nav.Category) string {
	var notes []string
	if c.Link != nil {
		switch c.Link.Kind {
		case nav.IndexGenerated:
			notes = append(notes, "index: category/"+c.IndexSlug())
		case nav.IndexDoc:
			notes = append(notes, "index: "+c.Link.DocID)
		}
	}
	switch {
	case !c.Collapsible:
		notes = append(notes, "always open")
	case !c.Collapsed:
		notes = append(notes, "expanded")
	}
	if len(notes) == 0 {
		return ""
	}
	return " [" + strings.Join(notes, ", ") + "]"
}
