package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docsite/internal/docs/errors"
)

func writeDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "intro.md", "# Welcome to Amply\n\nHello.\n")
	writeDoc(t, root, "donors/how-to-donate.md", "---\ntitle: How to Donate\nsidebar_label: Donating\n---\nBody\n")
	writeDoc(t, root, "donors/impact.mdx", "---\nid: impact-tracking\n---\n# Impact Tracking\n")
	writeDoc(t, root, "donors/tax-benefits.md", "No heading here.\n")
	writeDoc(t, root, "donors/draft.md", "---\ndraft: true\n---\n# WIP\n")
	writeDoc(t, root, "_partials/snippet.md", "# Partial\n")
	writeDoc(t, root, "donors/_shared.md", "# Shared\n")
	writeDoc(t, root, "img/logo.svg", "<svg/>")

	reg, err := Discover(root, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"donors/how-to-donate",
		"donors/impact-tracking",
		"donors/tax-benefits",
		"intro",
	}, reg.IDs())

	intro, ok := reg.Lookup("intro")
	require.True(t, ok)
	assert.Equal(t, "Welcome to Amply", intro.Title)
	assert.Equal(t, "intro.md", intro.RelativePath)

	donate, _ := reg.Lookup("donors/how-to-donate")
	assert.Equal(t, "How to Donate", donate.Title)
	assert.Equal(t, "Donating", donate.Label())

	impact, _ := reg.Lookup("donors/impact-tracking")
	assert.Equal(t, "Impact Tracking", impact.Title)
	assert.Equal(t, "donors/impact.mdx", impact.RelativePath)

	tax, _ := reg.Lookup("donors/tax-benefits")
	assert.Equal(t, "tax-benefits", tax.Title)
}

func TestDiscover_IncludeDrafts(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "draft.md", "---\ndraft: true\n---\n# WIP\n")

	reg, err := Discover(root, Options{IncludeDrafts: true})
	require.NoError(t, err)
	assert.True(t, reg.Has("draft"))
}

func TestDiscover_DuplicateID(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "donors/a.md", "---\nid: same\n---\n")
	writeDoc(t, root, "donors/b.md", "---\nid: same\n---\n")

	_, err := Discover(root, Options{})
	require.ErrorIs(t, err, derrors.ErrDuplicateDocument)
}

func TestDiscover_InvalidFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "broken.md", "---\ntitle: never closed\n")

	_, err := Discover(root, Options{})
	require.ErrorIs(t, err, derrors.ErrFrontmatterInvalid)
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), Options{})
	require.ErrorIs(t, err, derrors.ErrContentDirNotFound)
}

func TestFirstHeading(t *testing.T) {
	cases := map[string]string{
		"# Plain\n":                      "Plain",
		"Intro text\n\n# After *text*\n": "After text",
		"## Only level two\n":            "",
		"# Using `docsite` today\n":      "Using docsite today",
		"Setext Title\n============\n":   "Setext Title",
	}
	for src, want := range cases {
		assert.Equal(t, want, FirstHeading([]byte(src)), src)
	}
}

func TestStaticRegistry(t *testing.T) {
	reg, err := NewStaticRegistry(Document{ID: "b"}, Document{ID: "a"})
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"a", "b"}, reg.IDs())
	assert.False(t, reg.Has("c"))

	_, err = NewStaticRegistry(Document{ID: "a"}, Document{ID: "a"})
	assert.ErrorIs(t, err, derrors.ErrDuplicateDocument)
}
