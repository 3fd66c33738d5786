package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter(t *testing.T) {
	fm, body, had, err := Split([]byte("---\ntitle: Intro\n---\n# Intro\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Intro\n"), fm)
	require.Equal(t, []byte("# Intro\n"), body)
}

func TestSplit_CRLF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\r\ntitle: Intro\r\n---\r\n# Intro\r\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Intro\r\n"), fm)
	require.Equal(t, []byte("# Intro\r\n"), body)
}

func TestSplit_EmptyFrontmatter(t *testing.T) {
	fm, body, had, err := Split([]byte("---\n---\nbody\n"))
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("body\n"), body)
}

func TestSplit_ClosingDelimiterAtEOF(t *testing.T) {
	fm, body, had, err := Split([]byte("---\ntitle: Only\n---"))
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Only\n"), fm)
	require.Empty(t, body)
}

func TestSplit_MissingClosingDelimiter(t *testing.T) {
	_, _, had, err := Split([]byte("---\ntitle: Intro\n# Intro\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
	require.False(t, had)
}

func TestParse(t *testing.T) {
	src := []byte("---\nid: how-to-donate\ntitle: How to Donate\nsidebar_label: Donating\nslug: /give\n---\nBody\n")

	meta, body, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, Meta{ID: "how-to-donate", Title: "How to Donate", SidebarLabel: "Donating", Slug: "/give"}, meta)
	require.Equal(t, []byte("Body\n"), body)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, _, err := Parse([]byte("---\ntitle: [unclosed\n---\n"))
	require.Error(t, err)
}
