package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHash(t *testing.T) {
	a, err := NewStaticRegistry(Document{ID: "intro", ContentHash: "1"}, Document{ID: "api/overview", ContentHash: "2"})
	require.NoError(t, err)
	b, err := NewStaticRegistry(Document{ID: "api/overview", ContentHash: "2"}, Document{ID: "intro", ContentHash: "1"})
	require.NoError(t, err)
	assert.Equal(t, a.ComputeHash(), b.ComputeHash(), "insertion order must not matter")

	c, err := NewStaticRegistry(Document{ID: "intro", ContentHash: "changed"}, Document{ID: "api/overview", ContentHash: "2"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ComputeHash(), c.ComputeHash())

	assert.NotEqual(t, a.ComputeHash(), NewRegistry().ComputeHash())
}
