package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridSetGet(t *testing.T) {
	g := New()
	require.NoError(t, g.Set(22, 2, "Acme"))
	require.NoError(t, g.Set(23, 2, "Beta"))
	require.NoError(t, g.Set(22, 1, "1"))
	require.NoError(t, g.Set(22, 2, "Acme 2"))

	v, ok := g.Get(22, 2)
	assert.True(t, ok)
	assert.Equal(t, "Acme 2", v)

	_, ok = g.Get(40, 1)
	assert.False(t, ok)

	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 23, g.MaxRow())
	assert.Equal(t, 2, g.MaxCol())
	assert.Equal(t, []string{"Acme 2", "Beta", ""}, g.Column(2, 22, 3))
	assert.Equal(t, []Cell{{22, 1}, {22, 2}, {23, 2}}, g.Cells())
}

func TestGridInvalidCell(t *testing.T) {
	g := New()
	assert.ErrorIs(t, g.Set(0, 1, "x"), ErrInvalidCell)
	assert.ErrorIs(t, g.Set(1, 0, "x"), ErrInvalidCell)
	assert.Equal(t, 0, g.Len())
}

func TestGridUnbounded(t *testing.T) {
	g := New()
	require.NoError(t, g.Set(1_048_000, 16_000, "far"))
	assert.Equal(t, 1_048_000, g.MaxRow())
}
