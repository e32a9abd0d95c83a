package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEmbedder_Deterministic(t *testing.T) {
	e := NewHashEmbedder(64)

	a, err := e.Embed(context.Background(), "senior backend engineer python sql")
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), "senior backend engineer python sql")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestHashEmbedder_Normalized(t *testing.T) {
	e := NewHashEmbedder(64)

	v, err := e.Embed(context.Background(), "go go go kubernetes docker")
	require.NoError(t, err)

	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, norm, 1e-5)
}

func TestHashEmbedder_EmptyTextIsZeroVector(t *testing.T) {
	e := NewHashEmbedder(32)

	v, err := e.Embed(context.Background(), "")
	require.NoError(t, err)

	for _, x := range v {
		assert.Zero(t, x)
	}
}

func TestHashEmbedder_DifferentTextsDiffer(t *testing.T) {
	e := NewHashEmbedder(256)

	a, err := e.Embed(context.Background(), "python machine learning")
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), "graphic design illustrator")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
