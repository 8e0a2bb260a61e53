package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitDimension(t *testing.T) {
	t.Run("pads shorter vectors with zeros", func(t *testing.T) {
		in := make([]float32, 768)
		for i := range in {
			in[i] = 0.5
		}
		out, err := FitDimension(in, 1024)
		require.NoError(t, err)
		require.Len(t, out, 1024)
		assert.Equal(t, float32(0.5), out[767])
		assert.Equal(t, float32(0), out[768])
		assert.Equal(t, float32(0), out[1023])
	})

	t.Run("keeps exact size untouched", func(t *testing.T) {
		in := []float32{1, 2, 3}
		out, err := FitDimension(in, 3)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("rejects longer vectors", func(t *testing.T) {
		_, err := FitDimension([]float32{1, 2, 3}, 2)
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("rejects empty vectors", func(t *testing.T) {
		_, err := FitDimension(nil, 1024)
		assert.ErrorIs(t, err, ErrEmptyEmbedding)
	})
}

func TestToFloat32(t *testing.T) {
	assert.Equal(t, []float32{0.25, -1}, ToFloat32([]float64{0.25, -1}))
	e := &Embedding{Value: []float32{1, 2}}
	assert.Equal(t, 2, e.Dimension())
}
