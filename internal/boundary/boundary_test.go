package boundary

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/gscnn/internal/distance"
	"github.com/born-ml/gscnn/internal/tensor"
	"github.com/born-ml/gscnn/internal/validate"
)

func labelGrid[T tensor.Label](t *testing.T, rows [][]T) *tensor.Tensor[T] {
	t.Helper()
	g, err := tensor.FromRows(rows)
	require.NoError(t, err)
	return g
}

// edgeRows reads an (h, w, 1) edge map back into rows.
func edgeRows(t *testing.T, edges *tensor.Tensor[uint8]) [][]uint8 {
	t.Helper()
	shape := edges.Shape()
	require.Len(t, shape, 3)
	require.Equal(t, 1, shape[2])

	rows := make([][]uint8, shape[0])
	for y := range rows {
		rows[y] = make([]uint8, shape[1])
		for x := range rows[y] {
			rows[y][x] = edges.At(y, x, 0)
		}
	}
	return rows
}

func config(radius, background int) EdgeConfig {
	cfg := DefaultEdgeConfig()
	cfg.Radius = radius
	cfg.BackgroundClass = background
	return cfg
}

func TestLabelToOneHot(t *testing.T) {
	label := labelGrid(t, [][]int32{
		{0, 1, 2},
		{2, 1, 0},
	})

	oneHot, err := LabelToOneHot(label, 3, 0)
	require.NoError(t, err)
	require.True(t, oneHot.Shape().Equal(tensor.Shape{2, 3, 3}))
	assert.Equal(t, tensor.Uint8, oneHot.DType())

	assert.Equal(t, []uint8{0, 0, 0, 0, 0, 0}, tensor.Channel(oneHot, 0).Data())
	assert.Equal(t, []uint8{0, 1, 0, 0, 1, 0}, tensor.Channel(oneHot, 1).Data())
	assert.Equal(t, []uint8{0, 0, 1, 1, 0, 0}, tensor.Channel(oneHot, 2).Data())
}

func TestLabelToOneHotProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const nClasses = 5

	for trial := 0; trial < 20; trial++ {
		h, w := 1+rng.Intn(8), 1+rng.Intn(8)
		label := tensor.Zeros[int32](tensor.Shape{h, w})
		for i := range label.Data() {
			label.Data()[i] = int32(rng.Intn(nClasses))
		}
		background := rng.Intn(nClasses)

		oneHot, err := LabelToOneHot(label, nClasses, background)
		require.NoError(t, err)

		for c := 0; c < nClasses; c++ {
			slice := tensor.Channel(oneHot, c).Data()
			for i, v := range label.Data() {
				want := uint8(0)
				if c != background && int(v) == c {
					want = 1
				}
				require.Equal(t, want, slice[i], "trial %d class %d index %d", trial, c, i)
			}
		}
	}
}

func TestLabelToOneHotClassesBeyondLabelRange(t *testing.T) {
	label := labelGrid(t, [][]uint8{
		{1, 0},
		{0, 0},
	})

	oneHot, err := LabelToOneHot(label, 257, 1)
	require.NoError(t, err)
	require.True(t, oneHot.Shape().Equal(tensor.Shape{2, 2, 257}))

	assert.Equal(t, []uint8{0, 1, 1, 1}, tensor.Channel(oneHot, 0).Data())
	assert.Equal(t, []uint8{0, 0, 0, 0}, tensor.Channel(oneHot, 1).Data())
	assert.Equal(t, []uint8{0, 0, 0, 0}, tensor.Channel(oneHot, 256).Data(), "class 256 must not alias class 0")
	assert.Equal(t, []uint8{0, 0, 0, 0}, tensor.Channel(oneHot, 255).Data())

	// Absent classes add no edges, however many there are.
	want, err := FlatLabelToEdgeLabel(label, 2, config(1, 1))
	require.NoError(t, err)
	got, err := FlatLabelToEdgeLabel(label, 257, config(1, 1))
	require.NoError(t, err)
	assert.Equal(t, want.Data(), got.Data())
}

func TestLabelToOneHotPrecondition(t *testing.T) {
	tests := []struct {
		name     string
		label    *tensor.Tensor[int32]
		nClasses int
	}{
		{"rank 1", tensor.Zeros[int32](tensor.Shape{4}), 2},
		{"rank 3", tensor.Zeros[int32](tensor.Shape{4, 4, 1}), 2},
		{"nil", nil, 2},
		{"no classes", tensor.Zeros[int32](tensor.Shape{4, 4}), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LabelToOneHot(tt.label, tt.nClasses, 0)
			require.Error(t, err)
			assert.ErrorIs(t, err, validate.ErrPreconditionViolation)
		})
	}

	_, err := LabelToOneHot(tensor.Zeros[int32](tensor.Shape{2, 2, 2}), 2, 0)
	var validationErr *validate.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "label must be of shape (h, w)", validationErr.Details)
}

func TestEdgeMapSinglePixel(t *testing.T) {
	label := labelGrid(t, [][]int32{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
	})

	edges, err := FlatLabelToEdgeLabel(label, 2, config(1, 0))
	require.NoError(t, err)
	require.True(t, edges.Shape().Equal(tensor.Shape{4, 4, 1}))
	assert.Equal(t, tensor.Uint8, edges.DType())

	// Diagonal neighbours are sqrt(2) away, beyond radius 1.
	assert.Equal(t, [][]uint8{
		{0, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 1, 1},
		{0, 0, 1, 0},
	}, edgeRows(t, edges))
}

func TestEdgeMapStripe(t *testing.T) {
	row := []int32{0, 0, 0, 1, 0, 0, 0}
	label := labelGrid(t, [][]int32{row, row, row, row, row})

	edges, err := FlatLabelToEdgeLabel(label, 2, DefaultEdgeConfig())
	require.NoError(t, err)

	want := []uint8{0, 1, 1, 1, 1, 1, 0}
	for y, got := range edgeRows(t, edges) {
		assert.Equal(t, want, got, "row %d", y)
	}
}

func TestEdgeMapAllBackground(t *testing.T) {
	label := tensor.Zeros[int32](tensor.Shape{6, 5})

	for _, radius := range []int{0, 1, 2, 5} {
		edges, err := FlatLabelToEdgeLabel(label, 3, config(radius, 0))
		require.NoError(t, err)
		assert.Equal(t, 0, tensor.CountNonZero(edges), "radius %d", radius)
	}
}

func TestEdgeMapSingleForegroundClassMarksBorder(t *testing.T) {
	label := tensor.Full[int32](tensor.Shape{5, 5}, 1)

	edges, err := FlatLabelToEdgeLabel(label, 2, config(1, 0))
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	}, edgeRows(t, edges))

	edges, err = FlatLabelToEdgeLabel(label, 2, config(2, 0))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), edges.At(2, 2, 0))
	assert.Equal(t, 24, tensor.CountNonZero(edges))

	// The same grid with class 1 as background has no boundaries at all.
	edges, err = FlatLabelToEdgeLabel(label, 2, config(2, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, tensor.CountNonZero(edges))
}

func TestEdgeMapTwoRegions(t *testing.T) {
	label := labelGrid(t, [][]uint8{
		{1, 1, 1, 2, 2, 2},
		{1, 1, 1, 2, 2, 2},
		{1, 1, 1, 2, 2, 2},
		{1, 1, 1, 2, 2, 2},
	})

	edges, err := FlatLabelToEdgeLabel(label, 3, config(1, 0))
	require.NoError(t, err)
	assert.Equal(t, [][]uint8{
		{1, 1, 1, 1, 1, 1},
		{1, 0, 1, 1, 0, 1},
		{1, 0, 1, 1, 0, 1},
		{1, 1, 1, 1, 1, 1},
	}, edgeRows(t, edges))
}

func TestEdgeMapRadiusZero(t *testing.T) {
	label := labelGrid(t, [][]int64{
		{0, 1, 1},
		{0, 1, 1},
	})

	edges, err := FlatLabelToEdgeLabel(label, 2, config(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, tensor.CountNonZero(edges))
}

func TestEdgeMapIsBinary(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	label := tensor.Zeros[int32](tensor.Shape{12, 9})
	for i := range label.Data() {
		label.Data()[i] = int32(rng.Intn(4))
	}

	edges, err := FlatLabelToEdgeLabel(label, 4, config(3, 0))
	require.NoError(t, err)
	for _, v := range edges.Data() {
		assert.Contains(t, []uint8{0, 1}, v)
	}
}

func TestEdgeMapErrors(t *testing.T) {
	_, err := FlatLabelToEdgeLabel(tensor.Zeros[int32](tensor.Shape{2, 2, 1}), 2, DefaultEdgeConfig())
	assert.ErrorIs(t, err, validate.ErrPreconditionViolation)

	_, err = FlatLabelToEdgeLabel(tensor.Zeros[int32](tensor.Shape{2, 2}), 2, config(-1, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "radius")
}

type countingTransformer struct {
	calls int
}

func (c *countingTransformer) Transform(grid *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	c.calls++
	return distance.EDT{}.Transform(grid)
}

type failingTransformer struct{}

func (failingTransformer) Transform(*tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	return nil, errors.New("boom")
}

func TestEdgeMapTransformer(t *testing.T) {
	label := labelGrid(t, [][]int32{{0, 1}, {2, 1}})

	counter := &countingTransformer{}
	cfg := DefaultEdgeConfig()
	cfg.Transformer = counter
	_, err := FlatLabelToEdgeLabel(label, 3, cfg)
	require.NoError(t, err)
	assert.Equal(t, 6, counter.calls)

	cfg.Transformer = failingTransformer{}
	_, err = FlatLabelToEdgeLabel(label, 3, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class 0: boom")

	cfg.Transformer = nil
	edges, err := FlatLabelToEdgeLabel(label, 3, cfg)
	require.NoError(t, err)
	assert.True(t, edges.Shape().Equal(tensor.Shape{2, 2, 1}))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf).Level(zerolog.DebugLevel)
	SetLogger(&l)
	t.Cleanup(func() { SetLogger(nil) })

	label := labelGrid(t, [][]int32{{0, 1}, {1, 1}})
	_, err := FlatLabelToEdgeLabel(label, 2, DefaultEdgeConfig())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "edge map generated")
	assert.Contains(t, buf.String(), `"edge_pixels":`)
	assert.NotContains(t, buf.String(), "class boundary band", "trace is below the configured level")

	SetLogger(nil)
	assert.Equal(t, zerolog.Disabled, Logger().GetLevel())
}
