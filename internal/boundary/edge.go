package boundary

import (
	"fmt"

	"github.com/born-ml/gscnn/internal/tensor"
)

// FlatLabelToEdgeLabel converts an (h, w) label grid into an (h, w, 1) binary
// edge map. A pixel is 1 when it lies within cfg.Radius of a boundary of
// any non-background class.
//
// For every class the one-hot mask, padded by one zero pixel on each side,
// is distance-transformed from both sides of its boundary; the two
// transforms are summed, cropped back to (h, w), cleared above the radius
// and accumulated. Padding means a class touching the image border has a
// boundary there.
//
// Example:
//
//	label, _ := tensor.FromRows([][]int32{
//		{0, 0, 1, 1},
//		{0, 0, 1, 1},
//	})
//	edges, err := boundary.FlatLabelToEdgeLabel(label, 2, boundary.DefaultEdgeConfig())
func FlatLabelToEdgeLabel[T tensor.Label](label *tensor.Tensor[T], nClasses int, cfg EdgeConfig) (*tensor.Tensor[uint8], error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("edge config: %w", err)
	}

	oneHot, err := LabelToOneHot(label, nClasses, cfg.BackgroundClass)
	if err != nil {
		return nil, err
	}

	h, w := label.Shape()[0], label.Shape()[1]
	padded := tensor.Convert[float64](tensor.Pad2D(oneHot, 1, 0))
	edt := cfg.transformer()
	radius := float64(cfg.Radius)
	logger := Logger()

	acc := tensor.Zeros[float64](tensor.Shape{h, w})
	for i := 0; i < nClasses; i++ {
		mask := tensor.Channel(padded, i)

		outside, err := edt.Transform(mask)
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", i, err)
		}
		inside, err := edt.Transform(tensor.ScalarSub(1.0, mask))
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", i, err)
		}

		dist := tensor.Crop2D(tensor.Add(outside, inside), 1, 1, h, w)
		tensor.ClearGreater(dist, radius)
		tensor.AddInPlace(acc, dist)

		if e := logger.Trace(); e.Enabled() {
			e.Int("class", i).Int("pixels", tensor.CountNonZero(dist)).Msg("class boundary band")
		}
	}

	edges := tensor.BoolToUint8(tensor.GreaterScalar(tensor.ExpandDims(acc, -1), 0))

	if e := logger.Debug(); e.Enabled() {
		e.Ints("shape", label.Shape()).
			Int("classes", nClasses).
			Int("radius", cfg.Radius).
			Int("background", cfg.BackgroundClass).
			Int("edge_pixels", tensor.CountNonZero(edges)).
			Msg("edge map generated")
	}

	return edges, nil
}
