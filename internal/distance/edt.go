// Package distance computes Euclidean distance transforms over 2-D grids.
package distance

import (
	"fmt"
	"math"

	"github.com/born-ml/gscnn/internal/tensor"
)

// Transformer maps a 2-D grid to the Euclidean distance from each element
// to the nearest zero-valued element. Zero elements map to 0.
type Transformer interface {
	Transform(grid *tensor.Tensor[float64]) (*tensor.Tensor[float64], error)
}

// far stands in for "no zero seen yet" during the separable passes.
// It must stay finite so parabola intersections never produce NaN.
const far = 1e20

// EDT is the exact Euclidean distance transform of Felzenszwalb and
// Huttenlocher: a 1-D lower envelope of parabolas run over columns, then
// rows, on squared distances.
//
// A grid without any zero element yields +Inf everywhere.
type EDT struct{}

// Transform implements Transformer.
func (EDT) Transform(grid *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	sq, err := SquaredEDT(grid)
	if err != nil {
		return nil, err
	}
	data := sq.Data()
	for i, v := range data {
		data[i] = math.Sqrt(v)
	}
	return sq, nil
}

// SquaredEDT returns the squared Euclidean distance from each element of
// grid to the nearest zero element.
func SquaredEDT(grid *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	if err := checkGrid(grid); err != nil {
		return nil, err
	}
	h, w := grid.Shape()[0], grid.Shape()[1]

	result := tensor.Zeros[float64](grid.Shape())
	out := result.Data()

	zeros := 0
	for i, v := range grid.Data() {
		if v == 0 {
			zeros++
		} else {
			out[i] = far
		}
	}
	// No zero to measure to: every distance is infinite. This departs from
	// scipy's distance_transform_edt, which returns finite values here.
	if zeros == 0 {
		for i := range out {
			out[i] = math.Inf(1)
		}
		return result, nil
	}

	n := max(h, w)
	f := make([]float64, n)
	d := make([]float64, n)
	env := newEnvelope(n)

	// Columns.
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			f[y] = out[y*w+x]
		}
		env.transform(f[:h], d[:h])
		for y := 0; y < h; y++ {
			out[y*w+x] = d[y]
		}
	}

	// Rows.
	for y := 0; y < h; y++ {
		row := out[y*w : (y+1)*w]
		copy(f, row)
		env.transform(f[:w], d[:w])
		copy(row, d[:w])
	}

	return result, nil
}

// envelope holds the scratch space for the 1-D transform.
type envelope struct {
	v []int     // parabola vertices
	z []float64 // boundaries between parabolas
}

func newEnvelope(n int) *envelope {
	return &envelope{
		v: make([]int, n),
		z: make([]float64, n+1),
	}
}

// transform writes into d the 1-D squared distance transform of f:
// d[q] = min over p of (q-p)^2 + f[p].
func (e *envelope) transform(f, d []float64) {
	n := len(f)
	if n == 0 {
		return
	}

	v, z := e.v, e.z
	k := 0
	v[0] = 0
	z[0] = math.Inf(-1)
	z[1] = math.Inf(1)

	for q := 1; q < n; q++ {
		s := intersect(f, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, q, v[k])
		}
		k++
		v[k] = q
		z[k] = s
		z[k+1] = math.Inf(1)
	}

	k = 0
	for q := 0; q < n; q++ {
		for z[k+1] < float64(q) {
			k++
		}
		dq := float64(q - v[k])
		d[q] = dq*dq + f[v[k]]
	}
}

// intersect returns the abscissa where the parabolas rooted at q and p meet.
func intersect(f []float64, q, p int) float64 {
	fq, fp := float64(q), float64(p)
	return ((f[q] + fq*fq) - (f[p] + fp*fp)) / (2*fq - 2*fp)
}

func checkGrid(grid *tensor.Tensor[float64]) error {
	if grid == nil {
		return fmt.Errorf("distance transform: nil grid")
	}
	if r := len(grid.Shape()); r != 2 {
		return fmt.Errorf("distance transform: grid must be 2-D, got shape %v", grid.Shape())
	}
	return nil
}
