// File: weightvector.go
// Go 1.22+
//
// Lazily scaled dense weight vector for plain and averaged SGD.
// - True weights are ScaleFactor() * Coefficients(); shrinking the whole
//   vector is O(1), sparse updates are O(nnz)
// - Squared norm maintained incrementally in the same pass as the update
// - Automatic renormalization once the scale drops below MinScale
// - Optional running average (ASGD) kept in the same lazy form
//
// Concurrency: a WeightVector is NOT goroutine-safe. Parallel SGD needs one
// WeightVector per worker, merged by the caller.

package sgd

import (
	"errors"
	"math"
)

// MinScale is the scale factor below which Scale renormalizes the
// coefficient buffer.
const MinScale = 1e-9

// WeightVector is a dense coefficient buffer w with a multiplicative scale
// s, representing the weights s*w.
//
// Sparse examples are passed as parallel (indices, values) slices; nnz is
// len(values) and indices must hold at least that many entries, each
// below Len(). Out-of-range indices are a caller bug and are not checked
// beyond what the runtime does.
//
// Example usage:
//
//	coef := make([]float64, 3)
//	w, _ := sgd.NewWeightVector(coef, sgd.Options{})
//	w.Add([]int{0, 2}, []float64{1, 2}, 1.0)
//	w.Dot([]int{0, 2}, []float64{1, 2}) // 5
//	w.Scale(0.5)                        // O(1)
type WeightVector struct {
	w      []float64
	scale  float64
	sqnorm float64

	// Averaging state: the running average is (aw + avgA*w) / avgB.
	// aw == nil disables averaging.
	aw   []float64
	avgA float64
	avgB float64

	strategy DenseStrategy
}

// Options configures a WeightVector. The zero value is a plain
// (non-averaged) vector with the default adaptive configuration.
type Options struct {
	// Average, when non-nil, enables averaged SGD. It must have the same
	// length as the coefficient buffer and is used in place; it normally
	// starts at zero.
	Average []float64

	// Adaptive overrides DefaultAdaptiveConfig for dense passes.
	Adaptive *AdaptiveConfig
}

// NewWeightVector wraps coef without copying. The squared norm is computed
// once from coef, so a non-zero starting point is allowed.
func NewWeightVector(coef []float64, opt Options) (*WeightVector, error) {
	if len(coef) == 0 {
		return nil, errors.New("coefficients must be non-empty")
	}
	for _, v := range coef {
		if !isFinite(v) {
			return nil, errors.New("non-finite coefficient encountered")
		}
	}
	if opt.Average != nil {
		if len(opt.Average) != len(coef) {
			return nil, errors.New("Average length must match coefficients length")
		}
		for _, v := range opt.Average {
			if !isFinite(v) {
				return nil, errors.New("non-finite average coefficient encountered")
			}
		}
	}

	cfg := DefaultAdaptiveConfig()
	if opt.Adaptive != nil {
		cfg = *opt.Adaptive
	}

	return &WeightVector{
		w:        coef,
		scale:    1.0,
		sqnorm:   squaredNorm(coef),
		aw:       opt.Average,
		avgA:     0.0,
		avgB:     1.0,
		strategy: SelectDenseStrategy(len(coef), cfg),
	}, nil
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Dot returns the inner product of the weights with the sparse example x.
func (wv *WeightVector) Dot(indices []int, values []float64) float64 {
	return wv.scale * sparseDot(wv.w, indices, values)
}

// Add performs weights += c*x for the sparse example x and updates the
// squared norm from the same pass:
//
//	‖w + c·x‖² = ‖w‖² + c²‖x‖² + 2c⟨w, x⟩
func (wv *WeightVector) Add(indices []int, values []float64, c float64) {
	inner, xsqnorm := sparseAddNorm(wv.w, indices, values, c/wv.scale)
	wv.sqnorm += xsqnorm*c*c + 2.0*inner*wv.scale*c
}

// AddAverage updates the running average after the numIter-th update,
// where c is the same multiplier just passed to Add. numIter counts
// averaged updates starting at 1. It is a no-op without averaging.
func (wv *WeightVector) AddAverage(indices []int, values []float64, c, numIter float64) {
	if wv.aw == nil {
		return
	}
	mu := 1.0 / numIter
	sparseAxpy(-c*wv.avgA/wv.scale, indices, values, wv.aw)
	if numIter > 1 {
		wv.avgB /= 1.0 - mu
	}
	wv.avgA += mu * wv.avgB * wv.scale
}

// Scale multiplies the weights by c in O(1). When the accumulated scale
// falls below MinScale the buffer is renormalized (O(d)).
func (wv *WeightVector) Scale(c float64) {
	wv.scale *= c
	wv.sqnorm *= c * c
	if wv.scale < MinScale {
		wv.ResetScale()
	}
}

// ResetScale folds the scale into the coefficients and sets it back to 1.
// The represented weights (and the running average) are unchanged.
func (wv *WeightVector) ResetScale() {
	if wv.aw != nil {
		axpyDense(wv.strategy, wv.avgA, wv.w, wv.aw)
		scaleDense(wv.strategy, 1.0/wv.avgB, wv.aw)
		wv.avgA = 0.0
		wv.avgB = 1.0
	}
	scaleDense(wv.strategy, wv.scale, wv.w)
	wv.scale = 1.0
}

// Norm returns the Euclidean norm of the weights.
func (wv *WeightVector) Norm() float64 { return math.Sqrt(wv.sqnorm) }

// SquaredNorm returns the incrementally maintained squared norm.
func (wv *WeightVector) SquaredNorm() float64 { return wv.sqnorm }

// ScaleFactor returns the current lazy scale s.
func (wv *WeightVector) ScaleFactor() float64 { return wv.scale }

// Coefficients returns the raw buffer w; the weights are ScaleFactor()*w.
// Call ResetScale first to read the weights directly.
func (wv *WeightVector) Coefficients() []float64 { return wv.w }

// Len returns the dimension.
func (wv *WeightVector) Len() int { return len(wv.w) }

// Averaging reports whether a running average is maintained.
func (wv *WeightVector) Averaging() bool { return wv.aw != nil }

// Weights writes the represented weights s*w into dst, allocating when dst
// is too short.
func (wv *WeightVector) Weights(dst []float64) []float64 {
	dst = resize(dst, len(wv.w))
	for i, v := range wv.w {
		dst[i] = wv.scale * v
	}
	return dst
}

// Averaged writes the running average into dst, allocating when dst is too
// short. It returns nil when averaging is disabled.
func (wv *WeightVector) Averaged(dst []float64) []float64 {
	if wv.aw == nil {
		return nil
	}
	dst = resize(dst, len(wv.w))
	invB := 1.0 / wv.avgB
	for i, v := range wv.w {
		dst[i] = (wv.aw[i] + wv.avgA*v) * invB
	}
	return dst
}

func resize(x []float64, n int) []float64 {
	if cap(x) < n {
		return make([]float64, n)
	}
	return x[:n]
}
