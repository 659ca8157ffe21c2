package sgd

import (
	"gonum.org/v1/gonum/blas/blas64"
)

// toVector creates a blas64.Vector from a float64 slice for BLAS operations
func toVector(data []float64) blas64.Vector {
	return blas64.Vector{N: len(data), Data: data, Inc: 1}
}

// ---------- Sparse kernels (hot path, no validation) ----------

// sparseDot computes Σ w[indices[j]] * values[j] for j < len(values).
func sparseDot(w []float64, indices []int, values []float64) float64 {
	indices = indices[:len(values)]
	var sum float64
	for j, val := range values {
		sum += w[indices[j]] * val
	}
	return sum
}

// sparseAddNorm performs w[idx] += val*step in one pass and returns
//
//	inner   = Σ w[idx]*val  (pre-update coefficients)
//	xsqnorm = Σ val^2
//
// which is everything needed to update the squared norm incrementally.
func sparseAddNorm(w []float64, indices []int, values []float64, step float64) (inner, xsqnorm float64) {
	indices = indices[:len(values)]
	for j, val := range values {
		idx := indices[j]
		inner += w[idx] * val
		xsqnorm += val * val
		w[idx] += val * step
	}
	return inner, xsqnorm
}

// sparseAxpy computes y[indices[j]] += alpha * values[j].
func sparseAxpy(alpha float64, indices []int, values []float64, y []float64) {
	indices = indices[:len(values)]
	for j, val := range values {
		y[indices[j]] += alpha * val
	}
}

// ---------- Dense kernels (O(d), strategy dependent) ----------

// scaleDense computes x *= alpha
func scaleDense(s DenseStrategy, alpha float64, x []float64) {
	if s == StrategyBLAS {
		blas64.Scal(alpha, toVector(x))
		return
	}
	for i := range x {
		x[i] *= alpha
	}
}

// axpyDense computes y += alpha*x
func axpyDense(s DenseStrategy, alpha float64, x, y []float64) {
	if s == StrategyBLAS {
		blas64.Axpy(alpha, toVector(x), toVector(y))
		return
	}
	y = y[:len(x)]
	for i, v := range x {
		y[i] += alpha * v
	}
}

// squaredNorm computes Σ x[i]^2
func squaredNorm(x []float64) float64 {
	return blas64.Dot(toVector(x), toVector(x))
}
