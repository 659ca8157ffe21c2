package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	sgd "github.com/n0madic/go-sgd"
)

func main() {
	// Toy problem: recover trueW from y = X*trueW + noise with
	// L2-regularized squared loss, plain and averaged weights side by side.
	const (
		nSamples = 500
		alpha    = 1e-4 // L2 strength
		eta0     = 0.05
		epochs   = 20
	)
	trueW := []float64{2.0, -1.0, 0.5, 0.0, 3.0}
	nFeatures := len(trueW)

	rng := rand.New(rand.NewPCG(1, 2))
	X := mat.NewDense(nSamples, nFeatures, nil)
	for i := 0; i < nSamples; i++ {
		for j := 0; j < nFeatures; j++ {
			X.Set(i, j, rng.NormFloat64())
		}
	}
	yVec := mat.NewVecDense(nSamples, nil)
	yVec.MulVec(X, mat.NewVecDense(nFeatures, trueW))
	y := yVec.RawVector().Data
	for i := range y {
		y[i] += 0.01 * rng.NormFloat64()
	}

	ds, err := sgd.NewArrayDatasetFromDense(X, y, nil, sgd.DatasetOptions{Seed: 7})
	if err != nil {
		panic(err)
	}

	coef := make([]float64, nFeatures)
	avg := make([]float64, nFeatures)
	w, err := sgd.NewWeightVector(coef, sgd.Options{Average: avg})
	if err != nil {
		panic(err)
	}

	t := 0
	for epoch := 0; epoch < epochs; epoch++ {
		ds.Shuffle(uint64(epoch))
		for i := 0; i < ds.Len(); i++ {
			t++
			eta := eta0 / (1 + eta0*alpha*float64(t))
			s := ds.Next()

			p := w.Dot(s.Indices, s.Values)
			update := -eta * (p - s.Target) * s.Weight

			w.Scale(math.Max(0, 1-eta*alpha))
			w.Add(s.Indices, s.Values, update)
			w.AddAverage(s.Indices, s.Values, update, float64(t))
		}
	}
	w.ResetScale()

	fmt.Printf("weights:  %.4f\n", coef)
	fmt.Printf("averaged: %.4f\n", avg)
	fmt.Printf("‖w‖ = %.4f, ‖w - w*‖ = %.2e\n", w.Norm(), floats.Distance(coef, trueW, 2))
}
