package sgd

import (
	"errors"
)

// CSRDataset iterates over the rows of a matrix in compressed sparse row
// form. Row i stores its non-zeros in data[indptr[i]:indptr[i+1]] with
// column numbers in the same range of indices.
type CSRDataset struct {
	sequence

	data    []float64
	indptr  []int
	indices []int

	y            []float64
	sampleWeight []float64
}

// NewCSRDataset wraps the CSR triple, y and sampleWeight without copying.
// A nil sampleWeight weights all samples 1.
func NewCSRDataset(data []float64, indptr, indices []int, y, sampleWeight []float64, opt DatasetOptions) (*CSRDataset, error) {
	if len(indptr) < 2 {
		return nil, errors.New("indptr must have at least 2 entries")
	}
	nSamples := len(indptr) - 1
	if len(data) != len(indices) {
		return nil, errors.New("data and indices must have equal length")
	}
	if indptr[0] < 0 {
		return nil, errors.New("indptr must start at a non-negative offset")
	}
	for i := 0; i < nSamples; i++ {
		if indptr[i+1] < indptr[i] {
			return nil, errors.New("indptr must be non-decreasing")
		}
	}
	if indptr[nSamples] > len(data) {
		return nil, errors.New("indptr points past the end of data")
	}
	for _, col := range indices {
		if col < 0 {
			return nil, errors.New("negative column index encountered")
		}
	}
	if len(y) != nSamples {
		return nil, errors.New("y length must match the number of rows")
	}
	sampleWeight, err := checkWeights(sampleWeight, nSamples)
	if err != nil {
		return nil, err
	}

	return &CSRDataset{
		sequence:     newSequence(nSamples, opt.Seed),
		data:         data,
		indptr:       indptr,
		indices:      indices,
		y:            y,
		sampleWeight: sampleWeight,
	}, nil
}

func (d *CSRDataset) Next() Sample { return d.sample(d.nextRow()) }

func (d *CSRDataset) Random() Sample { return d.sample(d.randomRow()) }

func (d *CSRDataset) sample(row int) Sample {
	start, end := d.indptr[row], d.indptr[row+1]
	return Sample{
		Indices: d.indices[start:end:end],
		Values:  d.data[start:end:end],
		Target:  d.y[row],
		Weight:  d.sampleWeight[row],
		Index:   row,
	}
}
