package sgd

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ArrayDataset iterates over the rows of a dense row-major matrix.
// Every sample uses all features, so Indices is always 0..nFeatures-1.
type ArrayDataset struct {
	sequence

	x         []float64
	stride    int
	nFeatures int

	featureIndices []int
	y              []float64
	sampleWeight   []float64
}

// NewArrayDataset wraps x, y and sampleWeight without copying. Row i of the
// matrix starts at x[i*stride]. A nil sampleWeight weights all samples 1.
func NewArrayDataset(x []float64, nSamples, nFeatures, stride int, y, sampleWeight []float64, opt DatasetOptions) (*ArrayDataset, error) {
	if nSamples <= 0 || nFeatures <= 0 {
		return nil, errors.New("nSamples and nFeatures must be > 0")
	}
	if stride < nFeatures {
		return nil, errors.New("stride must be >= nFeatures")
	}
	if len(x) < (nSamples-1)*stride+nFeatures {
		return nil, errors.New("x is too short for nSamples rows of the given stride")
	}
	if len(y) != nSamples {
		return nil, errors.New("y length must match nSamples")
	}
	sampleWeight, err := checkWeights(sampleWeight, nSamples)
	if err != nil {
		return nil, err
	}

	featureIndices := make([]int, nFeatures)
	for j := range featureIndices {
		featureIndices[j] = j
	}

	return &ArrayDataset{
		sequence:       newSequence(nSamples, opt.Seed),
		x:              x,
		stride:         stride,
		nFeatures:      nFeatures,
		featureIndices: featureIndices,
		y:              y,
		sampleWeight:   sampleWeight,
	}, nil
}

// NewArrayDatasetFromDense wraps the backing storage of m; later writes to
// m are visible to the dataset.
func NewArrayDatasetFromDense(m *mat.Dense, y, sampleWeight []float64, opt DatasetOptions) (*ArrayDataset, error) {
	if m == nil || m.IsEmpty() {
		return nil, errors.New("matrix must be non-empty")
	}
	raw := m.RawMatrix()
	return NewArrayDataset(raw.Data, raw.Rows, raw.Cols, raw.Stride, y, sampleWeight, opt)
}

func checkWeights(sampleWeight []float64, nSamples int) ([]float64, error) {
	if sampleWeight == nil {
		sampleWeight = make([]float64, nSamples)
		for i := range sampleWeight {
			sampleWeight[i] = 1.0
		}
		return sampleWeight, nil
	}
	if len(sampleWeight) != nSamples {
		return nil, errors.New("sampleWeight length must match nSamples")
	}
	return sampleWeight, nil
}

// NFeatures returns the number of columns.
func (d *ArrayDataset) NFeatures() int { return d.nFeatures }

func (d *ArrayDataset) Next() Sample { return d.sample(d.nextRow()) }

func (d *ArrayDataset) Random() Sample { return d.sample(d.randomRow()) }

func (d *ArrayDataset) sample(row int) Sample {
	off := row * d.stride
	end := off + d.nFeatures
	return Sample{
		Indices: d.featureIndices,
		Values:  d.x[off:end:end],
		Target:  d.y[row],
		Weight:  d.sampleWeight[row],
		Index:   row,
	}
}
