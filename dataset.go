package sgd

import (
	"math/rand/v2"
)

// Sample is one training example as returned by a Dataset.
//
// Indices and Values alias the dataset's backing storage. They are
// read-only and only valid until the next Next, Random, Shuffle or Reset
// call on the same Dataset.
type Sample struct {
	Indices []int
	Values  []float64
	Target  float64
	Weight  float64
	// Index is the row of the sample in the original data.
	Index int
}

// Nnz returns the number of stored features of the sample.
func (s Sample) Nnz() int { return len(s.Values) }

// Dataset yields training examples one at a time. It is implemented only by
// *ArrayDataset and *CSRDataset.
//
// Iteration is cyclic: after the last position of the permutation Next
// silently wraps to the first, so a Dataset is never exhausted. Epoch
// accounting, if any, belongs to the caller (Len() calls per epoch).
type Dataset interface {
	// Next advances the cursor and returns the sample it now points at.
	Next() Sample
	// Random returns a uniformly drawn sample without moving the cursor.
	Random() Sample
	// Shuffle replaces the iteration order with the permutation derived
	// from seed. The cursor position is kept.
	Shuffle(seed uint64)
	// Reset moves the cursor back so that the next call to Next returns
	// the first position of the permutation.
	Reset()
	// Len returns the number of samples.
	Len() int
	// Index returns the row of the last returned sample, or -1.
	Index() int

	sample(row int) Sample
}

var (
	_ Dataset = (*ArrayDataset)(nil)
	_ Dataset = (*CSRDataset)(nil)
)

// DatasetOptions configures a Dataset.
type DatasetOptions struct {
	// Seed seeds the generator used by Random.
	Seed uint64
}

// sequence is the permutation and cursor shared by all Dataset variants.
type sequence struct {
	perm    []int
	current int
	last    int

	// random draws; shuffles use their own source so that Shuffle(seed)
	// does not depend on how many Random calls came before.
	rng      *rand.Rand
	shufSrc  *rand.PCG
	shuffler *rand.Rand
}

func newSequence(n int, seed uint64) sequence {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	shufSrc := rand.NewPCG(0, 0)
	return sequence{
		perm:     perm,
		current:  -1,
		last:     -1,
		rng:      rand.New(rand.NewPCG(seed, seed)),
		shufSrc:  shufSrc,
		shuffler: rand.New(shufSrc),
	}
}

func (s *sequence) nextRow() int {
	s.current++
	if s.current >= len(s.perm) {
		s.current = 0
	}
	s.last = s.perm[s.current]
	return s.last
}

func (s *sequence) randomRow() int {
	s.last = s.perm[s.rng.IntN(len(s.perm))]
	return s.last
}

// Shuffle rebuilds the permutation from the identity with a Fisher-Yates
// pass seeded by seed, so equal seeds always give equal orders.
func (s *sequence) Shuffle(seed uint64) {
	for i := range s.perm {
		s.perm[i] = i
	}
	s.shufSrc.Seed(seed, seed)
	s.shuffler.Shuffle(len(s.perm), func(i, j int) {
		s.perm[i], s.perm[j] = s.perm[j], s.perm[i]
	})
}

func (s *sequence) Reset() {
	s.current = -1
	s.last = -1
}

func (s *sequence) Len() int { return len(s.perm) }

func (s *sequence) Index() int { return s.last }

// Permutation returns the current iteration order. It must not be modified.
func (s *sequence) Permutation() []int { return s.perm }
