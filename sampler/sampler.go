package sampler

import rand "math/rand/v2"

import "github.com/pkg/errors"

import "github.com/neurlang/batching/datasets"

// LengthGrouped samples a full pass over a dataset, grouping similar lengths into batches
// while keeping some randomness. Every call to Indices reshuffles.
type LengthGrouped struct {
	set           datasets.LengthSet
	batchSize     int
	megaBatchMult int
	rng           *rand.Rand
}

// NewLengthGrouped creates the sampler. A nil rng is replaced by one seeded from the runtime.
// The rng is owned by the sampler afterwards and must not be shared across goroutines.
func NewLengthGrouped(batchSize int, set datasets.LengthSet, rng *rand.Rand) (*LengthGrouped, error) {
	if set == nil {
		return nil, errors.New("sampler: nil dataset")
	}
	if batchSize < 1 {
		return nil, errors.Errorf("sampler: batch size must be positive, got %d", batchSize)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &LengthGrouped{
		set:       set,
		batchSize: batchSize,
		rng:       rng,
	}, nil
}

// SetMegaBatchMult fixes the mega-batch multiplier, 0 restores the default
func (s *LengthGrouped) SetMegaBatchMult(mult int) {
	if mult < 0 {
		mult = 0
	}
	s.megaBatchMult = mult
}

// MegaBatchMult is the multiplier in effect
func (s *LengthGrouped) MegaBatchMult() int {
	if s.megaBatchMult > 0 {
		return s.megaBatchMult
	}
	return DefaultMegaBatchMult(s.set.Len(), s.batchSize)
}

func (s *LengthGrouped) BatchSize() int {
	return s.batchSize
}

// Len is the dataset size
func (s *LengthGrouped) Len() int {
	return s.set.Len()
}

// Indices is a freshly randomized ordering of all dataset indices
func (s *LengthGrouped) Indices() []int {
	return GroupedIndices(s.set, s.batchSize, s.megaBatchMult, s.rng)
}

// Batches is Indices cut into batches
func (s *LengthGrouped) Batches() [][]int {
	return Split(s.Indices(), s.batchSize)
}
