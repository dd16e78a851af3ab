// Package loader drives the length grouped sampler and the collator over one pass of a dataset
package loader

import rand "math/rand/v2"

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/neurlang/batching/collate"
	"github.com/neurlang/batching/datasets"
	"github.com/neurlang/batching/parallel"
	"github.com/neurlang/batching/sampler"
)

// Loader produces collated batches in length grouped order.
// Epoch must not be called from several goroutines at once, the sampler prng is not locked.
type Loader struct {
	set      *datasets.Dataslice
	h        HyperParameters
	sampler  *sampler.LengthGrouped
	collator collate.Collator
}

// Epoch is one full pass
type Epoch struct {
	ID string

	// Indices are the dataset indices of every batch, in sampler order
	Indices [][]int
	Batches []collate.Batch
}

// New validates h and prepares a loader over set
func New(set *datasets.Dataslice, h HyperParameters) (*Loader, error) {
	if set == nil {
		return nil, errors.New("loader: nil dataset")
	}
	if err := h.Validate(); err != nil {
		return nil, errors.Wrap(err, "loader: invalid hyperparameters")
	}
	var rng *rand.Rand
	if h.Seeded {
		rng = rand.New(rand.NewPCG(h.Seed, h.Seed))
	}
	s, err := sampler.NewLengthGrouped(h.BatchSize, set, rng)
	if err != nil {
		return nil, errors.Wrap(err, "loader")
	}
	s.SetMegaBatchMult(h.MegaBatchMult)
	return &Loader{
		set:      set,
		h:        h,
		sampler:  s,
		collator: collate.Collator{BlockSize: h.BlockSize},
	}, nil
}

// Len is the number of batches in one pass
func (l *Loader) Len() int {
	n := l.set.Len() / l.h.BatchSize
	if !l.h.DropLast && l.set.Len()%l.h.BatchSize != 0 {
		n++
	}
	return n
}

// Sampler exposes the underlying sampler
func (l *Loader) Sampler() *sampler.LengthGrouped {
	return l.sampler
}

// Epoch samples a fresh ordering and collates every batch of it
func (l *Loader) Epoch() *Epoch {
	var indices = l.sampler.Batches()
	if l.h.DropLast && len(indices) > 0 && len(indices[len(indices)-1]) < l.h.BatchSize {
		indices = indices[:len(indices)-1]
	}
	return l.collate(indices)
}

// Ordered collates the given index batches, in the given order
func (l *Loader) Ordered(indices [][]int) *Epoch {
	return l.collate(indices)
}

func (l *Loader) collate(indices [][]int) *Epoch {
	e := &Epoch{
		ID:      uuid.NewString(),
		Indices: indices,
		Batches: make([]collate.Batch, len(indices)),
	}
	parallel.ForEach(len(indices), l.h.Threads, func(i int) {
		e.Batches[i] = l.collator.Collate(l.set.Gather(indices[i]))
	})
	if l.h.l != nil {
		padded, total := e.Padding()
		l.h.l.Printf("epoch %s: %d batches, %d/%d padding cells (%.2f%%)",
			e.ID, len(e.Batches), padded, total, Ratio(padded, total))
	}
	return e
}

// Padding sums the input padding of all batches
func (e *Epoch) Padding() (padded, total int) {
	for _, b := range e.Batches {
		p, t := b.Padding()
		padded += p
		total += t
	}
	return
}

// Ratio is padded/total in percent, 0 for an empty total
func Ratio(padded, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(padded) / float64(total)
}
