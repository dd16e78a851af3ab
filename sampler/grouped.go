// Package sampler orders dataset indices so that batches hold examples of similar length
package sampler

import rand "math/rand/v2"
import "sort"

import "github.com/neurlang/batching/datasets"

// MaxMegaBatchMult caps the default number of batches sorted together
const MaxMegaBatchMult = 50

// DefaultMegaBatchMult is 50 or the multiplier giving 4 mega-batches, whichever is smaller, but at least 1.
// The floor division makes few large mega-batches for mid sized sets with big batches,
// pass an explicit multiplier when that matters.
func DefaultMegaBatchMult(n, batchSize int) int {
	if batchSize < 1 {
		batchSize = 1
	}
	mult := n / (batchSize * 4)
	if mult > MaxMegaBatchMult {
		mult = MaxMegaBatchMult
	}
	if mult == 0 {
		mult = 1
	}
	return mult
}

// GroupedIndices returns a permutation of 0..set.Len()-1 where every run of batchSize
// consecutive indices refers to items of similar length:
//
//   - the indices are randomly permuted using rng
//   - grouped in mega-batches of megaBatchMult * batchSize
//   - stably sorted by descending length within each mega-batch
//
// The globally longest item is then swapped to position 0, so that a batch that does
// not fit into memory fails first. A non-positive megaBatchMult selects DefaultMegaBatchMult.
func GroupedIndices(set datasets.LengthSet, batchSize, megaBatchMult int, rng *rand.Rand) []int {
	var n = set.Len()
	if n == 0 {
		return []int{}
	}
	if batchSize < 1 {
		batchSize = 1
	}
	if megaBatchMult <= 0 {
		megaBatchMult = DefaultMegaBatchMult(n, batchSize)
	}
	var indices = rng.Perm(n)
	var size = megaBatchMult * batchSize

	// leaders holds the start of each mega-batch
	var leaders []int
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		mega := indices[start:end]
		sort.SliceStable(mega, func(i, j int) bool {
			return set.LengthAt(mega[i]) > set.LengthAt(mega[j])
		})
		leaders = append(leaders, start)
	}

	var best = leaders[0]
	for _, start := range leaders[1:] {
		if set.LengthAt(indices[start]) > set.LengthAt(indices[best]) {
			best = start
		}
	}
	indices[0], indices[best] = indices[best], indices[0]
	return indices
}

// Split cuts indices into runs of batchSize, the last run may be shorter
func Split(indices []int, batchSize int) (out [][]int) {
	if batchSize < 1 {
		batchSize = 1
	}
	for start := 0; start < len(indices); start += batchSize {
		end := start + batchSize
		if end > len(indices) {
			end = len(indices)
		}
		out = append(out, indices[start:end:end])
	}
	return
}
