package synthetic

import rand "math/rand/v2"

import "github.com/neurlang/batching/datasets"

const SmallSize = 1 << 8
const MediumSize = 1 << 12
const BigSize = 1 << 16

const Vocab = 512

// New generates n next-token examples with input lengths uniform in [minLen, maxLen].
// Tokens are drawn from [1, vocab) so the padding token 0 never appears.
func New(seed uint64, n, minLen, maxLen, vocab int) *datasets.Dataslice {
	if minLen < 1 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	if vocab < 2 {
		vocab = 2
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	examples := make([]datasets.Example, n)
	for i := range examples {
		var tokens = make([]int, minLen+rng.IntN(maxLen-minLen+1)+1)
		for j := range tokens {
			tokens[j] = 1 + rng.IntN(vocab-1)
		}
		examples[i] = datasets.Shifted(tokens)
	}
	return datasets.NewDataslice(examples)
}

func Small(seed uint64) *datasets.Dataslice {
	return New(seed, SmallSize, 1, 64, Vocab)
}

func Medium(seed uint64) *datasets.Dataslice {
	return New(seed, MediumSize, 1, 256, Vocab)
}

func Big(seed uint64) *datasets.Dataslice {
	return New(seed, BigSize, 1, 1024, Vocab)
}
