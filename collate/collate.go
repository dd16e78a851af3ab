// Package collate pads a batch of variable length examples into rectangular arrays
package collate

import "github.com/neurlang/batching/datasets"

// InputPad is the empty token written after short inputs
const InputPad = 0

// IgnoreIndex is written after short targets, the loss skips these positions.
// It must never be a valid token id.
const IgnoreIndex = -100

// Collator pads batches, optionally truncating to BlockSize first
type Collator struct {
	// BlockSize is the maximum sequence length, 0 disables truncation
	BlockSize int
}

// Batch is a collated batch.
// Inputs and Targets are padded independently and may differ in width.
type Batch struct {
	Inputs  [][]int
	Targets [][]int

	// Lengths are the input lengths after truncation
	Lengths []int
}

// Collate pads the inputs with InputPad and the targets with IgnoreIndex
func (c Collator) Collate(examples []datasets.Example) (b Batch) {
	var inputs = make([][]int, len(examples))
	var targets = make([][]int, len(examples))
	for i := range examples {
		inputs[i] = examples[i].Input
		targets[i] = examples[i].Target
	}
	b.Inputs = Pad(inputs, InputPad, c.BlockSize)
	b.Targets = Pad(targets, IgnoreIndex, c.BlockSize)
	b.Lengths = make([]int, len(examples))
	for i := range inputs {
		b.Lengths[i] = truncated(len(inputs[i]), c.BlockSize)
	}
	return
}

func truncated(n, blockSize int) int {
	if blockSize > 0 && n > blockSize {
		return blockSize
	}
	return n
}

// Pad truncates every sequence to blockSize (when positive) and right pads
// it with value up to the longest one. The rows are fresh slices.
func Pad(seqs [][]int, value, blockSize int) [][]int {
	var width int
	for _, seq := range seqs {
		if n := truncated(len(seq), blockSize); n > width {
			width = n
		}
	}
	var out = make([][]int, len(seqs))
	for i, seq := range seqs {
		row := make([]int, width)
		n := copy(row, seq[:truncated(len(seq), blockSize)])
		for j := n; j < width; j++ {
			row[j] = value
		}
		out[i] = row
	}
	return out
}

// Len is the number of rows
func (b Batch) Len() int {
	return len(b.Inputs)
}

// Width is the padded input width
func (b Batch) Width() int {
	if len(b.Inputs) == 0 {
		return 0
	}
	return len(b.Inputs[0])
}

// Mask is the padding mask over the inputs, 1.0 for tokens and 0.0 for padding
func (b Batch) Mask() [][]float64 {
	var width = b.Width()
	var mask = make([][]float64, len(b.Lengths))
	for i, n := range b.Lengths {
		mask[i] = make([]float64, width)
		for j := 0; j < n; j++ {
			mask[i][j] = 1.0
		}
	}
	return mask
}

// Padding counts the padding cells of the input array against all of its cells
func (b Batch) Padding() (padded, total int) {
	total = b.Len() * b.Width()
	padded = total
	for _, n := range b.Lengths {
		padded -= n
	}
	return
}
