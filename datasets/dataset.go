// Package datasets implements the sequence dataset types consumed by the sampler and collator
package datasets

// Example is one (input, target) pair of token ids
type Example struct {
	Input  []int
	Target []int
}

// Len is the input length, used for grouping
func (e Example) Len() int {
	return len(e.Input)
}

// LengthSet is a dataset exposing a precomputed length per item.
// LengthAt must be O(1), the sampler calls it for every index on every pass.
type LengthSet interface {

	// Len is the number of items
	Len() int

	// LengthAt is the length of item n
	LengthAt(n int) int
}

// Lengths is a LengthSet made of lengths only
type Lengths []int

func (l Lengths) Len() int {
	return len(l)
}

func (l Lengths) LengthAt(n int) int {
	return l[n]
}

// Dataslice is an in-memory dataset of examples with lengths computed once
type Dataslice struct {
	examples []Example
	lengths  Lengths
}

// NewDataslice wraps examples, the slice is not copied
func NewDataslice(examples []Example) *Dataslice {
	d := &Dataslice{
		examples: examples,
		lengths:  make(Lengths, len(examples)),
	}
	for i := range examples {
		d.lengths[i] = examples[i].Len()
	}
	return d
}

func (d *Dataslice) Get(n int) Example {
	return d.examples[n]
}

func (d *Dataslice) Len() int {
	return len(d.examples)
}

func (d *Dataslice) LengthAt(n int) int {
	return d.lengths[n]
}

// Gather returns the examples at the given indices, in order
func (d *Dataslice) Gather(indices []int) (out []Example) {
	out = make([]Example, len(indices))
	for i, n := range indices {
		out[i] = d.examples[n]
	}
	return
}

// MaxLength finds the longest item, ties resolve to the lowest index.
// Returns (-1, 0) for an empty set.
func MaxLength(set LengthSet) (index, length int) {
	index = -1
	for i := 0; i < set.Len(); i++ {
		if l := set.LengthAt(i); index < 0 || l > length {
			index, length = i, l
		}
	}
	return
}
