package synthetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	d := New(7, 100, 3, 9, 20)
	assert.Equal(t, 100, d.Len())
	for i := 0; i < d.Len(); i++ {
		ex := d.Get(i)
		assert.Equal(t, len(ex.Input), d.LengthAt(i))
		assert.GreaterOrEqual(t, d.LengthAt(i), 3)
		assert.LessOrEqual(t, d.LengthAt(i), 9)
		assert.Equal(t, ex.Input[1:], ex.Target[:len(ex.Target)-1])
		for _, tok := range ex.Input {
			assert.True(t, tok >= 1 && tok < 20, "token %d", tok)
		}
	}
}

func TestNewIsReproducible(t *testing.T) {
	a := New(42, 50, 1, 30, Vocab)
	b := New(42, 50, 1, 30, Vocab)
	c := New(43, 50, 1, 30, Vocab)
	var differs bool
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.Get(i), b.Get(i))
		if a.LengthAt(i) != c.LengthAt(i) {
			differs = true
		}
	}
	assert.True(t, differs)
}

func TestSmall(t *testing.T) {
	assert.Equal(t, SmallSize, Small(1).Len())
}
