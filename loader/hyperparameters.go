package loader

import (
	"io"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
)

// HyperParameters configure one Loader
type HyperParameters struct {
	BatchSize     int `validate:"min=1"` // examples per batch
	MegaBatchMult int `validate:"gte=0"` // batches sorted together, 0 for the size based default
	BlockSize     int `validate:"gte=0"` // truncate sequences to this length, 0 to disable
	Threads       int `validate:"gte=0"` // collating goroutines, 0 for one per logical core

	DropLast bool // drop the final short batch

	Seed   uint64 // prng seed, used when Seeded
	Seeded bool   // seed the prng from Seed instead of the runtime

	l *log.Logger
}

// SetLogger appends the pass statistics to the named file
func (h *HyperParameters) SetLogger(filename string) error {
	outfile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	h.SetOutput(outfile)
	return nil
}

// SetOutput writes the pass statistics to w, nil disables logging
func (h *HyperParameters) SetOutput(w io.Writer) {
	if w == nil {
		h.l = nil
		return
	}
	h.l = log.New(w, "", log.LstdFlags)
}

var validate = validator.New()

// Validate checks the field ranges
func (h *HyperParameters) Validate() error {
	return validate.Struct(h)
}
