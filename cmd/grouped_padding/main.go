package main

import "flag"
import "fmt"
import "os"
import rand "math/rand/v2"

import "github.com/neurlang/batching/datasets"
import "github.com/neurlang/batching/datasets/synthetic"
import "github.com/neurlang/batching/loader"
import "github.com/neurlang/batching/sampler"

func main() {
	size := flag.String("size", "medium", "synthetic dataset size: small, medium or big")
	batch := flag.Int("batch", 32, "batch size")
	mult := flag.Int("mult", 0, "mega-batch multiplier, 0 for the default")
	block := flag.Int("block", 0, "truncate sequences to this length, 0 to disable")
	seed := flag.Uint64("seed", 1, "seed of the dataset and the sampler")
	threads := flag.Int("threads", 0, "collating goroutines, 0 for one per logical core")
	logfile := flag.String("log", "", "append pass statistics to this file")
	flag.Parse()

	var set *datasets.Dataslice
	switch *size {
	case "small":
		set = synthetic.Small(*seed)
	case "medium":
		set = synthetic.Medium(*seed)
	case "big":
		set = synthetic.Big(*seed)
	default:
		println("Unknown size:", *size)
		os.Exit(2)
	}

	var h = loader.HyperParameters{
		BatchSize:     *batch,
		MegaBatchMult: *mult,
		BlockSize:     *block,
		Threads:       *threads,
		Seed:          *seed,
		Seeded:        true,
	}
	if *logfile != "" {
		if err := h.SetLogger(*logfile); err != nil {
			println(err.Error())
			os.Exit(1)
		}
	}

	l, err := loader.New(set, h)
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	fmt.Printf("%d examples, %d batches of %d, mega-batch multiplier %d\n",
		set.Len(), l.Len(), *batch, l.Sampler().MegaBatchMult())

	grouped := l.Epoch()
	gp, gt := grouped.Padding()
	fmt.Printf("[grouped] %d/%d padding cells (%.2f%%)\n", gp, gt, loader.Ratio(gp, gt))

	// random order baseline
	rng := rand.New(rand.NewPCG(*seed, ^*seed))
	random := l.Ordered(sampler.Split(rng.Perm(set.Len()), *batch))
	rp, rt := random.Padding()
	fmt.Printf("[random]  %d/%d padding cells (%.2f%%)\n", rp, rt, loader.Ratio(rp, rt))

	_, longest := datasets.MaxLength(set)
	first := grouped.Indices[0][0]
	fmt.Printf("first example length %d, longest %d\n", set.LengthAt(first), longest)
	if set.LengthAt(first) != longest {
		println("Longest example is not first")
		os.Exit(1)
	}
}
