package rgb

import (
	"math/rand/v2"
	"sync"
)

// Generator produces a new color on each call.
type Generator func() RGB

// Random returns a saturated color: one channel is 0, one is 255 and the
// third is uniform in [0, 255]. Which channel receives which value is a
// uniform shuffle over all six orderings.
func Random() RGB {
	return saturated(rand.IntN)
}

// NewGenerator returns a Generator backed by a seeded PCG source. It is safe
// for concurrent use and is intended for reproducible tests.
func NewGenerator(seed1, seed2 uint64) Generator {
	var (
		mu  sync.Mutex
		rng = rand.New(rand.NewPCG(seed1, seed2))
	)

	return func() RGB {
		mu.Lock()
		defer mu.Unlock()
		return saturated(rng.IntN)
	}
}

func saturated(intn func(int) int) RGB {
	ch := [3]uint8{0, 255, uint8(intn(256))}

	for i := len(ch) - 1; i > 0; i-- {
		j := intn(i + 1)
		ch[i], ch[j] = ch[j], ch[i]
	}

	return New(ch[0], ch[1], ch[2])
}
