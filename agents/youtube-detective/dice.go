package youtubedetective

import (
	"math/rand/v2"
	"sync"
)

// dice serialises access to a *rand.Rand shared by concurrent handlers.
type dice struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newDice(rng *rand.Rand) *dice {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &dice{rng: rng}
}

func (d *dice) IntN(n int) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.IntN(n)
}

func (d *dice) pick(lines []string) string {
	return lines[d.IntN(len(lines))]
}

// reportNumber returns a cosmetic case number in [1000, 9999].
func (d *dice) reportNumber() int {
	return 1000 + d.IntN(9000)
}
