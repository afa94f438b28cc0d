package tetris

import "math/rand/v2"

// Bag deals piece kinds using the seven-bag system: each run of seven
// pieces is a shuffled permutation of all kinds, so droughts are
// bounded.
type Bag struct {
	r     *rand.Rand
	queue []Kind
}

// NewBag creates a bag drawing from the given source. A nil source
// falls back to the shared global generator; tests inject a seeded one
// for determinism.
func NewBag(r *rand.Rand) *Bag {
	return &Bag{r: r}
}

func (b *Bag) refill() {
	kinds := make([]Kind, 0, NumKinds)
	for k := Kind(0); k < NumKinds; k++ {
		kinds = append(kinds, k)
	}
	swap := func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] }
	if b.r != nil {
		b.r.Shuffle(len(kinds), swap)
	} else {
		rand.Shuffle(len(kinds), swap)
	}
	b.queue = kinds
}

// Next removes and returns the next kind.
func (b *Bag) Next() Kind {
	k := b.Peek()
	b.queue = b.queue[1:]
	return k
}

// Peek returns the next kind without removing it.
func (b *Bag) Peek() Kind {
	if len(b.queue) == 0 {
		b.refill()
	}
	return b.queue[0]
}

// Reset discards the remaining queue; the next draw starts a fresh
// shuffled bag.
func (b *Bag) Reset() {
	b.queue = nil
}
