package core

import "math/rand"

// MaxPreview is the longest lookahead the bag can guarantee.
const MaxPreview = KindCount

// Bag is a double 7-bag randomizer. slots[0:7] is the active permutation and
// slots[7:14] the next one, so up to 7 upcoming kinds are always known.
type Bag struct {
	rng    *rand.Rand
	slots  [2 * KindCount]Kind
	cursor int
}

// NewBag creates a bag with two freshly shuffled permutations.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{rng: rng}
	b.shuffleInto(b.slots[:KindCount])
	b.shuffleInto(b.slots[KindCount:])
	return b
}

// shuffleInto writes a Fisher-Yates permutation of all kinds into dst.
func (b *Bag) shuffleInto(dst []Kind) {
	copy(dst, AllKinds[:])
	for i := len(dst) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		dst[i], dst[j] = dst[j], dst[i]
	}
}

// Next removes and returns the next kind.
func (b *Bag) Next() Kind {
	k := b.slots[b.cursor]
	b.cursor++
	if b.cursor == KindCount {
		copy(b.slots[:KindCount], b.slots[KindCount:])
		b.shuffleInto(b.slots[KindCount:])
		b.cursor = 0
	}
	return k
}

// Peek returns the next n kinds without consuming them. n is clamped to
// [0, MaxPreview].
func (b *Bag) Peek(n int) []Kind {
	if n < 0 {
		n = 0
	}
	if n > MaxPreview {
		n = MaxPreview
	}
	out := make([]Kind, n)
	copy(out, b.slots[b.cursor:b.cursor+n])
	return out
}
