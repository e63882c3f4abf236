package skipset

import "time"

const defaultSeed = uint64(0xdeadbeefcafebabe)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// rng is a xorshift64* generator owned by one set and advanced once per
// coin flip.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = newRandomSeed()
	}
	return &rng{state: seed}
}

func (r *rng) nextRandom64() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 2685821657736338717
}

// flip is a fair coin; true is heads.
func (r *rng) flip() bool {
	return r.nextRandom64()>>63 == 1
}

// randomHeight draws a height in [1, bound]: starting at 1, heads stops,
// tails climbs one level. Reaching bound stops without a flip.
func (r *rng) randomHeight(bound int) int {
	height := 1
	for height < bound {
		if r.flip() {
			return height
		}
		height++
	}
	return height
}
