// core/sieve/bitset.go
package sieve

import "math/bits"

// bitset is the packed flag table backing a Sieve: bit i set means
// "index i is currently believed prime".
type bitset struct {
	n     int
	words []uint64
}

func newBitset(n int) *bitset {
	return &bitset{n: n, words: make([]uint64, (n+63)/64)}
}

// setAll sets every tracked bit. Bits past n in the last word stay
// zero so count stays exact.
func (b *bitset) setAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	if r := b.n % 64; r != 0 {
		b.words[len(b.words)-1] = 1<<r - 1
	}
}

func (b *bitset) clear(i int) {
	b.words[i/64] &^= 1 << (i % 64)
}

func (b *bitset) get(i int) bool {
	return (b.words[i/64]>>(i%64))&1 != 0
}

// count returns the number of set bits.
func (b *bitset) count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}
