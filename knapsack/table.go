package knapsack

import (
	"math"
	"math/bits"
)

// wordBits is the number of decision bits stored per bitset word.
const wordBits = bits.UintSize

// bitset is a fixed-size packed boolean array backing the decision table.
type bitset []uint

// newBitset returns a zeroed bitset able to hold n bits.
//
// Complexity: O(n/wordBits).
func newBitset(n int) bitset {
	return make(bitset, (n+wordBits-1)/wordBits)
}

// set marks bit k.
func (b bitset) set(k int) {
	b[k/wordBits] |= 1 << (uint(k) % wordBits)
}

// test reports whether bit k is set.
func (b bitset) test(k int) bool {
	return b[k/wordBits]&(1<<(uint(k)%wordBits)) != 0
}

// tableBytes returns the memory held by a table of the given shape:
// int64 DP cells plus the packed decision words.
func tableBytes(cells int) int {
	return cells*8 + ((cells+wordBits-1)/wordBits)*(wordBits/8)
}

// TableBytes reports how many bytes Compute allocates for n items and the
// given capacity, or -1 if the shape overflows int.
//
// Complexity: O(1).
func TableBytes(n, capacity int) int {
	cells, ok := cellCount(n, capacity)
	if !ok || cells > (math.MaxInt-wordBits)/9 {
		return -1
	}

	return tableBytes(cells)
}
