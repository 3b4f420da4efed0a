package bigint

import "github.com/bits-and-blooms/bitset"

// toBitSet copies x into a bitset.BitSet, least significant bit first. The
// copy keeps the set independent of the integer's storage. Variable-time
// consumers only; see the BitSet accessor docs on the width types.
func toBitSet(x []Limb) *bitset.BitSet {
	w := make([]uint64, len(x))
	for i := range x {
		w[i] = uint64(x[i])
	}
	return bitset.From(w)
}
