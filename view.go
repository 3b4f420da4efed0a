package bigint

import "unsafe"

// wordsView reinterprets limb storage as a word slice without copying. Limb is
// a defined type over Word with identical size and alignment, so the
// reinterpretation preserves layout. This is the only unsafe site in the
// package; the width types expose it through their Words accessor.
func wordsView(x []Limb) []Word {
	if len(x) == 0 {
		return nil
	}
	return unsafe.Slice((*Word)(unsafe.Pointer(&x[0])), len(x))
}
