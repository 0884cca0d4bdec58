package mem

// SliceForAppend extends in by n bytes, reallocating only if in lacks the capacity. It returns the extended slice and
// the n-byte tail the caller should write into.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}
