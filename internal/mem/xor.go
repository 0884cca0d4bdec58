package mem

// XORByte sets dst[i] = src[i] ^ b for each i.
func XORByte(dst, src []byte, b byte) {
	for i, s := range src[:len(dst)] {
		dst[i] = s ^ b
	}
}
