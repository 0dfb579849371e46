package bit

import "math/bits"

// Parity16 reduces x to a single bit by XOR-folding all of its set bits.
func Parity16(x uint16) Bit {
	return Bit(bits.OnesCount16(x) & 1)
}

// Parity8 is Parity16 for a single byte.
func Parity8(x uint8) Bit {
	return Bit(bits.OnesCount8(x) & 1)
}

// Weight16 returns the number of set bits in x.
func Weight16(x uint16) int {
	return bits.OnesCount16(x)
}

// Distance returns the Hamming distance between a and b.
func Distance(a, b uint32) int {
	return bits.OnesCount32(a ^ b)
}
