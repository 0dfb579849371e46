package fec

import (
	"fmt"

	"github.com/pd0mz/go-qc16/bit"
)

// Syndrome computes the 8 bit syndrome of word against a 8x16 parity check
// matrix, row 0 in the most significant bit.
func Syndrome(h [8]uint16, word uint16) uint8 {
	var syndrome uint8
	for i := 0; i < 8; i++ {
		syndrome = syndrome<<1 | uint8(bit.Parity16(word&h[i]))
	}
	return syndrome
}

// combinations calls fn with every 16 bit mask of the given weight. Bit
// positions are numbered from the most significant bit and visited in
// lexicographic order.
func combinations(weight int, fn func(mask uint16)) {
	var walk func(start, left int, mask uint16)
	walk = func(start, left int, mask uint16) {
		if left == 0 {
			fn(mask)
			return
		}
		for p := start; p <= 16-left; p++ {
			walk(p+1, left-1, mask|1<<uint(15-p))
		}
	}
	walk(0, weight, 0)
}

// BuildCorrectionTable derives a syndrome decoding table for h. Error
// patterns are enumerated by increasing weight up to maxWeight, and the first
// pattern to reach a syndrome becomes its coset leader. Syndromes that no
// pattern of at most maxWeight bits reaches map to zero.
func BuildCorrectionTable(h [8]uint16, maxWeight int) [256]uint16 {
	var table [256]uint16
	for w := 1; w <= maxWeight && w <= 16; w++ {
		combinations(w, func(mask uint16) {
			s := Syndrome(h, mask)
			if s != 0 && table[s] == 0 {
				table[s] = mask
			}
		})
	}
	return table
}

// CheckCode verifies that a parity matrix, its check matrix and a correction
// table describe one consistent systematic code.
func CheckCode(p [8]uint8, h [8]uint16, table *[256]uint16) error {
	for i := 0; i < 8; i++ {
		if h[i]&0xff00 != 1<<uint(15-i) {
			return fmt.Errorf("fec: H row %d: identity block is %#04x", i, h[i]>>8)
		}
		var column uint8
		for j := 0; j < 8; j++ {
			column = column<<1 | (p[j]>>uint(7-i))&0x01
		}
		if uint8(h[i]) != column {
			return fmt.Errorf("fec: H row %d: %#02x is not parity matrix column %#02x", i, uint8(h[i]), column)
		}
	}

	for d := 0; d < 256; d++ {
		word := encode(p, uint8(d))
		if s := Syndrome(h, word); s != 0 {
			return fmt.Errorf("fec: codeword %#04x for %#02x has syndrome %#02x", word, d, s)
		}
	}

	if table == nil {
		return nil
	}
	if table[0] != 0 {
		return fmt.Errorf("fec: table entry for syndrome 0 is %#04x", table[0])
	}
	for pos := 0; pos < 16; pos++ {
		mask := uint16(1) << uint(pos)
		if s := Syndrome(h, mask); table[s] != mask {
			return fmt.Errorf("fec: bit %d: syndrome %#02x maps to %#04x", pos, s, table[s])
		}
	}
	return nil
}

// MinimumDistance returns the smallest weight of a nonzero codeword produced
// by encode, which for a linear code is its minimum distance.
func MinimumDistance(encode func(uint8) uint16) int {
	min := 16
	for d := 1; d < 256; d++ {
		if w := bit.Weight16(encode(uint8(d))); w < min {
			min = w
		}
	}
	return min
}

// encode computes parity bit i as the modulo 2 sum of the data bits selected
// by row i of p, and places it in bit 15-i above the unchanged data byte.
func encode(p [8]uint8, data uint8) uint16 {
	var word uint16
	for i := 0; i < 8; i++ {
		word |= uint16(bit.Parity8(data&p[i])) << uint(15-i)
	}
	return word | uint16(data)
}
