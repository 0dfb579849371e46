// Package bit contains the bit level helpers shared by the encoder, the
// syndrome engine and the framing layer.
package bit

type Bit byte

func (b *Bit) Flip() {
	(*b) ^= 0x01
}

// Bits is an unpacked bit vector, most significant bit first.
type Bits []Bit

func toBits(v uint64, width int) Bits {
	var o = make(Bits, width)
	for i := 0; i < width; i++ {
		if v&(1<<uint(width-1-i)) != 0 {
			o[i] = 1
		}
	}
	return o
}

// FromUint8 unpacks a data byte, bit 7 first.
func FromUint8(v uint8) Bits {
	return toBits(uint64(v), 8)
}

// FromUint16 unpacks a codeword, bit 15 first.
func FromUint16(v uint16) Bits {
	return toBits(uint64(v), 16)
}

// Uint16 packs up to the first 16 bits back into an integer.
func (bits Bits) Uint16() uint16 {
	var v uint16
	for i := 0; i < len(bits) && i < 16; i++ {
		v = v<<1 | uint16(bits[i]&0x01)
	}
	return v
}

func (bits Bits) String() string {
	var s = make([]byte, len(bits))
	for i, b := range bits {
		if b == 0x01 {
			s[i] = '1'
		} else {
			s[i] = '0'
		}
	}
	return string(s)
}
