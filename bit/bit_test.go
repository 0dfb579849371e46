package bit

import "testing"

func TestBit(t *testing.T) {
	var tests = []struct {
		Test uint8
		Want Bits
	}{
		{0x2a, Bits{0, 0, 1, 0, 1, 0, 1, 0}},
		{0xbe, Bits{1, 0, 1, 1, 1, 1, 1, 0}},
	}

	for _, test := range tests {
		got := FromUint8(test.Test)
		if len(got) != len(test.Want) {
			t.Fatalf("expected length %d, got %d [%s]", len(test.Want), len(got), got.String())
		}
		for i, b := range got {
			if b != test.Want[i] {
				t.Fatalf("bit %d is off: %v != %v", i, got, test.Want)
			}
		}
	}
}

func TestFlip(t *testing.T) {
	b := FromUint16(0xffaa)
	b[2].Flip()
	if got := b.Uint16(); got != 0xdfaa {
		t.Fatalf("flip bit 13 of 0xffaa: %#04x", got)
	}
	b[2].Flip()
	if got := b.Uint16(); got != 0xffaa {
		t.Fatalf("flip back: %#04x", got)
	}
}

func TestUint16(t *testing.T) {
	for _, v := range []uint16{0x0000, 0x0001, 0x8000, 0xffaa, 0x1234, 0xffff} {
		b := FromUint16(v)
		if len(b) != 16 {
			t.Fatalf("expected 16 bits, got %d", len(b))
		}
		if got := b.Uint16(); got != v {
			t.Fatalf("%#04x unpacked as %s packed back to %#04x", v, b, got)
		}
	}
	if s := FromUint8(0xaa).String(); s != "10101010" {
		t.Fatalf("0xaa: got %q", s)
	}
}

func TestParity(t *testing.T) {
	for x := 0; x < 0x10000; x++ {
		var want Bit
		for v := x; v > 0; v >>= 1 {
			want ^= Bit(v & 1)
		}
		if got := Parity16(uint16(x)); got != want {
			t.Fatalf("parity of %#04x: %d != %d", x, got, want)
		}
		if x < 0x100 && Parity8(uint8(x)) != want {
			t.Fatalf("parity8 of %#02x disagrees with parity16", x)
		}
	}
}

func TestDistance(t *testing.T) {
	var tests = []struct {
		A, B uint32
		Want int
	}{
		{9, 14, 3},
		{0, 0, 0},
		{0xffffff, 0, 24},
		{0x0159a7, 0x0159a6, 1},
	}
	for _, test := range tests {
		if got := Distance(test.A, test.B); got != test.Want {
			t.Fatalf("distance(%#x, %#x) = %d, want %d", test.A, test.B, got, test.Want)
		}
	}
	if Weight16(0xffaa) != 12 {
		t.Fatalf("weight of 0xffaa: %d", Weight16(0xffaa))
	}
}
