package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPipeRoundTrip(t *testing.T) {
	src := bytes.Repeat([]byte("the quick brown fox "), 500)

	for _, framed := range []bool{false, true} {
		var wire, back bytes.Buffer
		require.NoError(t, encode(bytes.NewReader(src), &wire, framed))
		if !framed {
			require.Equal(t, 2*len(src), wire.Len())
		}

		// Flip one bit every 7 bytes; no codeword takes more than one hit.
		raw := wire.Bytes()
		start := 0
		if framed {
			start = 3
		}
		for i := start; i < len(raw); i += 7 {
			raw[i] ^= 0x04
		}

		require.NoError(t, decode(&wire, &back, framed, nil))
		require.Equal(t, src, back.Bytes(), "framed=%t", framed)
	}
}
