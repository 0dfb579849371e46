package frame

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
	"testing/iotest"

	"github.com/pd0mz/go-qc16/marker"
	"github.com/pd0mz/go-qc16/stream"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	b, err := Marshal([]byte{0xaa})
	require.NoError(t, err)
	require.Len(t, b, Size(1))
	require.Equal(t, 3+5*2, len(b))
	require.Equal(t, []byte{0x01, 0x59, 0xa7}, b[:3])
	// Length 0x0001, then the payload byte 0xaa.
	require.Equal(t, []byte{0x00, 0x00, 0x74, 0x01, 0xff, 0xaa}, b[3:9])

	_, err = Marshal(make([]byte, MaxPayload+1))
	require.ErrorIs(t, err, ErrTooLarge)

	b, err = Marshal(nil)
	require.NoError(t, err)
	require.Len(t, b, Size(0))
}

// noisy flips up to tolerance marker bits and up to two bits in every
// codeword of the frame body.
func noisy(rng *rand.Rand, frame []byte, tolerance int) {
	for i := 0; i < tolerance; i++ {
		p := rng.Intn(marker.Width)
		frame[p/8] ^= 0x80 >> uint(p%8)
	}
	for i := 3; i+1 < len(frame); i += stream.CodewordSize {
		flips := rng.Intn(3)
		first := rng.Intn(16)
		for j := 0; j < flips; j++ {
			p := (first + j*5) % 16
			frame[i+p/8] ^= 0x80 >> uint(p%8)
		}
	}
}

func TestScannerNoisyChannel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var (
		wire     bytes.Buffer
		payloads [][]byte
	)
	for i := 0; i < 20; i++ {
		garbage := make([]byte, rng.Intn(40))
		rng.Read(garbage)
		wire.Write(garbage)

		payload := make([]byte, rng.Intn(300))
		rng.Read(payload)
		payloads = append(payloads, payload)

		b, err := Marshal(payload)
		require.NoError(t, err)
		noisy(rng, b, rng.Intn(DefaultTolerance+1))
		wire.Write(b)
	}

	s := NewScanner(iotest.HalfReader(&wire))
	s.Metrics = stream.NewMetrics(nil)
	var got [][]byte
	for s.Scan() {
		got = append(got, append([]byte(nil), s.Payload()...))
	}
	require.NoError(t, s.Err())
	require.Len(t, got, len(payloads))
	for i := range payloads {
		require.Equal(t, payloads[i], got[i], "frame %d", i)
	}
	stats := s.Stats()
	require.Equal(t, uint64(len(payloads)), stats.Frames)
	require.NotZero(t, stats.Codewords.Corrected)
	require.Zero(t, stats.Codewords.Uncorrectable)
}

func TestScannerChecksum(t *testing.T) {
	first, err := Marshal([]byte("first"))
	require.NoError(t, err)
	second, err := Marshal([]byte("second"))
	require.NoError(t, err)

	// Three bit error in the first payload codeword; the table declines it
	// and the CRC catches the damage.
	first[3+2*2+1] ^= 0x07

	s := NewScanner(bytes.NewReader(append(first, second...)))
	require.True(t, s.Scan())
	require.Equal(t, []byte("second"), s.Payload())
	require.False(t, s.Scan())
	require.NoError(t, s.Err())
	require.GreaterOrEqual(t, s.Stats().Checksum, uint64(1))
	require.Equal(t, uint64(1), s.Stats().Frames)
}

func TestScannerOversized(t *testing.T) {
	bogus := []byte{0x01, 0x59, 0xa7, 0, 0, 0, 0}
	stream.EncodeBytes(bogus[3:], []byte{0x13, 0x88}) // 5000 bytes
	good, err := Marshal([]byte("ok"))
	require.NoError(t, err)

	s := NewScanner(bytes.NewReader(append(bogus, good...)))
	require.True(t, s.Scan())
	require.Equal(t, []byte("ok"), s.Payload())
	require.Equal(t, uint64(1), s.Stats().Oversized)
}

func TestScannerTruncated(t *testing.T) {
	good, err := Marshal([]byte("complete"))
	require.NoError(t, err)
	cut, err := Marshal([]byte("incomplete"))
	require.NoError(t, err)

	s := NewScanner(bytes.NewReader(append(good, cut[:len(cut)-3]...)))
	require.True(t, s.Scan())
	require.Equal(t, []byte("complete"), s.Payload())
	require.False(t, s.Scan())
	require.NoError(t, s.Err())
	require.GreaterOrEqual(t, s.Stats().Truncated, uint64(1))
}

func TestScannerReadError(t *testing.T) {
	boom := errors.New("boom")
	s := NewScanner(iotest.ErrReader(boom))
	require.False(t, s.Scan())
	require.ErrorIs(t, s.Err(), boom)
}

func TestWriter(t *testing.T) {
	var wire bytes.Buffer
	w := NewWriter(&wire)
	big := make([]byte, MaxPayload+10)
	for i := range big {
		big[i] = byte(i * 7)
	}
	n, err := w.Write(big)
	require.NoError(t, err)
	require.Equal(t, len(big), n)
	require.Equal(t, Size(MaxPayload)+Size(10), wire.Len())

	s := NewScanner(&wire)
	var got []byte
	for s.Scan() {
		got = append(got, s.Payload()...)
	}
	require.NoError(t, s.Err())
	require.Equal(t, big, got)
	require.Equal(t, uint64(2), s.Stats().Frames)
}
