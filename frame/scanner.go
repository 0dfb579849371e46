package frame

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/howeyc/crc16"
	"github.com/pd0mz/go-qc16/marker"
	"github.com/pd0mz/go-qc16/stream"
)

// DefaultTolerance is the number of marker bits that may be in error.
const DefaultTolerance = 3

// Stats counts what a Scanner encountered.
type Stats struct {
	Frames    uint64 // frames delivered
	Checksum  uint64 // candidates rejected by the CRC
	Oversized uint64 // candidates announcing more than MaxPayload bytes
	Truncated uint64 // candidates cut short by the end of input
	Codewords stream.Stats
}

// Scanner hunts for frames in a byte stream. After a rejected candidate it
// resumes the hunt with the byte following the marker.
type Scanner struct {
	r         *bufio.Reader
	window    uint32
	filled    int
	payload   []byte
	err       error
	stats     Stats
	Marker    uint32
	Tolerance int
	Metrics   *stream.Metrics
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		r:         bufio.NewReaderSize(r, 2*Size(MaxPayload)),
		Marker:    marker.Default,
		Tolerance: DefaultTolerance,
	}
}

// Payload returns the payload of the last frame found by Scan. It stays
// valid until the next call to Scan.
func (s *Scanner) Payload() []byte { return s.payload }

// Err returns the first non-EOF read error.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) Stats() Stats { return s.stats }

// Scan advances to the next valid frame.
func (s *Scanner) Scan() bool {
	s.payload = nil
	for s.err == nil {
		b, err := s.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			return false
		}
		s.window = s.window<<8 | uint32(b)
		if s.filled < markerSize {
			s.filled++
		}
		if s.filled < markerSize || !marker.Match(s.window, s.Marker, marker.Width, s.Tolerance) {
			continue
		}

		payload, err := s.body()
		switch err {
		case nil:
			s.payload = payload
			s.window, s.filled = 0, 0
			s.stats.Frames++
			return true
		case ErrChecksum:
			s.stats.Checksum++
		case ErrTooLarge:
			s.stats.Oversized++
		case io.ErrUnexpectedEOF:
			s.stats.Truncated++
		default:
			s.err = err
			return false
		}
		log.Debugf("rejected frame candidate at marker %#06x: %v", s.window&0xffffff, err)
	}
	return false
}

// body decodes the frame following a marker. Input is only consumed when the
// frame is valid.
func (s *Scanner) body() ([]byte, error) {
	raw, err := s.peek(headerSize * stream.CodewordSize)
	if err != nil {
		return nil, err
	}
	var header [headerSize]byte
	if _, err = stream.DecodeBytes(header[:], raw); err != nil {
		return nil, err
	}
	n := int(binary.BigEndian.Uint16(header[:]))
	if n > MaxPayload {
		return nil, ErrTooLarge
	}

	size := (headerSize + n + crcSize) * stream.CodewordSize
	if raw, err = s.peek(size); err != nil {
		return nil, err
	}
	body := make([]byte, headerSize+n+crcSize)
	stats, err := stream.DecodeBytes(body, raw)
	if err != nil {
		return nil, err
	}
	if crc16.ChecksumCCITT(body[:headerSize+n]) != binary.BigEndian.Uint16(body[headerSize+n:]) {
		return nil, ErrChecksum
	}

	if _, err = s.r.Discard(size); err != nil {
		return nil, err
	}
	s.stats.Codewords.Add(stats)
	s.Metrics.Observe(stats)
	return body[headerSize : headerSize+n], nil
}

func (s *Scanner) peek(n int) ([]byte, error) {
	raw, err := s.r.Peek(n)
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	return raw, err
}
