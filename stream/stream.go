// Package stream protects a byte stream with the (16, 8) code: every data
// byte travels as one big endian codeword.
package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/pd0mz/go-qc16/fec"
)

// CodewordSize is the number of bytes on the wire per data byte.
const CodewordSize = 2

var ErrShortCodeword = errors.New("stream: truncated codeword")

// Stats counts what the decoder saw.
type Stats struct {
	Codewords     uint64 // codewords decoded
	Corrected     uint64 // nonzero syndrome, correction applied
	Uncorrectable uint64 // nonzero syndrome without a table entry
}

func (s *Stats) Add(o Stats) {
	s.Codewords += o.Codewords
	s.Corrected += o.Corrected
	s.Uncorrectable += o.Uncorrectable
}

// decode corrects a single codeword and accounts for it.
func (s *Stats) decode(codeword uint16) uint8 {
	s.Codewords++
	n, ok := fec.QC16_8_Correct(&codeword)
	switch {
	case !ok:
		s.Uncorrectable++
	case n > 0:
		s.Corrected++
	}
	return uint8(codeword)
}

// EncodeBytes encodes src into dst, which must hold CodewordSize*len(src)
// bytes. It returns the number of bytes written to dst.
func EncodeBytes(dst, src []byte) int {
	for i, b := range src {
		binary.BigEndian.PutUint16(dst[i*CodewordSize:], fec.QC16_8_Encode(b))
	}
	return len(src) * CodewordSize
}

// DecodeBytes decodes the codewords in src into dst.
func DecodeBytes(dst, src []byte) (Stats, error) {
	var stats Stats
	if len(src)%CodewordSize != 0 {
		return stats, ErrShortCodeword
	}
	if len(dst) < len(src)/CodewordSize {
		return stats, fmt.Errorf("stream: destination holds %d bytes, need %d", len(dst), len(src)/CodewordSize)
	}
	for i := 0; i < len(src)/CodewordSize; i++ {
		dst[i] = stats.decode(binary.BigEndian.Uint16(src[i*CodewordSize:]))
	}
	return stats, nil
}

// Writer encodes everything written to it onto the underlying writer.
type Writer struct {
	w   io.Writer
	buf []byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes p. The returned count is in data bytes; on a short write it
// counts the codewords that made it out completely.
func (w *Writer) Write(p []byte) (int, error) {
	if need := len(p) * CodewordSize; cap(w.buf) < need {
		w.buf = make([]byte, need)
	}
	n := EncodeBytes(w.buf[:len(p)*CodewordSize], p)
	m, err := w.w.Write(w.buf[:n])
	if err == nil && m < n {
		err = io.ErrShortWrite
	}
	return m / CodewordSize, err
}

// Reader decodes codewords read from the underlying reader.
type Reader struct {
	r       io.Reader
	buf     []byte
	odd     []byte
	stats   Stats
	Metrics *Metrics
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, odd: make([]byte, 0, 1)}
}

// Stats returns the totals decoded so far.
func (r *Reader) Stats() Stats {
	return r.stats
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	need := len(p) * CodewordSize
	if cap(r.buf) < need {
		r.buf = make([]byte, need)
	}
	buf := r.buf[:need]

	n := copy(buf, r.odd)
	r.odd = r.odd[:0]
	var err error
	for n < CodewordSize && err == nil {
		var m int
		m, err = r.r.Read(buf[n:])
		n += m
	}
	if n%CodewordSize == 1 {
		r.odd = append(r.odd, buf[n-1])
		n--
	}

	stats, _ := DecodeBytes(p, buf[:n])
	r.stats.Add(stats)
	r.Metrics.Observe(stats)

	if err == io.EOF && len(r.odd) > 0 {
		err = ErrShortCodeword
	}
	return n / CodewordSize, err
}
