// Package frame carries packets over a noisy byte channel. A frame is a raw
// 24 bit sync marker followed by a body protected by the (16, 8) code:
//
//	marker (3 bytes) | FEC(length uint16 | payload | CRC-16/CCITT)
//
// The CRC covers length and payload and flags residual errors the code
// could not correct.
package frame

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/howeyc/crc16"
	"github.com/op/go-logging"
	"github.com/pd0mz/go-qc16/marker"
	"github.com/pd0mz/go-qc16/stream"
)

var log = logging.MustGetLogger("qc16/frame")

const (
	// MaxPayload is the largest payload a single frame carries.
	MaxPayload = 4096

	markerSize = marker.Width / 8
	headerSize = 2
	crcSize    = 2
)

var (
	ErrTooLarge = errors.New("frame: payload too large")
	ErrChecksum = errors.New("frame: checksum mismatch")
)

// Size returns the number of bytes a frame with n payload bytes occupies.
func Size(n int) int {
	return markerSize + (headerSize+n+crcSize)*stream.CodewordSize
}

// Append encodes payload as a frame behind marker m and appends it to dst.
func Append(dst []byte, m uint32, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return dst, ErrTooLarge
	}

	body := make([]byte, headerSize+len(payload)+crcSize)
	binary.BigEndian.PutUint16(body, uint16(len(payload)))
	copy(body[headerSize:], payload)
	binary.BigEndian.PutUint16(body[headerSize+len(payload):], crc16.ChecksumCCITT(body[:headerSize+len(payload)]))

	out := make([]byte, Size(len(payload)))
	out[0], out[1], out[2] = byte(m>>16), byte(m>>8), byte(m)
	stream.EncodeBytes(out[markerSize:], body)
	return append(dst, out...), nil
}

// Marshal encodes payload as a frame behind the default marker.
func Marshal(payload []byte) ([]byte, error) {
	return Append(nil, marker.Default, payload)
}

// Writer writes each Write call as one or more frames.
type Writer struct {
	w      io.Writer
	buf    []byte
	Marker uint32
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, Marker: marker.Default}
}

// Write splits p into frames of at most MaxPayload bytes.
func (w *Writer) Write(p []byte) (int, error) {
	var written int
	for len(p) > 0 {
		n := len(p)
		if n > MaxPayload {
			n = MaxPayload
		}
		var err error
		if w.buf, err = Append(w.buf[:0], w.Marker, p[:n]); err != nil {
			return written, err
		}
		if _, err = w.w.Write(w.buf); err != nil {
			return written, err
		}
		written += n
		p = p[n:]
	}
	return written, nil
}
