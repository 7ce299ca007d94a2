// Package bytestream implements a small random-access cursor over an
// in-memory byte buffer, used by the TLG codecs to read and write the
// little-endian primitives that make up the wire formats.
package bytestream

import (
	"encoding/binary"

	"github.com/tlgimage/tlg/internal/codecerr"
)

// ErrUnexpectedEOF is returned when a read would advance the cursor past
// the end of the buffer. The cursor position is left unchanged on failure.
// It is the shared codecerr sentinel, so the codecs' callers can match it.
var ErrUnexpectedEOF = codecerr.ErrUnexpectedEOF

// Stream is a cursor over a byte buffer. A Stream created with New borrows
// the caller's slice and never grows it; a Stream created with NewWriter
// owns its buffer and grows it on demand.
type Stream struct {
	buf   []byte
	pos   int
	owned bool
}

// New returns a read cursor over buf. The slice is borrowed, not copied;
// writes are not permitted on a borrowed stream.
func New(buf []byte) *Stream {
	return &Stream{buf: buf}
}

// NewWriter returns an empty, growable cursor suitable for encoding.
func NewWriter() *Stream {
	return &Stream{buf: make([]byte, 0), owned: true}
}

// Len returns the total size of the underlying buffer.
func (s *Stream) Len() int { return len(s.buf) }

// Pos returns the current cursor position.
func (s *Stream) Pos() int { return s.pos }

// SetPos repositions the cursor. It does not validate bounds; callers use
// it only to seek to offsets already known to be valid (e.g. backpatching).
func (s *Stream) SetPos(pos int) { s.pos = pos }

// Bytes returns the underlying buffer in its entirety.
func (s *Stream) Bytes() []byte { return s.buf }

// ReadExact returns the next n bytes without copying and advances the
// cursor. On failure the cursor is left unchanged.
func (s *Stream) ReadExact(n int) ([]byte, error) {
	if s.pos+n > len(s.buf) || n < 0 {
		return nil, ErrUnexpectedEOF
	}
	b := s.buf[s.pos : s.pos+n]
	s.pos += n
	return b, nil
}

// ReadU8 reads a single byte.
func (s *Stream) ReadU8() (uint8, error) {
	b, err := s.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU32LE reads a little-endian uint32.
func (s *Stream) ReadU32LE() (uint32, error) {
	b, err := s.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ensure grows the owned buffer so that pos+n bytes are addressable.
func (s *Stream) ensure(n int) {
	need := s.pos + n
	if need <= len(s.buf) {
		return
	}
	grown := make([]byte, need)
	copy(grown, s.buf)
	s.buf = grown
}

// WriteData appends data at the cursor, growing the buffer as needed.
// The stream must be owned (created via NewWriter).
func (s *Stream) WriteData(data []byte) {
	s.ensure(len(data))
	copy(s.buf[s.pos:], data)
	s.pos += len(data)
}

// WriteU8 writes a single byte.
func (s *Stream) WriteU8(v uint8) {
	s.ensure(1)
	s.buf[s.pos] = v
	s.pos++
}

// WriteU32LE writes a little-endian uint32.
func (s *Stream) WriteU32LE(v uint32) {
	s.ensure(4)
	binary.LittleEndian.PutUint32(s.buf[s.pos:], v)
	s.pos += 4
}
