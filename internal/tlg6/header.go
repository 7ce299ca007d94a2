// Package tlg6 implements the TLG6 decoder: a Golomb-coded residual
// stream over a 16-way color transform and a 2-way spatial predictor,
// traversed in 8x8 blocks with an alternating, zig-zag direction.
package tlg6

import (
	"bytes"

	"github.com/tlgimage/tlg/internal/bytestream"
	"github.com/tlgimage/tlg/internal/codecerr"
)

// Magic is the 11-byte TLG6 file signature.
var Magic = []byte("TLG6.0\x00raw\x1A")

// Header is the fixed-size TLG6 frame header that follows Magic.
type Header struct {
	ChannelCount        uint8
	DataFlags           uint8
	ColorType           uint8
	ExternalGolombTable uint8
	Width               uint32
	Height              uint32
	MaxBitSize          uint32
	XBlockCount         int
	YBlockCount         int
}

func readHeader(s *bytestream.Stream) (Header, error) {
	var h Header
	var err error
	if h.ChannelCount, err = s.ReadU8(); err != nil {
		return h, err
	}
	if h.DataFlags, err = s.ReadU8(); err != nil {
		return h, err
	}
	if h.ColorType, err = s.ReadU8(); err != nil {
		return h, err
	}
	if h.ExternalGolombTable, err = s.ReadU8(); err != nil {
		return h, err
	}
	if h.Width, err = s.ReadU32LE(); err != nil {
		return h, err
	}
	if h.Height, err = s.ReadU32LE(); err != nil {
		return h, err
	}
	if h.MaxBitSize, err = s.ReadU32LE(); err != nil {
		return h, err
	}
	if h.ChannelCount != 3 && h.ChannelCount != 4 {
		return h, codecerr.ErrUnsupportedChannelCount
	}
	if h.Width == 0 || h.Height == 0 {
		return h, codecerr.ErrCorrupt
	}
	h.XBlockCount = int((h.Width-1)/wBlockSize) + 1
	h.YBlockCount = int((h.Height-1)/hBlockSize) + 1
	if _, err := codecerr.CheckedMul(uint64(h.XBlockCount), uint64(h.YBlockCount)); err != nil {
		return h, err
	}
	if _, err := codecerr.CheckedMul(uint64(h.Width), uint64(h.Height), 4); err != nil {
		return h, err
	}
	return h, nil
}

// Config reads just the magic and header, returning the frame's
// dimensions without decoding any pixel data.
func Config(input []byte) (width, height uint32, err error) {
	if len(input) < len(Magic) || !bytes.Equal(input[:len(Magic)], Magic) {
		return 0, 0, codecerr.ErrInvalidMagic
	}
	s := bytestream.New(input)
	if _, err := s.ReadExact(len(Magic)); err != nil {
		return 0, 0, err
	}
	h, err := readHeader(s)
	if err != nil {
		return 0, 0, err
	}
	return h.Width, h.Height, nil
}
