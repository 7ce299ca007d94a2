// Package tlg5 implements the TLG5 decoder and encoder: per-channel LZSS
// plane compression with row/column delta prediction.
package tlg5

import (
	"bytes"

	"github.com/tlgimage/tlg/internal/bytestream"
	"github.com/tlgimage/tlg/internal/codecerr"
)

// Magic is the 11-byte TLG5 file signature.
var Magic = []byte("TLG5.0\x00raw\x1A")

// Header is the fixed-size TLG5 frame header that follows Magic.
type Header struct {
	ChannelCount uint8
	Width        uint32
	Height       uint32
	BlockHeight  uint32
}

// BlockCount returns the number of block-rows (bands) covering Height.
func (h Header) BlockCount() uint32 {
	return (h.Height-1)/h.BlockHeight + 1
}

func readHeader(s *bytestream.Stream) (Header, error) {
	var h Header
	var err error
	if h.ChannelCount, err = s.ReadU8(); err != nil {
		return h, err
	}
	if h.Width, err = s.ReadU32LE(); err != nil {
		return h, err
	}
	if h.Height, err = s.ReadU32LE(); err != nil {
		return h, err
	}
	if h.BlockHeight, err = s.ReadU32LE(); err != nil {
		return h, err
	}
	if h.ChannelCount != 3 && h.ChannelCount != 4 {
		return h, codecerr.ErrUnsupportedChannelCount
	}
	if h.Width == 0 || h.Height == 0 || h.BlockHeight == 0 {
		return h, codecerr.ErrCorrupt
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

func writeHeader(s *bytestream.Stream, h Header) {
	s.WriteU8(h.ChannelCount)
	s.WriteU32LE(h.Width)
	s.WriteU32LE(h.Height)
	s.WriteU32LE(h.BlockHeight)
}
