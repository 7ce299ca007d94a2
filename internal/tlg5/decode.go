package tlg5

import (
	"bytes"
	"encoding/binary"

	"github.com/tlgimage/tlg/internal/bytestream"
	"github.com/tlgimage/tlg/internal/codecerr"
	"github.com/tlgimage/tlg/internal/lzss"
	"github.com/tlgimage/tlg/internal/pixel"
)

// readBlock reads one (channel, band) block: a one-byte mode marker, a
// u32 size, and its payload. mark == 0 means the payload is LZSS-
// compressed against dict/dictPos (which persist across the whole
// frame); any other mark means the payload is the plane verbatim, in
// which case its declared size must equal the expected plane size.
func readBlock(s *bytestream.Stream, planeSize int, dict *[lzss.DictSize]byte, dictPos *int) ([]byte, error) {
	mark, err := s.ReadU8()
	if err != nil {
		return nil, err
	}
	compSize, err := s.ReadU32LE()
	if err != nil {
		return nil, err
	}

	if mark == 0 {
		comp, err := s.ReadExact(int(compSize))
		if err != nil {
			return nil, err
		}
		return lzss.Decompress(comp, planeSize, dict, dictPos), nil
	}

	if int(compSize) != planeSize {
		return nil, codecerr.ErrCorrupt
	}
	return s.ReadExact(planeSize)
}

// Decode parses a TLG5 stream into a width, height and row-major BGRA
// pixel buffer.
func Decode(input []byte) (width, height uint32, bgra []byte, err error) {
	if len(input) < len(Magic) || !bytes.Equal(input[:len(Magic)], Magic) {
		return 0, 0, nil, codecerr.ErrInvalidMagic
	}
	s := bytestream.New(input)
	if _, err := s.ReadExact(len(Magic)); err != nil {
		return 0, 0, nil, err
	}

	h, err := readHeader(s)
	if err != nil {
		return 0, 0, nil, err
	}

	// The per-band byte-size index is a seek hint only; the decoder
	// never needs it since blocks are read sequentially.
	if _, err := s.ReadExact(4 * int(h.BlockCount())); err != nil {
		return 0, 0, nil, err
	}

	pixelCount, err := codecerr.CheckedMul(uint64(h.Width), uint64(h.Height))
	if err != nil {
		return 0, 0, nil, err
	}
	image := make([]pixel.Pixel, pixelCount)
	planeSize64, err := codecerr.CheckedMul(uint64(h.Width), uint64(h.BlockHeight))
	if err != nil {
		return 0, 0, nil, err
	}
	planeSize := int(planeSize64)
	var dict [lzss.DictSize]byte
	dictPos := 0

	for y := uint32(0); y < h.Height; y += h.BlockHeight {
		var planes [4][]byte
		for c := uint8(0); c < h.ChannelCount; c++ {
			plane, err := readBlock(s, planeSize, &dict, &dictPos)
			if err != nil {
				return 0, 0, nil, err
			}
			planes[c] = plane
		}
		for c := h.ChannelCount; c < 4; c++ {
			planes[c] = make([]byte, planeSize)
		}
		if err := loadPixelBlockRow(image, h.Width, h.Height, planes, h, y); err != nil {
			return 0, 0, nil, err
		}
	}

	bgraSize, err := codecerr.CheckedMul(uint64(h.Width), uint64(h.Height), 4)
	if err != nil {
		return 0, 0, nil, err
	}
	bgra = make([]byte, bgraSize)
	for i, p := range image {
		binary.LittleEndian.PutUint32(bgra[i*4:], p.Pack())
	}
	return h.Width, h.Height, bgra, nil
}
