package tlg6

import (
	"bytes"
	"encoding/binary"

	"github.com/tlgimage/tlg/internal/bytestream"
	"github.com/tlgimage/tlg/internal/codecerr"
	"github.com/tlgimage/tlg/internal/pixel"
	"github.com/tlgimage/tlg/internal/pool"
)

// Decode parses a TLG6 stream into a width, height and row-major BGRA
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

	filterTypes, err := readFilterTypes(s, h)
	if err != nil {
		return 0, 0, nil, err
	}

	pixelCount64, err := codecerr.CheckedMul(uint64(h.Width), uint64(h.Height))
	if err != nil {
		return 0, 0, nil, err
	}
	image := make([]pixel.Pixel, pixelCount64)
	blockData := make([]byte, int(h.Width)*hBlockSize*4)
	zeroLine := make([]pixel.Pixel, h.Width)
	prevLine := zeroLine

	mainCount := int(h.Width) / wBlockSize

	for y := uint32(0); y < h.Height; y += hBlockSize {
		ylim := y + hBlockSize
		if ylim > h.Height {
			ylim = h.Height
		}
		pixelCount := int(ylim-y) * int(h.Width)

		for c := uint8(0); c < h.ChannelCount; c++ {
			bitSize, err := s.ReadU32LE()
			if err != nil {
				return 0, 0, nil, err
			}
			method := (bitSize >> 30) & 3
			if method != 0 {
				return 0, 0, nil, codecerr.ErrUnsupportedMethod
			}
			byteSize := int((bitSize&0x3FFFFFFF)+7) / 8

			payload, err := s.ReadExact(byteSize)
			if err != nil {
				return 0, 0, nil, err
			}
			// Four extra tail bytes absorb the Golomb decoder's 32-bit
			// lookahead peeks without ever reading past this slice.
			bitPool := pool.Get(byteSize + 4)
			copy(bitPool, payload)
			clear(bitPool[byteSize:])

			decodeGolombValues(blockData[c:], pixelCount, bitPool)
			pool.Put(bitPool)
		}

		ftRowOffset := int(y/hBlockSize) * h.XBlockCount
		skipBytes := int(ylim-y) * wBlockSize

		for yy := y; yy < ylim; yy++ {
			currentLine := image[uint64(yy)*uint64(h.Width) : uint64(yy)*uint64(h.Width)+uint64(h.Width)]
			dir := int(yy&1) ^ 1
			oddSkip := int(ylim-yy-1) - int(yy-y)

			if mainCount > 0 {
				start := wBlockSize
				if int(h.Width) < wBlockSize {
					start = int(h.Width)
				}
				start *= int(yy - y)
				decodeLine(prevLine, currentLine, 0, mainCount, filterTypes, ftRowOffset, skipBytes, blockData, start, oddSkip, dir, h)
			}

			if mainCount != h.XBlockCount {
				ww := int(h.Width) - mainCount*wBlockSize
				if ww > wBlockSize {
					ww = wBlockSize
				}
				start := ww * int(yy-y)
				decodeLine(prevLine, currentLine, mainCount, h.XBlockCount, filterTypes, ftRowOffset, skipBytes, blockData, start, oddSkip, dir, h)
			}

			prevLine = currentLine
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
