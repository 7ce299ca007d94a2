package tlg5

import (
	"encoding/binary"

	"github.com/tlgimage/tlg/internal/bytestream"
	"github.com/tlgimage/tlg/internal/codecerr"
	"github.com/tlgimage/tlg/internal/pixel"
)

const defaultBlockHeight = 16

// Encode serializes a row-major BGRA pixel buffer as a TLG5 stream. Per
// the format's stub compressor, every block is written raw (mark = 1);
// no LZSS compression is attempted.
func Encode(width, height uint32, bgra []byte) ([]byte, error) {
	if uint64(len(bgra)) != uint64(width)*uint64(height)*4 {
		return nil, codecerr.ErrInvalidArgument
	}

	image := make([]pixel.Pixel, uint64(width)*uint64(height))
	for i := range image {
		image[i] = pixel.Unpack(binary.LittleEndian.Uint32(bgra[i*4:]))
	}

	h := Header{ChannelCount: 4, Width: width, Height: height, BlockHeight: defaultBlockHeight}

	s := bytestream.NewWriter()
	s.WriteData(Magic)
	writeHeader(s, h)

	blockSizesOffset := s.Pos()
	blockCount := int(h.BlockCount())
	for i := 0; i < blockCount; i++ {
		s.WriteU32LE(0)
	}

	planeSize := int(width) * defaultBlockHeight
	var planes [4][]byte
	for c := range planes {
		planes[c] = make([]byte, planeSize)
	}

	for y := uint32(0); y < height; y += defaultBlockHeight {
		oldPos := s.Pos()

		if err := savePixelBlockRow(image, width, height, planes, h, y); err != nil {
			return nil, err
		}
		for c := 0; c < 4; c++ {
			s.WriteU8(1) // mark = 1: raw block
			s.WriteU32LE(uint32(planeSize))
			s.WriteData(planes[c])
		}

		collectiveSize := uint32(s.Pos() - oldPos)
		endPos := s.Pos()
		s.SetPos(blockSizesOffset + 4*int(y/defaultBlockHeight))
		s.WriteU32LE(collectiveSize)
		s.SetPos(endPos)
	}

	return s.Bytes(), nil
}
