package tlg6

import (
	"github.com/tlgimage/tlg/internal/bytestream"
	"github.com/tlgimage/tlg/internal/codecerr"
	"github.com/tlgimage/tlg/internal/lzss"
)

// seededDict builds the fixed non-zero dictionary the filter-type plane
// is always decompressed against: 32 outer groups of 16 inner groups,
// each inner group contributing four bytes of i followed by four bytes
// of j, filling the dictionary's 4096 bytes exactly once.
func seededDict() [lzss.DictSize]byte {
	var dict [lzss.DictSize]byte
	p := 0
	for i := 0; i < 32; i++ {
		for j := 0; j < 16; j++ {
			for k := 0; k < 4; k++ {
				dict[p] = byte(i)
				p++
			}
			for k := 0; k < 4; k++ {
				dict[p] = byte(j)
				p++
			}
		}
	}
	return dict
}

// readFilterTypes reads and LZSS-decompresses the filter-type plane: one
// byte per 8x8 image block, encoding (filterBit, transformerIndex).
func readFilterTypes(s *bytestream.Stream, h Header) ([]byte, error) {
	compSize, err := s.ReadU32LE()
	if err != nil {
		return nil, err
	}
	comp, err := s.ReadExact(int(compSize))
	if err != nil {
		return nil, err
	}

	dict := seededDict()
	dictPos := 0
	origSize, err := codecerr.CheckedMul(uint64(h.XBlockCount), uint64(h.YBlockCount))
	if err != nil {
		return nil, err
	}
	return lzss.Decompress(comp, int(origSize), &dict, &dictPos), nil
}
