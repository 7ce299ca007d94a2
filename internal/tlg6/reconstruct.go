package tlg6

import (
	"encoding/binary"

	"github.com/tlgimage/tlg/internal/pixel"
)

// sampleAt reads the packed BGRA sample at block-sample index idx from
// the interleaved byte buffer the Golomb decoder filled.
func sampleAt(samples []byte, idx int) uint32 {
	return binary.LittleEndian.Uint32(samples[idx*4:])
}

// decodeLine reconstructs one output row's worth of 8x8 blocks in the
// range [startBlock, blockLimit), predicting each pixel from its left,
// top and top-left neighbors and adding the residual sample at a
// block-major, zig-zag-addressed offset into the shared sample buffer.
//
// prevLine and currentLine are full-width rows (index by absolute column,
// not relative to startBlock); inOffset is the caller-computed starting
// sample index for this row within the band's block-major layout.
func decodeLine(
	prevLine, currentLine []pixel.Pixel,
	startBlock, blockLimit int,
	filterTypes []byte, ftRowOffset int,
	skipBlockBytes int,
	samples []byte, inOffset int,
	oddSkip, dir int,
	h Header,
) {
	var left, topLeft pixel.Pixel
	prevIdx := startBlock * wBlockSize
	curIdx := startBlock * wBlockSize

	if startBlock != 0 {
		left = currentLine[curIdx-1]
		topLeft = prevLine[prevIdx-1]
	} else if h.ChannelCount == 3 {
		left.A = 0xFF
		topLeft.A = 0xFF
	}

	inOffset += skipBlockBytes * startBlock
	step := -1
	if dir&1 != 0 {
		step = 1
	}

	for i := startBlock; i < blockLimit; i++ {
		w := int(h.Width) - i*wBlockSize
		if w > wBlockSize {
			w = wBlockSize
		}
		ww := w

		if step == -1 {
			inOffset += ww - 1
		}
		if i&1 != 0 {
			inOffset += oddSkip * ww
		}

		filterByte := filterTypes[ftRowOffset+i]
		filter := pixel.Filters[filterByte&1]
		transformer := pixel.Transformers[filterByte>>1]

		for {
			inn := pixel.Unpack(sampleAt(samples, inOffset))
			transformer(&inn)

			top := prevLine[prevIdx]
			result := filter(left.Pack(), top.Pack(), topLeft.Pack(), inn.Pack())
			left = pixel.Unpack(result)
			if h.ChannelCount == 3 {
				left.A = 0xFF
			}

			topLeft = top
			currentLine[curIdx] = left
			curIdx++
			prevIdx++
			inOffset += step

			w--
			if w == 0 {
				break
			}
		}

		inOffset += skipBlockBytes
		if step == 1 {
			inOffset -= ww
		} else {
			inOffset++
		}
		if i&1 != 0 {
			inOffset -= oddSkip * ww
		}
	}
}
