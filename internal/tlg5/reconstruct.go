package tlg5

import (
	"github.com/tlgimage/tlg/internal/codecerr"
	"github.com/tlgimage/tlg/internal/pixel"
)

// loadPixelBlockRow reconstructs the band of rows starting at blockY from
// the four per-channel plane buffers into image, applying the fixed TLG5
// color un-transform and the row/column cumulative sums. Plane bytes are
// laid out row-major within the band: plane[c][(y-blockY)*width + x].
func loadPixelBlockRow(image []pixel.Pixel, width, height uint32, planes [4][]byte, h Header, blockY uint32) error {
	maxY := blockY + h.BlockHeight
	if maxY > height {
		maxY = height
	}
	useAlpha := h.ChannelCount == 4

	for y := blockY; y < maxY; y++ {
		rowShift := (y - blockY) * width
		var prev pixel.Pixel

		for x := uint32(0); x < width; x++ {
			var p pixel.Pixel
			p.B = planes[0][rowShift+x]
			p.G = planes[1][rowShift+x]
			p.R = planes[2][rowShift+x]
			if useAlpha {
				p.A = planes[3][rowShift+x]
			} else {
				p.A = 0xFF
			}
			p.B += p.G
			p.R += p.G

			prev.R += p.R
			prev.G += p.G
			prev.B += p.B
			prev.A += p.A

			idx := y*width + x
			if idx >= uint32(len(image)) {
				return codecerr.ErrCorrupt
			}
			target := &image[idx]
			*target = prev
			if y > 0 {
				top := image[idx-width]
				target.R += top.R
				target.G += top.G
				target.B += top.B
				target.A += top.A
			}
			if !useAlpha {
				target.A = 0xFF
			}
		}
	}
	return nil
}

// savePixelBlockRow is the encoder-side inverse of loadPixelBlockRow: it
// differences image against the already-reconstructed row above and the
// running row sum, then applies the inverse of the TLG5 color transform,
// writing the result into the four per-channel plane buffers.
func savePixelBlockRow(image []pixel.Pixel, width, height uint32, planes [4][]byte, h Header, blockY uint32) error {
	maxY := blockY + h.BlockHeight
	if maxY > height {
		maxY = height
	}

	for y := blockY; y < maxY; y++ {
		rowShift := (y - blockY) * width
		var prev pixel.Pixel

		for x := uint32(0); x < width; x++ {
			idx := y*width + x
			if idx >= uint32(len(image)) {
				return codecerr.ErrCorrupt
			}
			p := image[idx]

			if y > 0 {
				top := image[idx-width]
				p.R -= top.R
				p.G -= top.G
				p.B -= top.B
				p.A -= top.A
			}

			p.R -= prev.R
			p.G -= prev.G
			p.B -= prev.B
			p.A -= prev.A

			prev.R += p.R
			prev.G += p.G
			prev.B += p.B
			prev.A += p.A

			p.B -= p.G
			p.R -= p.G

			planes[0][rowShift+x] = p.B
			planes[1][rowShift+x] = p.G
			planes[2][rowShift+x] = p.R
			planes[3][rowShift+x] = p.A
		}
	}
	return nil
}
