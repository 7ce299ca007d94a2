package tlg

import (
	"bytes"
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"

	"github.com/tlgimage/tlg/internal/tlg5"
	"github.com/tlgimage/tlg/internal/tlg6"
)

func init() {
	image.RegisterFormat("tlg5", string(tlg5.Magic), Decode, DecodeConfig)
	image.RegisterFormat("tlg6", string(tlg6.Magic), Decode, DecodeConfig)
}

// DecodeTLG5 parses a TLG5 stream into its dimensions and a row-major
// BGRA pixel buffer of length width*height*4.
func DecodeTLG5(input []byte) (width, height int, bgra []byte, err error) {
	w, h, buf, err := tlg5.Decode(input)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "tlg: decode tlg5")
	}
	return int(w), int(h), buf, nil
}

// DecodeTLG6 parses a TLG6 stream into its dimensions and a row-major
// BGRA pixel buffer of length width*height*4.
func DecodeTLG6(input []byte) (width, height int, bgra []byte, err error) {
	w, h, buf, err := tlg6.Decode(input)
	if err != nil {
		return 0, 0, nil, errors.Wrap(err, "tlg: decode tlg6")
	}
	return int(w), int(h), buf, nil
}

// EncodeTLG5 serializes a row-major BGRA pixel buffer (width*height*4
// bytes) as a TLG5 stream. There is no TLG6 encoder: the source this
// format was distilled from never shipped one.
func EncodeTLG5(width, height int, bgra []byte) ([]byte, error) {
	out, err := tlg5.Encode(uint32(width), uint32(height), bgra)
	if err != nil {
		return nil, errors.Wrap(err, "tlg: encode tlg5")
	}
	return out, nil
}

// Image is a row-major BGRA pixel buffer satisfying image.Image. It is
// the in-memory representation both TLG decoders produce and the TLG5
// encoder consumes, avoiding a channel-swapping copy through
// image.NRGBA for the common case of round-tripping TLG data.
type Image struct {
	Pix           []byte // BGRA, row-major, stride = Width*4
	Width, Height int
}

// NewImage allocates a zeroed Image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{Pix: make([]byte, width*height*4), Width: width, Height: height}
}

func (m *Image) ColorModel() color.Model { return color.RGBAModel }

func (m *Image) Bounds() image.Rectangle { return image.Rect(0, 0, m.Width, m.Height) }

func (m *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return color.RGBA{}
	}
	i := (y*m.Width + x) * 4
	return color.RGBA{R: m.Pix[i+2], G: m.Pix[i+1], B: m.Pix[i], A: m.Pix[i+3]}
}

// Set stores c at (x, y), converting it to BGRA.
func (m *Image) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	i := (y*m.Width + x) * 4
	m.Pix[i], m.Pix[i+1], m.Pix[i+2], m.Pix[i+3] = rgba.B, rgba.G, rgba.R, rgba.A
}

// toBGRA converts any image.Image to a tightly packed BGRA buffer.
func toBGRA(img image.Image) (width, height int, bgra []byte) {
	if m, ok := img.(*Image); ok {
		return m.Width, m.Height, m.Pix
	}
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	bgra = make([]byte, width*height*4)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			bgra[i], bgra[i+1], bgra[i+2], bgra[i+3] = c.B, c.G, c.R, c.A
			i += 4
		}
	}
	return width, height, bgra
}

// Decode implements image.Decode for both TLG5 and TLG6 streams,
// dispatching on the magic prefix.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(data, tlg5.Magic):
		w, h, bgra, err := DecodeTLG5(data)
		if err != nil {
			return nil, err
		}
		return &Image{Pix: bgra, Width: w, Height: h}, nil
	case bytes.HasPrefix(data, tlg6.Magic):
		w, h, bgra, err := DecodeTLG6(data)
		if err != nil {
			return nil, err
		}
		return &Image{Pix: bgra, Width: w, Height: h}, nil
	default:
		return nil, ErrInvalidMagic
	}
}

// DecodeConfig implements image.DecodeConfig, reading only the header.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, err
	}

	var width, height uint32
	switch {
	case bytes.HasPrefix(data, tlg5.Magic):
		width, height, err = tlg5.Config(data)
	case bytes.HasPrefix(data, tlg6.Magic):
		width, height, err = tlg6.Config(data)
	default:
		return image.Config{}, ErrInvalidMagic
	}
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: int(width), Height: int(height)}, nil
}

// Encode writes img as a TLG5 stream. TLG6 has no encoder.
func Encode(w io.Writer, img image.Image) error {
	width, height, bgra := toBGRA(img)
	out, err := EncodeTLG5(width, height, bgra)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
