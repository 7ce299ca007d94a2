// Package codecerr defines the sentinel errors shared by the TLG5 and
// TLG6 decoders/encoder. They are defined in their own package, rather
// than in the tlg5/tlg6 packages themselves or the root tlg package, so
// that both the codec packages and the public API can refer to the same
// values without an import cycle.
package codecerr

import (
	"math/bits"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidMagic is returned when the leading 11 bytes do not match
	// the expected format magic.
	ErrInvalidMagic = errors.New("tlg: invalid magic")
	// ErrUnsupportedChannelCount is returned when the header's channel
	// count is not 3 or 4.
	ErrUnsupportedChannelCount = errors.New("tlg: unsupported channel count")
	// ErrUnsupportedMethod is returned when a TLG6 band header names a
	// Golomb encoding method other than 0.
	ErrUnsupportedMethod = errors.New("tlg: unsupported encoding method")
	// ErrUnexpectedEOF is returned when a mandatory read runs past the
	// end of the input buffer.
	ErrUnexpectedEOF = errors.New("tlg: unexpected end of stream")
	// ErrCorrupt is returned for structurally-present but semantically
	// invalid data: a computed target offset outside its buffer, a raw
	// TLG5 block whose declared size disagrees with the expected plane
	// size, or an overflowing size computation.
	ErrCorrupt = errors.New("tlg: corrupt stream")
	// ErrInvalidArgument is returned when a caller-supplied buffer does
	// not match the dimensions it claims to describe.
	ErrInvalidArgument = errors.New("tlg: invalid argument")
)

// CheckedMul multiplies factors together and reports ErrCorrupt instead of
// wrapping or silently accepting a nonsensical result: a zero factor (a
// zero width or height underflows the block-count arithmetic that derives
// from it) or a product that overflows uint64. Every buffer size derived
// from header fields must go through this before it reaches a make().
func CheckedMul(factors ...uint64) (uint64, error) {
	result := uint64(1)
	for _, f := range factors {
		if f == 0 {
			return 0, ErrCorrupt
		}
		hi, lo := bits.Mul64(result, f)
		if hi != 0 {
			return 0, ErrCorrupt
		}
		result = lo
	}
	return result, nil
}
