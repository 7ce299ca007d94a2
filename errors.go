package tlg

import "github.com/tlgimage/tlg/internal/codecerr"

// Sentinel errors returned at the package boundary. They are the same
// values the internal codec packages return; callers may compare
// against them with errors.Is even though boundary functions wrap them
// with additional context via github.com/pkg/errors.
var (
	ErrInvalidMagic            = codecerr.ErrInvalidMagic
	ErrUnsupportedChannelCount = codecerr.ErrUnsupportedChannelCount
	ErrUnsupportedMethod       = codecerr.ErrUnsupportedMethod
	ErrUnexpectedEOF           = codecerr.ErrUnexpectedEOF
	ErrCorrupt                 = codecerr.ErrCorrupt
	ErrInvalidArgument         = codecerr.ErrInvalidArgument
)
