package hafint

import "errors"

// ErrEvenDimensionRequired is returned when the input matrix order is
// odd, or the flat matrix slice's length does not equal n*n.
var ErrEvenDimensionRequired = errors.New("hafint: matrix order must be even and len(a) must equal n*n")
