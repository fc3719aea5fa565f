package eigen

import (
	"errors"
	"fmt"
)

// ErrNonSquare is returned when the input matrix length is not a perfect square.
var ErrNonSquare = errors.New("eigen: matrix is not square")

// ErrDidNotConverge is the sentinel wrapped by FailedToConverge.
// Callers should prefer errors.Is(err, eigen.ErrDidNotConverge).
var ErrDidNotConverge = errors.New("eigen: shifted QR iteration did not converge")

// FailedToConverge reports that the shifted QR algorithm exhausted its
// iteration budget without fully deflating the active window of a
// matrix of order Size. It wraps ErrDidNotConverge.
type FailedToConverge struct {
	Size int // order of the matrix the backend failed to diagonalize
}

// Error implements the error interface.
func (e *FailedToConverge) Error() string {
	return fmt.Sprintf("eigen: QR iteration failed to converge for %dx%d matrix", e.Size, e.Size)
}

// Unwrap exposes ErrDidNotConverge for errors.Is.
func (e *FailedToConverge) Unwrap() error {
	return ErrDidNotConverge
}
