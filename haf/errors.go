package haf

import (
	"errors"
	"fmt"
)

// ErrEvenDimensionRequired is returned when the input matrix order is
// odd, or the flat matrix slice's length does not equal n*n.
var ErrEvenDimensionRequired = errors.New("haf: matrix order must be even and len(a) must equal n*n")

// ErrEigenFailure is the sentinel wrapped by EigensolverFailure.
// Callers should prefer errors.Is(err, haf.ErrEigenFailure).
var ErrEigenFailure = errors.New("haf: eigensolver backend failed to converge")

// EigensolverFailure reports that the eigensolver backend (package
// eigen) failed to converge while processing the reduced matrix B(x)
// for subset index Subset. It wraps ErrEigenFailure and the underlying
// eigen error.
//
// This is fatal for the subset that produced it but does not, by
// itself, prevent other concurrently-running subsets from completing;
// the driver (via errgroup.Group) lets every goroutine run to
// completion and surfaces the first such failure.
type EigensolverFailure struct {
	Subset uint64 // subset index x that failed
	Err    error  // underlying error from package eigen
}

// Error implements the error interface.
func (e *EigensolverFailure) Error() string {
	return fmt.Sprintf("haf: eigensolver failed for subset %d: %v", e.Subset, e.Err)
}

// Unwrap exposes both ErrEigenFailure and the underlying eigen error to errors.Is/As.
func (e *EigensolverFailure) Unwrap() []error {
	return []error{ErrEigenFailure, e.Err}
}
