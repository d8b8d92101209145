package generator

import "errors"

// ErrBadSize indicates a negative item count.
var ErrBadSize = errors.New("generator: invalid size")

// ErrCapacityOverflow indicates that the derived capacity does not fit in int.
var ErrCapacityOverflow = errors.New("generator: capacity overflows int")
