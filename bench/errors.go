package bench

import "errors"

var (
	// ErrBadOptions indicates meaningless harness options.
	ErrBadOptions = errors.New("bench: invalid options")

	// ErrVerificationFailed indicates the known-answer check did not hold.
	ErrVerificationFailed = errors.New("bench: verification failed")
)
