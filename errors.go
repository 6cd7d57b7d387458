package vec

import "errors"

var (
	// ErrIndexOutOfRange indicates a checked accessor was given an index
	// outside [0, Len).
	ErrIndexOutOfRange = errors.New("vec: index out of range")

	// ErrNegativeCount indicates a negative length or slot count.
	ErrNegativeCount = errors.New("vec: negative count")

	// ErrAllocLimit indicates a request beyond the allocator's maximum
	// slot count.
	ErrAllocLimit = errors.New("vec: allocation exceeds allocator limit")
)
