package blake3accel

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when the input buffer does not satisfy the
// preconditions the accelerator core requires: length must be a multiple
// of ChunkLen, the resulting chunk count must be a power of two, and it
// must be at least minChunks.
var ErrInvalidInput = errors.New("blake3accel: invalid input")

// ErrOutOfMemory is returned when the scratch buffer manager fails to
// allocate the storage a merkle build requires. It is always returned
// before any compression work has started.
var ErrOutOfMemory = errors.New("blake3accel: out of memory")

// minChunks is the smallest chunk count the accelerator core accepts,
// matching the "N ≥ 1024" precondition of the public entry point.
const minChunks = 1024

// validateInput checks the three preconditions on an input buffer and
// returns its chunk count on success.
func validateInput(input []byte) (chunkCount int, err error) {
	if len(input) == 0 || len(input)%ChunkLen != 0 {
		return 0, fmt.Errorf("%w: length %d is not a positive multiple of %d bytes", ErrInvalidInput, len(input), ChunkLen)
	}

	n := len(input) / ChunkLen
	if n&(n-1) != 0 {
		return 0, fmt.Errorf("%w: chunk count %d is not a power of two", ErrInvalidInput, n)
	}

	if n < minChunks {
		return 0, fmt.Errorf("%w: chunk count %d is below the minimum of %d", ErrInvalidInput, n, minChunks)
	}

	return n, nil
}
