package blake3accel

import (
	"fmt"
	"sync"
)

// scratch owns the intermediate chaining-value storage the merkle driver
// reduces over. It uses the 2×8N-word alternating-halves layout the
// accelerator design allows: the leaf level occupies the first half, and
// every parent-reduction pass writes into whichever half it isn't
// currently reading from.
type scratch struct {
	words []uint32 // len == 2 * 8 * leafCount
}

// scratchPool reuses backing storage across Hash calls the way the
// teacher's VM and scratchpad pools avoid repeated large allocations.
var scratchPool = sync.Pool{
	New: func() any { return new(scratch) },
}

// acquireScratch returns a scratch buffer sized for leafCount leaves,
// growing or reusing pooled storage as needed. It returns ErrOutOfMemory
// if the backing allocation fails, before any compression work begins.
func acquireScratch(leafCount int) (s *scratch, err error) {
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("blake3accel: scratch buffer allocation for %d leaves: %w", leafCount, ErrOutOfMemory)
		}
	}()

	s = scratchPool.Get().(*scratch)
	need := 2 * 8 * leafCount
	if cap(s.words) < need {
		s.words = make([]uint32, need)
	} else {
		s.words = s.words[:need]
	}
	return s, nil
}

// release clears the buffer and returns it to the pool.
func (s *scratch) release() {
	for i := range s.words {
		s.words[i] = 0
	}
	scratchPool.Put(s)
}

// half returns the read or write half of the buffer sized for a level
// holding levelSize chaining values. active selects which half is "first".
func (s *scratch) half(levelSize int, active bool) []uint32 {
	half := len(s.words) / 2
	if active {
		return s.words[:half][:8*levelSize]
	}
	return s.words[half:][:8*levelSize]
}
