package blake3accel

import "github.com/opd-ai/go-blake3accel/internal"

// blake2Generator is a deterministic pseudo-random byte generator seeded
// with Blake2b-512, used to synthesize large power-of-two test inputs
// without checking multi-megabyte binary fixtures into the repository.
// Grounded on the teacher's superscalar-program seed generator, repurposed
// here to produce test input rather than instruction streams.
type blake2Generator struct {
	data [64]byte
	pos  int
}

// newBlake2Generator creates a generator whose first output block derives
// from hashing seed.
func newBlake2Generator(seed []byte) *blake2Generator {
	g := &blake2Generator{pos: 64}
	g.data = internal.Blake2b512(seed)
	return g
}

func (g *blake2Generator) refill() {
	g.data = internal.Blake2b512(g.data[:])
	g.pos = 0
}

func (g *blake2Generator) nextByte() byte {
	if g.pos >= len(g.data) {
		g.refill()
	}
	b := g.data[g.pos]
	g.pos++
	return b
}

// generateInput deterministically fills a size-byte buffer from seed. The
// same (seed, size) pair always produces the same bytes, which is what
// lets tests describe large inputs by a short seed instead of committing
// the bytes themselves.
func generateInput(seed []byte, size int) []byte {
	g := newBlake2Generator(seed)
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = g.nextByte()
	}
	return buf
}
