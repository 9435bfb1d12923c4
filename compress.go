package blake3accel

import "math/bits"

// Chunk and block geometry, bit-exact with upstream BLAKE3.
const (
	ChunkLen = 1024
	BlockLen = 64
	OutLen   = 32
	rounds   = 7

	blocksPerChunk = ChunkLen / BlockLen
)

// Domain flags, ORed into the flags word of a compression.
const (
	flagChunkStart uint32 = 1 << 0
	flagChunkEnd   uint32 = 1 << 1
	flagParent     uint32 = 1 << 2
	flagRoot       uint32 = 1 << 3
)

// iv holds the eight BLAKE3 initialization words, reused both as the
// compression function's constant half-state and as the starting chaining
// value for every chunk.
var iv = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

// msgPermutation is applied to the message schedule between rounds.
var msgPermutation = [16]int{2, 6, 3, 10, 7, 0, 4, 13, 1, 11, 12, 5, 9, 14, 15, 8}

// g performs one quarter-round mix of state, either column-wise or
// diagonally depending on which four indices the caller passes.
func g(state *[16]uint32, a, b, c, d int, mx, my uint32) {
	state[a] = state[a] + state[b] + mx
	state[d] = bits.RotateLeft32(state[d]^state[a], -16)
	state[c] = state[c] + state[d]
	state[b] = bits.RotateLeft32(state[b]^state[c], -12)
	state[a] = state[a] + state[b] + my
	state[d] = bits.RotateLeft32(state[d]^state[a], -8)
	state[c] = state[c] + state[d]
	state[b] = bits.RotateLeft32(state[b]^state[c], -7)
}

// round applies the eight G invocations of one compression round: four
// column mixes followed by four diagonal mixes.
func round(state *[16]uint32, m *[16]uint32) {
	g(state, 0, 4, 8, 12, m[0], m[1])
	g(state, 1, 5, 9, 13, m[2], m[3])
	g(state, 2, 6, 10, 14, m[4], m[5])
	g(state, 3, 7, 11, 15, m[6], m[7])

	g(state, 0, 5, 10, 15, m[8], m[9])
	g(state, 1, 6, 11, 12, m[10], m[11])
	g(state, 2, 7, 8, 13, m[12], m[13])
	g(state, 3, 4, 9, 14, m[14], m[15])
}

// permute rewrites m in place according to msgPermutation.
func permute(m *[16]uint32) {
	var next [16]uint32
	for i, src := range msgPermutation {
		next[i] = m[src]
	}
	*m = next
}

// compress runs the 7-round BLAKE3 compression function over one 64-byte
// block and returns the 8-word output chaining value. block is treated as
// scratch: the local copy is permuted between rounds and never observed by
// the caller afterward.
//
// The reference implementation additionally folds state[8:16] against
// cvIn before returning a 16-word block; that fold only matters for
// extendable output beyond OutLen and is intentionally omitted here.
func compress(cvIn [8]uint32, block [16]uint32, counter uint64, blockLen uint32, flags uint32) [8]uint32 {
	state := [16]uint32{
		cvIn[0], cvIn[1], cvIn[2], cvIn[3],
		cvIn[4], cvIn[5], cvIn[6], cvIn[7],
		iv[0], iv[1], iv[2], iv[3],
		uint32(counter), uint32(counter >> 32),
		blockLen, flags,
	}

	for i := 0; i < rounds; i++ {
		round(&state, &block)
		if i < rounds-1 {
			permute(&block)
		}
	}

	var cvOut [8]uint32
	for i := range cvOut {
		cvOut[i] = state[i] ^ state[i+8]
	}
	return cvOut
}
