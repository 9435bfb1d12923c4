package blake3accel

import "golang.org/x/sync/errgroup"

// computeLeaves compresses every chunk of input into its leaf chaining
// value, writing 8 words per leaf into dst. Chunks have no inter-leaf
// dependencies, so this fan-out is bounded only by workers.
func computeLeaves(input []byte, leafCount, workers int, dst []uint32) error {
	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i := 0; i < leafCount; i++ {
		i := i
		g.Go(func() error {
			chunk := input[i*ChunkLen : (i+1)*ChunkLen]
			cv := compressChunk(chunk, uint64(i))
			copy(dst[i*8:i*8+8], cv[:])
			return nil
		})
	}

	return g.Wait()
}

// reduceLevel pairs adjacent chaining values of a prevSize-CV level and
// writes their parent chaining values into dst. Nodes within a level are
// independent of each other, so this is the level's fan-out barrier;
// reduceLevel itself never overlaps two distinct levels.
func reduceLevel(prev []uint32, prevSize, workers int, dst []uint32) error {
	levelSize := prevSize / 2

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i := 0; i < levelSize; i++ {
		i := i
		g.Go(func() error {
			var block [16]uint32
			copy(block[0:8], prev[2*i*8:2*i*8+8])
			copy(block[8:16], prev[(2*i+1)*8:(2*i+1)*8+8])

			cv := compress(iv, block, 0, BlockLen, flagParent)
			copy(dst[i*8:i*8+8], cv[:])
			return nil
		})
	}

	return g.Wait()
}

// rootCompression combines the final two chaining values of the merkle
// tree into the root chaining value.
func rootCompression(left, right [8]uint32) [8]uint32 {
	var block [16]uint32
	copy(block[0:8], left[:])
	copy(block[8:16], right[:])
	return compress(iv, block, 0, BlockLen, flagParent|flagRoot)
}

// merkleRoot drives the full leaf-production and level-by-level parent
// reduction described by the accelerator design, returning the root
// chaining value for a validated leafCount-chunk input. workers bounds the
// concurrency of each independent fan-out; it does not change the result.
func merkleRoot(input []byte, leafCount, workers int) ([8]uint32, error) {
	sc, err := acquireScratch(leafCount)
	if err != nil {
		return [8]uint32{}, err
	}
	defer sc.release()

	active := true
	levelSize := leafCount

	if err := computeLeaves(input, leafCount, workers, sc.half(levelSize, active)); err != nil {
		return [8]uint32{}, err
	}

	for levelSize > 2 {
		prev := sc.half(levelSize, active)
		nextSize := levelSize / 2
		next := sc.half(nextSize, !active)

		if err := reduceLevel(prev, levelSize, workers, next); err != nil {
			return [8]uint32{}, err
		}

		active = !active
		levelSize = nextSize
	}

	final := sc.half(levelSize, active)
	var left, right [8]uint32
	copy(left[:], final[0:8])
	copy(right[:], final[8:16])

	return rootCompression(left, right), nil
}
