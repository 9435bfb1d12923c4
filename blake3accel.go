// Package blake3accel implements the core of a BLAKE3 hashing engine
// optimised for accelerator-style execution over large, power-of-two-sized
// inputs.
//
// It computes the 32-byte BLAKE3 digest of a contiguous byte buffer whose
// length is a power-of-two multiple of the 1024-byte chunk size: the
// compression primitive (G function, round function, message permutation,
// 7-round compress) and the tree-hash driver that merklises leaf chaining
// values into a root digest. Command-line dispatch, device selection,
// timing, streaming input, and keyed/KDF modes are deliberately out of
// scope; this package exposes only the byte-oriented digest function.
//
// Example usage:
//
//	engine, err := blake3accel.New(blake3accel.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	digest, err := engine.Hash(input)
package blake3accel

import (
	"fmt"
	"runtime"
	"sync"
)

// Config specifies the configuration for an Engine.
type Config struct {
	// Workers bounds the concurrency of each independent fan-out (leaf
	// production, and parent reduction within one merkle level). A
	// value of 0 selects runtime.NumCPU(). A value of 1 disables
	// parallelism entirely without changing the digest.
	Workers int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("blake3accel: invalid worker count: %d", c.Workers)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// Engine computes BLAKE3 digests. It is safe for concurrent use. It fixes
// the worker count across Hash calls; scratch buffers come from a
// package-level pool shared with the package-level Hash function.
type Engine struct {
	config Config
	closed bool
	mu     sync.RWMutex
}

// New creates a new Engine with the specified configuration. The returned
// Engine must be closed with Close() once no longer needed.
func New(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Engine{config: config}, nil
}

// Hash computes the BLAKE3 digest of input using this Engine's
// configuration. It is safe for concurrent use by multiple goroutines.
//
// input's length must be a power-of-two multiple of ChunkLen and at least
// minChunks chunks; otherwise Hash returns ErrInvalidInput and leaves the
// returned digest as its zero value.
func (e *Engine) Hash(input []byte) ([OutLen]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		panic("blake3accel: Hash called on closed engine")
	}

	return hashWithWorkers(input, e.config.workers())
}

// Close releases resources held by the Engine. After Close, the Engine
// must not be used.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

// IsReady returns true if the Engine is ready to compute hashes.
func (e *Engine) IsReady() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return !e.closed
}

// Hash computes the BLAKE3 digest of input in one shot, using
// runtime.NumCPU() workers. It gives the same result as Engine.Hash on an
// Engine built from a zero Config, and draws its scratch buffer from the
// same package-level pool.
func Hash(input []byte) ([OutLen]byte, error) {
	return hashWithWorkers(input, 0)
}

// hashWithWorkers validates input and sequences chunk compression, the
// merkle driver, and digest export. It is the public entry point (§4.5 /
// §6 of the accelerator design) underlying both Hash and Engine.Hash.
func hashWithWorkers(input []byte, workers int) ([OutLen]byte, error) {
	chunkCount, err := validateInput(input)
	if err != nil {
		return [OutLen]byte{}, err
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	root, err := merkleRoot(input, chunkCount, workers)
	if err != nil {
		return [OutLen]byte{}, err
	}

	return digestFromCV(root), nil
}
