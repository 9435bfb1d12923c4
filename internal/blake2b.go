// Package internal wraps the cryptographic primitives the accelerator core
// borrows from outside the BLAKE3 algorithm itself.
package internal

import "golang.org/x/crypto/blake2b"

// Blake2b512 computes a 512-bit Blake2b hash (64 bytes). It backs the
// deterministic pseudo-random generator used to synthesize large test
// inputs without checking multi-megabyte fixtures into the repository.
func Blake2b512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}
