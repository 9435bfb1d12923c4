package blake3accel

import "encoding/binary"

// wordFromLEBytes reads a little-endian 32-bit word from the first four
// bytes of b.
func wordFromLEBytes(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// blockFromLEBytes parses 64 little-endian input bytes into the sixteen
// message words of one block.
func blockFromLEBytes(b []byte) [16]uint32 {
	var m [16]uint32
	for i := 0; i < 16; i++ {
		m[i] = wordFromLEBytes(b[i*4 : i*4+4])
	}
	return m
}

// wordToLEBytes writes w to dst as four little-endian bytes.
func wordToLEBytes(dst []byte, w uint32) {
	binary.LittleEndian.PutUint32(dst, w)
}

// digestFromCV serializes the eight output words of a root chaining value
// into the 32-byte little-endian digest.
func digestFromCV(cv [8]uint32) [OutLen]byte {
	var out [OutLen]byte
	for i, w := range cv {
		wordToLEBytes(out[i*4:i*4+4], w)
	}
	return out
}
