package blake3accel

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// Vector describes one end-to-end digest scenario the way §8 of the
// accelerator design states them: by how the input is filled and how many
// chunks it spans, rather than by literal bytes, since valid inputs start
// at one megabyte. Expected is left empty for vectors whose digest still
// needs to be captured from a reference BLAKE3 implementation; tests skip
// those rather than asserting against a placeholder.
type Vector struct {
	Name       string `json:"name"`
	Fill       string `json:"fill"`                 // "constant", "counter", or "seed"
	FillByte   string `json:"fill_byte,omitempty"`   // hex byte, for Fill == "constant"
	Seed       string `json:"seed,omitempty"`        // hex seed, for Fill == "seed"
	ChunkCount int    `json:"chunk_count"`
	Expected   string `json:"expected,omitempty"` // hex-encoded 32-byte digest
}

// VectorSuite groups vectors with metadata about their provenance.
type VectorSuite struct {
	Description string   `json:"description"`
	Source      string   `json:"source,omitempty"`
	Vectors     []Vector `json:"vectors"`
}

// LoadVectors loads a vector suite from a JSON file.
func LoadVectors(path string) (*VectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blake3accel: read vectors: %w", err)
	}

	var suite VectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("blake3accel: parse vectors: %w", err)
	}

	return &suite, nil
}

// Input materializes the vector's input buffer according to its Fill
// pattern.
func (v *Vector) Input() ([]byte, error) {
	size := v.ChunkCount * ChunkLen
	buf := make([]byte, size)

	switch v.Fill {
	case "constant":
		fb, err := hex.DecodeString(v.FillByte)
		if err != nil || len(fb) != 1 {
			return nil, fmt.Errorf("blake3accel: vector %q: invalid fill_byte %q", v.Name, v.FillByte)
		}
		for i := range buf {
			buf[i] = fb[0]
		}
	case "counter":
		for i := range buf {
			buf[i] = byte(i % 256)
		}
	case "seed":
		seed, err := hex.DecodeString(v.Seed)
		if err != nil {
			return nil, fmt.Errorf("blake3accel: vector %q: invalid seed %q", v.Name, v.Seed)
		}
		buf = generateInput(seed, size)
	default:
		return nil, fmt.Errorf("blake3accel: vector %q: unknown fill %q", v.Name, v.Fill)
	}

	return buf, nil
}

// ExpectedDigest decodes the vector's expected digest. ok is false when the
// vector has not yet had a digest captured from a reference implementation.
func (v *Vector) ExpectedDigest() (digest [OutLen]byte, ok bool, err error) {
	if v.Expected == "" {
		return digest, false, nil
	}

	raw, err := hex.DecodeString(v.Expected)
	if err != nil {
		return digest, false, fmt.Errorf("blake3accel: vector %q: invalid expected digest: %w", v.Name, err)
	}
	if len(raw) != OutLen {
		return digest, false, fmt.Errorf("blake3accel: vector %q: expected digest must be %d bytes, got %d", v.Name, OutLen, len(raw))
	}

	copy(digest[:], raw)
	return digest, true, nil
}
