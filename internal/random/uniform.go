// Package random provides unbiased integer draws over a cryptographic source.
//
// Draws read raw bytes from an io.Reader (crypto/rand by default) and use
// rejection sampling so every value in [0, n) is equally likely regardless of
// whether n divides the source range.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidBound indicates a non-positive upper bound.
var ErrInvalidBound = errors.New("random bound must be positive")

// IntN returns a uniformly distributed integer in [0, n) read from source.
// A nil source uses crypto/rand.
func IntN(source io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	if source == nil {
		source = crand.Reader
	}
	if n == 1 {
		return 0, nil
	}

	bound := uint64(n)
	// 2^64 mod bound; values below it would over-represent the low residues.
	threshold := -bound % bound

	var b [8]byte
	for {
		if _, err := io.ReadFull(source, b[:]); err != nil {
			return 0, fmt.Errorf("read random bytes: %w", err)
		}
		v := binary.LittleEndian.Uint64(b[:])
		if v >= threshold {
			return int(v % bound), nil
		}
	}
}
