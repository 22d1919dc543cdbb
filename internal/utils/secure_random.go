package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// SecureSeed draws a non-zero 64-bit seed from the operating system's random source.
func SecureSeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]) | 1, nil
}
