// Content fingerprints.
//
// A fingerprint is 16 hex characters identifying a snapshot's content, so a
// listing can show at a glance which snapshots are identical. Lines are
// hashed with their newline terminators, matching what Encode writes.
package fileverse

import (
	"fmt"
	"hash"
	"hash/fnv"
	"io"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

var algNames = map[string]int{
	"xxh3":    AlgXXHash3,
	"fnv1a":   AlgFNV1a,
	"blake2b": AlgBlake2b,
}

// ParseAlgorithm maps a configured name to its constant.
func ParseAlgorithm(name string) (int, error) {
	alg, ok := algNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown hash algorithm %q", name)
	}
	return alg, nil
}

// Fingerprint hashes content with the given algorithm. Unknown algorithms
// yield an empty string.
func Fingerprint(content []string, alg int) string {
	var h hash.Hash
	switch alg {
	case AlgXXHash3:
		h = xxh3.New()
	case AlgFNV1a:
		h = fnv.New64a()
	case AlgBlake2b:
		h, _ = blake2b.New(8, nil) // 8 bytes = 64 bits
	default:
		return ""
	}
	for _, l := range content {
		io.WriteString(h, l)
		io.WriteString(h, "\n")
	}
	return fmt.Sprintf("%016x", h.Sum(nil))
}
