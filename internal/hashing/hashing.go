// Package hashing provides the digest and encoding helpers backing the
// core's content-addressed cache keys: cryptographic SHA-2 digests,
// HMAC signing, a fast non-cryptographic 64-bit hash, and base64
// transport encoding.
package hashing

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

// Algorithm selects a cryptographic digest.
type Algorithm string

const (
	SHA256 Algorithm = "sha256"
	SHA384 Algorithm = "sha384"
	SHA512 Algorithm = "sha512"
)

// Sum computes the hex-encoded digest of data under the given
// algorithm.
func Sum(data []byte, alg Algorithm) (string, error) {
	switch alg {
	case SHA256:
		d := sha256.Sum256(data)
		return hex.EncodeToString(d[:]), nil
	case SHA384:
		d := sha512.Sum384(data)
		return hex.EncodeToString(d[:]), nil
	case SHA512:
		d := sha512.Sum512(data)
		return hex.EncodeToString(d[:]), nil
	default:
		return "", fmt.Errorf("hashing: unknown algorithm %q", alg)
	}
}

// SumSHA256 is the common case of Sum.
func SumSHA256(data []byte) string {
	d := sha256.Sum256(data)
	return hex.EncodeToString(d[:])
}

// Fast64 computes a 64-bit non-cryptographic digest (xxHash). Suited
// to cache keys and dedup checks, not to anything adversarial.
func Fast64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// HMACSHA256 returns the hex-encoded HMAC-SHA256 tag of message under
// key.
func HMACSHA256(key, message []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// Base64Encode encodes data with the standard alphabet.
func Base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Base64Decode decodes standard-alphabet base64.
func Base64Decode(s string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hashing: base64 decode: %w", err)
	}
	return out, nil
}

// SumBatch hashes every input under alg, preserving order. Inputs are
// hashed in parallel across GOMAXPROCS workers; one bad algorithm
// fails the whole batch.
func SumBatch(inputs [][]byte, alg Algorithm) ([]string, error) {
	// Validate once up front so workers cannot race to report it.
	if _, err := Sum(nil, alg); err != nil {
		return nil, err
	}

	out := make([]string, len(inputs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, data := range inputs {
		g.Go(func() error {
			sum, err := Sum(data, alg)
			if err != nil {
				return err
			}
			out[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
