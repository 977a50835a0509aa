// Package cuid2 provides collision-resistant unique identifier generation.
//
// Identifiers are lowercase alphanumeric strings that always begin with a
// letter, so they stay safe for use as HTML ids, hostnames, and database
// keys. Each identifier is the SHA3-512 digest of the current timestamp, a
// process-wide counter, fresh entropy, and a per-call fingerprint, which
// keeps independent generators collision-resistant without coordination.
//
//	id, err := cuid2.Generate()            // "tz4a98xxat96iws9zmbrgj3a"
//	id, err = cuid2.GenerateWithLength(10) // "pe9f8zx6aq"
//
// All functions are safe for concurrent use.
package cuid2

import (
	"strconv"
	"sync/atomic"
	"time"
)

const (
	// DefaultLength is the default length for generated identifiers
	DefaultLength = 24

	// MaxLength is the maximum supported identifier length
	MaxLength = 32

	// MinLength is the minimum supported identifier length
	MinLength = 2
)

// counter distinguishes identifiers minted within the same millisecond.
// It is shared by the whole process and wraps around on overflow.
var counter atomic.Uint64

// timeNow is swapped out by tests to exercise clock failures
var timeNow = time.Now

// Generate creates a new identifier with the default length (24 characters)
func Generate() (string, error) {
	return GenerateWithLength(DefaultLength)
}

// GenerateWithLength creates a new identifier with the specified length.
// Lengths outside [MinLength, MaxLength] fail with *InvalidLengthError
// before any generator state is touched.
func GenerateWithLength(length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", &InvalidLengthError{Length: length, Min: MinLength, Max: MaxLength}
	}

	firstLetter, err := randomLetter()
	if err != nil {
		return "", err
	}

	millis := timeNow().UnixMilli()
	if millis < 0 {
		return "", &ClockError{Millis: millis}
	}
	timestamp := strconv.FormatInt(millis, 10)

	count := strconv.FormatUint(counter.Add(1), 10)

	salt, err := generateEntropy(length)
	if err != nil {
		return "", err
	}

	fingerprint, err := generateFingerprint()
	if err != nil {
		return "", err
	}

	hashed := computeHash(timestamp+salt+count+fingerprint, length)

	// The digest's own first character is dropped in favor of the
	// independently drawn letter, keeping the output alphabetic-first
	// without skewing the remaining characters.
	return string(firstLetter) + hashed[1:], nil
}
