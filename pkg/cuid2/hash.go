package cuid2

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// computeHash returns the first length characters of the lowercase
// hexadecimal SHA3-512 digest of input. The digest encodes to 128
// characters, well above MaxLength.
func computeHash(input string, length int) string {
	sum := sha3.Sum512([]byte(input))
	return hex.EncodeToString(sum[:])[:length]
}

// generateFingerprint hashes fresh entropy into a MaxLength host marker.
// It is recomputed on every call, so identifiers minted in the same
// millisecond by unrelated processes still diverge.
func generateFingerprint() (string, error) {
	entropy, err := generateEntropy(MaxLength)
	if err != nil {
		return "", err
	}
	return computeHash(entropy, MaxLength), nil
}
