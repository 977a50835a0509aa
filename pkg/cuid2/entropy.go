package cuid2

import (
	"crypto/rand"
	"io"
	mrand "math/rand/v2"
)

// Alphabet is the 36-symbol character set identifiers are built from, in
// canonical base-36 digit order
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// letters is the subset an identifier may start with
const letters = "abcdefghijklmnopqrstuvwxyz"

// entropyReader supplies seed material for the pseudorandom stream. Tests
// swap it out to simulate an unavailable source.
var entropyReader io.Reader = rand.Reader

// newSeededRand returns a ChaCha8 stream keyed with a fresh 32-byte seed
// from the operating system entropy source
func newSeededRand() (*mrand.Rand, error) {
	var seed [32]byte
	if _, err := io.ReadFull(entropyReader, seed[:]); err != nil {
		return nil, &RandomSourceError{Err: err}
	}
	return mrand.New(mrand.NewChaCha8(seed)), nil
}

// generateEntropy returns a random string of the given length with every
// character drawn uniformly from Alphabet
func generateEntropy(length int) (string, error) {
	rng, err := newSeededRand()
	if err != nil {
		return "", err
	}

	b := make([]byte, length)
	for i := range b {
		b[i] = Alphabet[rng.IntN(len(Alphabet))]
	}
	return string(b), nil
}

// randomLetter returns a single letter drawn uniformly from a-z
func randomLetter() (byte, error) {
	rng, err := newSeededRand()
	if err != nil {
		return 0, err
	}
	return letters[rng.IntN(len(letters))], nil
}
