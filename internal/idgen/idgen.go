// Package idgen issues public identifiers for stored records.
package idgen

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultLength gives about 126 bits of randomness over the URL-safe alphabet.
const DefaultLength = 21

// Generator produces a new identifier on each call.
type Generator interface {
	NewID() (string, error)
}

// NanoID generates URL-safe nanoid strings from crypto/rand.
type NanoID struct {
	Length int
}

// New returns a NanoID generator with the default length.
func New() NanoID {
	return NanoID{Length: DefaultLength}
}

// NewID returns a fresh identifier.
func (g NanoID) NewID() (string, error) {
	n := g.Length
	if n <= 0 {
		n = DefaultLength
	}
	id, err := gonanoid.New(n)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return id, nil
}

// Func adapts a plain function to Generator.
type Func func() (string, error)

// NewID calls f.
func (f Func) NewID() (string, error) {
	return f()
}
