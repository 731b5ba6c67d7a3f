// Package shortcode generates public redirect keys for bookmarks.
package shortcode

import (
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet excludes look-alike characters (0, O, 1, I, l) so codes survive
// being read aloud or retyped, and contains nothing that needs URL escaping.
const Alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// DefaultLength is the number of characters in a generated code.
const DefaultLength = 6

// ErrInvalidLength is returned when a generator is created with a non-positive length.
var ErrInvalidLength = errors.New("short code length must be positive")

// Generator produces random short codes. It holds no mutable state and is
// safe for concurrent use.
type Generator struct {
	length int
}

// NewGenerator creates a Generator producing codes of the given length.
func NewGenerator(length int) (*Generator, error) {
	if length <= 0 {
		return nil, fmt.Errorf("shortcode.NewGenerator: %w", ErrInvalidLength)
	}

	return &Generator{length: length}, nil
}

// Generate returns a new random code. Uniqueness is not guaranteed here;
// the store reports collisions and the caller retries.
func (g *Generator) Generate() (string, error) {
	const op = "shortcode.Generator.Generate"

	code, err := gonanoid.Generate(Alphabet, g.length)
	if err != nil {
		return "", fmt.Errorf("%s: failed to generate short code: %w", op, err)
	}

	return code, nil
}
