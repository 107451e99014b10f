package random

import "math/rand/v2"

// Random generates game identifiers and can be mocked for testing
type Random interface {
	// String returns length characters drawn from alphabet
	String(length int, alphabet string) string
}

// Source implements Random with the runtime's auto-seeded generator.
// Game IDs only need to be distinct within one process.
type Source struct{}

// New creates a new Source
func New() *Source {
	return &Source{}
}

func (Source) String(length int, alphabet string) string {
	if length <= 0 || alphabet == "" {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
