package mocks

import (
	"fmt"

	"github.com/mcoot/connect4-go/internal/dependencies/random"
)

// MockRandom hands out queued strings first. Once the queue is drained it
// falls back to a counter, so games created without queuing still get
// distinct, predictable IDs.
type MockRandom struct {
	queued []string
	issued int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates an empty MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

func (r *MockRandom) String(length int, alphabet string) string {
	r.issued++
	if len(r.queued) > 0 {
		next := r.queued[0]
		r.queued = r.queued[1:]
		return next
	}
	return fmt.Sprintf("MOCK%0*d", max(length-4, 1), r.issued)
}

// QueueString sets the next values String returns, in order
func (r *MockRandom) QueueString(values ...string) {
	r.queued = append(r.queued, values...)
}

// Issued returns how many strings have been handed out
func (r *MockRandom) Issued() int {
	return r.issued
}
