package history

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Simplici0/freight/internal/apperrors"
)

// Builder creates history records with unique ids and non-decreasing timestamps.
// One Builder is shared per process.
type Builder struct {
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
	last  time.Time
}

// NewBuilder returns a Builder using the wall clock and random UUIDs.
func NewBuilder() *Builder {
	return &Builder{now: time.Now, newID: uuid.NewString}
}

// Build wraps a finished calculation in a new record. Payloads are stored as given.
func (b *Builder) Build(t Type, currency string, inputs, results Payload) (Record, error) {
	if !t.Valid() {
		return Record{}, fmt.Errorf("%w: unknown calculation type %q", apperrors.ErrInvalidInput, t)
	}
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return Record{}, fmt.Errorf("%w: currency is required", apperrors.ErrInvalidInput)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	ts := b.now().UTC()
	if ts.Before(b.last) {
		ts = b.last
	}
	b.last = ts

	return Record{
		ID:        b.newID(),
		CreatedAt: ts,
		Type:      t,
		Currency:  currency,
		Inputs:    inputs,
		Results:   results,
	}, nil
}
