package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/Simplici0/freight/internal/apperrors"
)

// Type identifies which calculation produced a record.
type Type string

const (
	TypeSea     Type = "sea"
	TypeAir     Type = "air"
	TypeCompare Type = "compare"
	TypeMulti   Type = "multi"
)

// Valid reports whether t is one of the known calculation types.
func (t Type) Valid() bool {
	switch t {
	case TypeSea, TypeAir, TypeCompare, TypeMulti:
		return true
	}
	return false
}

// ParseType parses a calculation type, ignoring case and surrounding spaces.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown calculation type %q", apperrors.ErrInvalidInput, s)
	}
	return t, nil
}

// Payload is the opaque structured data stored with a record.
type Payload map[string]any

// Record is an immutable snapshot of one completed calculation.
type Record struct {
	ID        string    `json:"id" msgpack:"id"`
	CreatedAt time.Time `json:"timestamp" msgpack:"created_at"`
	Type      Type      `json:"type" msgpack:"type"`
	Currency  string    `json:"currency" msgpack:"currency"`
	Inputs    Payload   `json:"inputs" msgpack:"inputs"`
	Results   Payload   `json:"results" msgpack:"results"`
}
