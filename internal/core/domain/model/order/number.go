package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewNumber generates a human-readable order number: a date-coded prefix plus
// the first eight hex characters of a fresh UUID, e.g. "ORD-20260901-3F2A9C41".
//
// The random suffix makes collisions rare rather than impossible; the store
// backs this up with a unique index on the order number, and order creation
// retries once with a fresh number on a unique-violation.
func NewNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), suffix)
}
