// Package store implements the in-memory data layer. Each store owns one
// collection and its permitted mutations.
//
// Mutations never edit a record in place: they build a fresh slice with the
// changed record swapped in and replace the collection wholesale. A snapshot
// taken by a reader therefore never observes a half-applied change, which is
// the only consistency guarantee the stores make. State lives for the process
// lifetime only; there is no persistence.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID generates an opaque record identifier. The millisecond prefix keeps
// ids roughly chronological, the uuid suffix keeps them unique; callers must
// treat the whole string as opaque either way.
func newID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
