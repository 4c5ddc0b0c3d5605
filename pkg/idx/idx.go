// Package idx generates the opaque, time-sortable identifiers assigned to
// users, authors and books.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a ULID in its canonical 26 character form.
type ID string

// Zero is the empty ID. Records never carry it once persisted.
const Zero ID = ""

// ErrInvalid reports a string that is not a ULID.
var ErrInvalid = errors.New("idx: invalid id")

var (
	sourceOnce sync.Once
	sourceMu   sync.Mutex
	source     *ulid.MonotonicEntropy
)

func entropy() *ulid.MonotonicEntropy {
	sourceOnce.Do(func() {
		source = ulid.Monotonic(rand.Reader, 0)
	})
	return source
}

// New returns an ID stamped with the current UTC time.
func New() ID {
	return NewAt(time.Now().UTC())
}

// NewAt returns an ID stamped with t. IDs minted within the same millisecond
// still sort in creation order.
func NewAt(t time.Time) ID {
	src := entropy()

	sourceMu.Lock()
	defer sourceMu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(t), src).String())
}

// Parse validates s and returns it as an ID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}
	return ID(s), nil
}

// Valid reports whether s parses as an ID.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func (id ID) IsZero() bool   { return id == Zero }
func (id ID) String() string { return string(id) }

// Time returns the timestamp embedded in id, or the zero time when id does
// not parse.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(id.String())
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}

// Compare orders a and b lexically, which for valid IDs is creation order.
func Compare(a, b ID) int {
	return strings.Compare(a.String(), b.String())
}
