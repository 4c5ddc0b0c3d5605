package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/bookshelf/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewRoundTripsThroughParse(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
	require.True(t, idx.Valid(id.String()))
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FA"} {
		t.Run(in, func(t *testing.T) {
			_, err := idx.Parse(in)
			require.ErrorIs(t, err, idx.ErrInvalid)
			require.False(t, idx.Valid(in))
		})
	}
}

func TestOrdering(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())

	require.Equal(t, -1, idx.Compare(a, b))
	require.Equal(t, 1, idx.Compare(b, a))
	require.Equal(t, 0, idx.Compare(a, a))
}

func TestSameMillisecondStaysOrdered(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	prev := idx.NewAt(at)
	for range 50 {
		next := idx.NewAt(at)
		require.Equal(t, -1, idx.Compare(prev, next))
		prev = next
	}
}

func TestTime(t *testing.T) {
	at := time.UnixMilli(1700000000123).UTC()
	require.True(t, at.Equal(idx.NewAt(at).Time()))
	require.True(t, idx.ID("bogus").Time().IsZero())
}
