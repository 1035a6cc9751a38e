package utils

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/oklog/ulid/v2"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	id, err := u.NewULIDFromTimestamp(now)
	assert.Equal(t, nil, err)

	parsed, err := ulid.Parse(id)
	assert.Equal(t, nil, err)
	assert.Equal(t, ulid.Timestamp(now), parsed.Time())
}

func TestNewULIDFromTimestamp_MonotonicWithinMillisecond(t *testing.T) {
	u := New()
	now := time.Now()

	prev, err := u.NewULIDFromTimestamp(now)
	assert.Equal(t, nil, err)

	for i := 0; i < 100; i++ {
		next, err := u.NewULIDFromTimestamp(now)
		assert.Equal(t, nil, err)
		if next <= prev {
			t.Fatalf("expected %s > %s", next, prev)
		}
		prev = next
	}
}
