package system_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes/internal/adapters/system"
)

func TestRandomIDProvider_UUIDv4AndUnique(t *testing.T) {
	p := system.RandomIDProvider{}
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id := string(p.NewID())
		u, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), u.Version())
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSystemClock_UTC(t *testing.T) {
	before := time.Now()
	now := system.SystemClock{}.Now()
	after := time.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Truncate(time.Second)))
	assert.False(t, now.After(after))
}
