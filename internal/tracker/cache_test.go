package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HonorBot_Go/internal/domain"
)

func TestRecordCache_SetGetInvalidate(t *testing.T) {
	c := newRecordCache(2, time.Minute)

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(&domain.UserRecord{PlatformID: 1, ExternalUsername: "alice"})
	rec, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "alice", rec.ExternalUsername)

	rec.ExternalUsername = "mutated"
	again, _ := c.Get(1)
	assert.Equal(t, "alice", again.ExternalUsername, "cache must hand out copies")

	c.Invalidate(1)
	_, ok = c.Get(1)
	assert.False(t, ok)
}

func TestRecordCache_EvictsOldest(t *testing.T) {
	c := newRecordCache(2, time.Minute)
	for id := int64(1); id <= 3; id++ {
		c.Set(&domain.UserRecord{PlatformID: id})
	}

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(1)
	assert.False(t, ok)
}

func TestRecordCache_Defaults(t *testing.T) {
	c := newRecordCache(0, 0)
	c.Set(&domain.UserRecord{PlatformID: 1})
	assert.Equal(t, 1, c.Len())
}
