package cache

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeckCache_NilIsNoOp(t *testing.T) {
	// Handlers call the cache unconditionally; a disabled cache must behave
	// like a permanent miss.
	var c *DeckCache
	ctx := context.Background()
	id := uuid.New()

	var dest []string
	assert.False(t, c.Get(ctx, "candidate", id, 70, &dest))
	c.Set(ctx, "candidate", id, 70, []string{"x"})
	assert.False(t, c.Get(ctx, "candidate", id, 70, &dest))
}

func TestDeckCache_KeySeparatesSidesAndThresholds(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	a := deckKey("candidate", id, 70)
	b := deckKey("vacancy", id, 70)
	c := deckKey("candidate", id, 60)

	assert.Equal(t, "deck:candidate:11111111-2222-3333-4444-555555555555:70", a)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestNewDeckCache_DefaultTTL(t *testing.T) {
	c := NewDeckCache(nil, 0)
	assert.Equal(t, DefaultTTL, c.ttl)
}
