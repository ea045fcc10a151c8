package cache

import (
	"context"
	"testing"
	"time"
)

func TestNilCacheIsNoOp(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	if data, ok := c.Get(ctx, "key"); ok || data != nil {
		t.Errorf("expected miss on nil cache, got (%v, %v)", data, ok)
	}

	// None of these may panic.
	c.Set(ctx, "key", []byte("value"), time.Minute)
	c.Delete(ctx, "key", "other")
	if err := c.Close(); err != nil {
		t.Errorf("expected nil close error, got %v", err)
	}
}
