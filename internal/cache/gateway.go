// Package cache defines the key-value gateway the article service reads
// through and invalidates on write.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
)

// Gateway is a string key-value store. Values are opaque to it.
type Gateway interface {
	// Get returns the value and whether the key was present.
	Get(ctx context.Context, key Key) (string, bool, error)
	Set(ctx context.Context, key Key, value string) error
	Delete(ctx context.Context, keys ...Key) error
}

// GetJSON reads key and decodes it into dst. A value that does not decode is
// reported as a miss, never as an error; only gateway failures are returned.
func GetJSON(ctx context.Context, g Gateway, key Key, dst any) (bool, error) {
	raw, ok, err := g.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, g Gateway, key Key, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := g.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}
