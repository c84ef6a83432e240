// Package session keeps small per-visitor lists, such as the read-later posts,
// keyed by the session id cookie.
package session

import (
	"context"
	"errors"
	"slices"
	"time"
)

const (
	// ReadLaterKey holds the ids of the posts saved for later.
	ReadLaterKey = "stored_posts"

	DefaultTTL = 14 * 24 * time.Hour
)

var ErrConflict = errors.New("session was modified concurrently")

// Store is a per-session key/value store of id lists.
type Store interface {
	// IDs returns the list stored under key, empty when absent.
	IDs(ctx context.Context, sid, key string) ([]int, error)
	// Update replaces the list under key with fn(current) atomically and
	// returns the new list.
	Update(ctx context.Context, sid, key string, fn func([]int) []int) ([]int, error)
}

// Toggle appends id when it is absent and removes it when present.
// Toggling the same id twice restores the list.
func Toggle(ids []int, id int) []int {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(slices.Clone(ids), i, i+1)
	}

	return append(slices.Clone(ids), id)
}
