package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		id   int
		want []int
	}{
		{name: "AppendToEmpty", ids: nil, id: 3, want: []int{3}},
		{name: "AppendKeepsOrder", ids: []int{1, 2}, id: 3, want: []int{1, 2, 3}},
		{name: "RemovePresent", ids: []int{1, 3, 2}, id: 3, want: []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Toggle(tt.ids, tt.id))
		})
	}
}

func TestToggle_TwiceRestores(t *testing.T) {
	original := []int{5, 8, 13}
	for _, id := range []int{1, 5, 8, 13, 21} {
		got := Toggle(Toggle(original, id), id)
		if id == 1 || id == 21 {
			assert.Equal(t, original, got)
			continue
		}
		assert.ElementsMatch(t, original, got)
	}
	assert.Equal(t, []int{5, 8, 13}, original, "input must not be modified")
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	ids, err := store.IDs(ctx, "a", ReadLaterKey)
	require.NoError(t, err)
	assert.Empty(t, ids)

	toggle := func(id int) func([]int) []int {
		return func(ids []int) []int { return Toggle(ids, id) }
	}

	ids, err = store.Update(ctx, "a", ReadLaterKey, toggle(7))
	require.NoError(t, err)
	assert.Equal(t, []int{7}, ids)

	other, err := store.IDs(ctx, "b", ReadLaterKey)
	require.NoError(t, err)
	assert.Empty(t, other, "sessions must be isolated")

	ids, err = store.Update(ctx, "a", ReadLaterKey, toggle(7))
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMemoryStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := store.Update(ctx, "sid", ReadLaterKey, func(ids []int) []int { return Toggle(ids, id) })
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	ids, err := store.IDs(ctx, "sid", ReadLaterKey)
	require.NoError(t, err)
	assert.Len(t, ids, 50)
}
