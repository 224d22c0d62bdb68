package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	t.Run("parameter order does not change the key", func(t *testing.T) {
		first := Key("naver", "blog", map[string]string{"query": "개미", "display": "5"})
		second := Key("naver", "blog", map[string]string{"display": "5", "query": "개미"})
		assert.Equal(t, first, second)
	})

	t.Run("different calls get different keys", func(t *testing.T) {
		first := Key("naver", "blog", map[string]string{"query": "개미"})
		second := Key("naver", "blog", map[string]string{"query": "나비"})
		third := Key("aladin", "blog", map[string]string{"query": "개미"})
		assert.NotEqual(t, first, second)
		assert.NotEqual(t, first, third)
	})
}

func TestStore_Fetch(t *testing.T) {
	t.Run("miss fills and stores", func(t *testing.T) {
		store := NewStore(t.TempDir(), time.Hour)

		calls := 0
		fill := func() ([]byte, error) {
			calls++
			return []byte(`{"total":3}`), nil
		}

		payload, err := store.Fetch("key1", fill)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"total":3}`), payload)
		assert.Equal(t, 1, calls)

		payload, err = store.Fetch("key1", fill)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"total":3}`), payload)
		assert.Equal(t, 1, calls)
	})

	t.Run("fill error propagates without storing", func(t *testing.T) {
		store := NewStore(t.TempDir(), time.Hour)

		_, err := store.Fetch("key1", func() ([]byte, error) {
			return nil, errors.New("upstream down")
		})
		require.Error(t, err)

		_, ok := store.Get("key1")
		assert.False(t, ok)
	})
}

func TestStore_Get_expiry(t *testing.T) {
	store := NewStore(t.TempDir(), time.Minute)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Put("key1", []byte("payload")))

	payload, ok := store.Get("key1")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), payload)

	// Within the TTL.
	current = current.Add(59 * time.Second)
	_, ok = store.Get("key1")
	assert.True(t, ok)

	// Older than the TTL is treated as absent.
	current = current.Add(2 * time.Second)
	_, ok = store.Get("key1")
	assert.False(t, ok)

	// Rewriting the same key with fresher data is always safe.
	require.NoError(t, store.Put("key1", []byte("fresher")))
	payload, ok = store.Get("key1")
	require.True(t, ok)
	assert.Equal(t, []byte("fresher"), payload)
}

func TestStore_concurrentReads(t *testing.T) {
	store := NewStore(t.TempDir(), time.Hour)
	require.NoError(t, store.Put("key1", []byte("payload")))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			payload, ok := store.Get("key1")
			assert.True(t, ok)
			assert.Equal(t, []byte("payload"), payload)
		}()
	}
	wg.Wait()
}
