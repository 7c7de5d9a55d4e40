package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brendanbates89/dot/framework/cache"
)

func TestStore_SetGet(t *testing.T) {
	s := cache.New(time.Minute, time.Minute)

	s.Set("greeting", "hello")

	v, ok := s.Get("greeting")
	require.True(t, ok)
	require.Equal(t, "hello", v)

	_, ok = s.Get("missing")
	require.False(t, ok)
}

func TestStore_SetFor_Expires(t *testing.T) {
	s := cache.New(time.Minute, time.Minute)

	s.SetFor("blink", 1, 10*time.Millisecond)
	_, ok := s.Get("blink")
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = s.Get("blink")
	require.False(t, ok, "entry should expire after its TTL")
}

func TestStore_DeleteAndFlush(t *testing.T) {
	s := cache.New(time.Minute, time.Minute)

	s.Set("a", 1)
	s.Set("b", 2)
	require.Equal(t, 2, s.Len())

	s.Delete("a")
	_, ok := s.Get("a")
	require.False(t, ok)

	s.Flush()
	require.Equal(t, 0, s.Len())
}
