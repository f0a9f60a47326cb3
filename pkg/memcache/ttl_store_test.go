package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set("a", []byte("1"), time.Minute))
	require.NoError(t, s.Set("b", []byte("2"), time.Hour))

	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	now = now.Add(2 * time.Minute)
	_, ok = s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, s.Purge())
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	in := []byte("abc")
	require.NoError(t, s.Set("k", in, time.Minute))
	in[0] = 'x'

	out, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "abc", string(out))

	out[0] = 'y'
	again, _ := s.Get("k")
	assert.Equal(t, "abc", string(again))

	require.NoError(t, s.Delete("k"))
	_, ok = s.Get("k")
	assert.False(t, ok)
}

func TestBadgerStore_InMemory(t *testing.T) {
	s, err := OpenBadger("")
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("route:goa", []byte(`{"km":1}`), time.Hour))
	v, ok := s.Get("route:goa")
	require.True(t, ok)
	assert.JSONEq(t, `{"km":1}`, string(v))

	require.NoError(t, s.Delete("route:goa"))
	require.NoError(t, s.Delete("route:goa"))
	_, ok = s.Get("route:goa")
	assert.False(t, ok)
}

func TestBadgerStore_OnDisk(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenBadger(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte("v"), 0))
	require.NoError(t, s.Close())

	s, err = OpenBadger(dir)
	require.NoError(t, err)
	defer s.Close()
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", string(v))
}
