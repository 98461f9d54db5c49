package cache

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

type newsItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func newTestCache(t *testing.T) (*Cache, *MemoryStore, *fakeClock) {
	t.Helper()
	store := NewMemoryStore(MemoryOptions{ConcurrencySafe: true})
	clock := &fakeClock{t: time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)}
	return New(store, Options{Prefix: "test_", TTL: time.Hour, Now: clock.Now}), store, clock
}

func TestCache_RoundTrip(t *testing.T) {
	c, store, _ := newTestCache(t)
	in := []newsItem{{ID: "1", Title: "Interest waiver extended"}, {ID: "2", Title: "Vendor survey"}}
	c.Set("news", in)

	_, ok, _ := store.Get("test_news")
	require.True(t, ok, "key must be namespaced with the prefix")

	var out []newsItem
	require.True(t, c.Get("news", &out))
	require.Equal(t, in, out)
}

func TestCache_EnvelopeFormat(t *testing.T) {
	c, store, clock := newTestCache(t)
	c.Set("stats", []string{"34,971+"})

	raw, _, _ := store.Get("test_stats")
	require.JSONEq(t, `{"data":["34,971+"],"timestamp":`+itoa(clock.t.UnixMilli())+`}`, string(raw))
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	c, store, clock := newTestCache(t)
	c.Set("news", []newsItem{{ID: "1"}})

	var out []newsItem
	clock.t = clock.t.Add(30 * time.Minute)
	require.True(t, c.Get("news", &out))

	clock.t = clock.t.Add(30 * time.Minute) // exactly TTL old: still fresh
	require.True(t, c.Get("news", &out))

	clock.t = clock.t.Add(time.Millisecond)
	require.False(t, c.Get("news", &out))

	_, ok, _ := store.Get("test_news")
	require.False(t, ok, "expired entry must be evicted on read")
}

func TestCache_FutureTimestampIsStale(t *testing.T) {
	c, store, clock := newTestCache(t)
	c.Set("news", []newsItem{{ID: "1"}})

	clock.t = clock.t.Add(-48 * time.Hour)
	var out []newsItem
	require.False(t, c.Get("news", &out))

	_, ok, _ := store.Get("test_news")
	require.False(t, ok)
}

func TestCache_CorruptEntryIsMiss(t *testing.T) {
	c, store, clock := newTestCache(t)
	require.NoError(t, store.Set("test_news", []byte("{not json")))

	var out []newsItem
	require.False(t, c.Get("news", &out))
	_, ok, _ := store.Get("test_news")
	require.False(t, ok)

	// well-formed envelope with a payload of the wrong shape
	require.NoError(t, store.Set("test_news", []byte(`{"data":{"id":1},"timestamp":`+itoa(clock.t.UnixMilli())+`}`)))
	require.False(t, c.Get("news", &out))
}

func TestCache_MissingDataIsMiss(t *testing.T) {
	c, store, clock := newTestCache(t)
	require.NoError(t, store.Set("test_news", []byte(`{"timestamp":`+itoa(clock.t.UnixMilli())+`}`)))
	var out []newsItem
	require.False(t, c.Get("news", &out))
}

func TestCache_QuotaExceededIsSwallowed(t *testing.T) {
	store := NewMemoryStore(MemoryOptions{ConcurrencySafe: true, MaxBytes: 16})
	c := New(store, Options{Prefix: "q_"})

	require.NotPanics(t, func() { c.Set("news", []newsItem{{ID: "1", Title: "a title too large for the quota"}}) })
	var out []newsItem
	require.False(t, c.Get("news", &out))
	require.Zero(t, store.Len())
}

type failingStore struct{ MemoryStore }

func (failingStore) Get(string) ([]byte, bool, error) {
	return nil, false, errors.New("disk gone")
}

func TestCache_StoreReadErrorIsMiss(t *testing.T) {
	c := New(&failingStore{}, Options{})
	var out []string
	require.False(t, c.Get("news", &out))
}

func TestCache_DeleteAndClear(t *testing.T) {
	c, store, _ := newTestCache(t)
	c.Set("news", []int{1})
	c.Set("tenders", []int{2})
	require.NoError(t, store.Set("unrelated", []byte("x")))

	c.Delete("news")
	var out []int
	require.False(t, c.Get("news", &out))
	require.True(t, c.Get("tenders", &out))

	require.NoError(t, c.Clear())
	require.False(t, c.Get("tenders", &out))
	_, ok, _ := store.Get("unrelated")
	require.True(t, ok, "Clear must stay inside the namespace")
}

func TestCache_Defaults(t *testing.T) {
	c := New(NewMemoryStore(MemoryOptions{}), Options{})
	require.Equal(t, DefaultTTL, c.TTL())
	require.Equal(t, DefaultPrefix, c.prefix)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
