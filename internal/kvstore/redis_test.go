package kvstore

import (
	"context"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisStore(rdb)
}

func TestGetSetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "email:abc", `{"id":"abc"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok, err := store.Get(ctx, "email:abc")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || val != `{"id":"abc"}` {
		t.Errorf("got (%q, %v), want stored value", val, ok)
	}
}

func TestGetMiss(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.Get(context.Background(), "email:missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expected miss for absent key")
	}
}

func TestGetByPrefix(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	keys := []string{"email:1", "email:2", "email:3"}
	values := []string{"a", "b", "c"}
	if err := store.MSet(ctx, keys, values); err != nil {
		t.Fatalf("MSet failed: %v", err)
	}
	if err := store.Set(ctx, "stats:emails:total:2025-08-26", "7"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.GetByPrefix(ctx, "email:")
	if err != nil {
		t.Fatalf("GetByPrefix failed: %v", err)
	}
	sort.Strings(got)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMDel(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.MSet(ctx, []string{"email:1", "email:2"}, []string{"a", "b"}); err != nil {
		t.Fatalf("MSet failed: %v", err)
	}
	if err := store.MDel(ctx, []string{"email:1", "email:2"}); err != nil {
		t.Fatalf("MDel failed: %v", err)
	}

	got, err := store.GetByPrefix(ctx, "email:")
	if err != nil {
		t.Fatalf("GetByPrefix failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no values after MDel, got %v", got)
	}
}

func TestMSetLengthMismatch(t *testing.T) {
	store := newTestStore(t)
	if err := store.MSet(context.Background(), []string{"k"}, nil); err == nil {
		t.Error("expected error for mismatched keys/values")
	}
}

func TestIncrBy(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.IncrBy(ctx, "stats:emails:total:2025-08-26", 1)
	if err != nil {
		t.Fatalf("IncrBy failed: %v", err)
	}
	if n != 1 {
		t.Errorf("first increment = %d, want 1", n)
	}

	n, err = store.IncrBy(ctx, "stats:emails:total:2025-08-26", 2)
	if err != nil {
		t.Fatalf("IncrBy failed: %v", err)
	}
	if n != 3 {
		t.Errorf("second increment = %d, want 3", n)
	}

	val, ok, err := store.Get(ctx, "stats:emails:total:2025-08-26")
	if err != nil || !ok {
		t.Fatalf("Get after IncrBy: ok=%v err=%v", ok, err)
	}
	if val != "3" {
		t.Errorf("stored counter = %q, want \"3\"", val)
	}
}
