package session

import (
	"context"
	"maps"
	"slices"
	"testing"
	"time"

	"github.com/mlenz/regionmap/pkg/region"
)

func TestNew(t *testing.T) {
	values := region.ValueMap{"by": 1}
	sess := New("germany", values, time.Hour)

	if sess.ID == "" {
		t.Error("empty session id")
	}
	if sess.Map != "germany" {
		t.Errorf("Map = %s, want germany", sess.Map)
	}
	if !maps.Equal(sess.Values, values) {
		t.Errorf("Values = %v, want %v", sess.Values, values)
	}
	if sess.ExpiresAt.IsZero() {
		t.Error("ttl not applied")
	}
	if sess.IsExpired() {
		t.Error("fresh session reports expired")
	}

	// Seed values are cloned, not shared.
	values["by"] = 5
	if sess.Values["by"] != 1 {
		t.Error("session shares caller's value map")
	}
}

func TestNewNoTTL(t *testing.T) {
	sess := New("m", nil, 0)
	if !sess.ExpiresAt.IsZero() {
		t.Error("zero ttl should mean no expiry")
	}
	if sess.IsExpired() {
		t.Error("unexpiring session reports expired")
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := New("germany", region.ValueMap{"by": 2}, 0)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.ID != sess.ID || !maps.Equal(got.Values, sess.Values) {
		t.Errorf("Get = %+v, want stored session", got)
	}

	// Mutating the returned copy does not affect the store.
	got.Values["by"] = 99
	again, _ := store.Get(ctx, sess.ID)
	if again.Values["by"] != 2 {
		t.Error("store state mutated through returned session")
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := store.Get(ctx, sess.ID); got != nil {
		t.Error("session survives delete")
	}
}

func TestMemoryStoreMissing(t *testing.T) {
	store := NewMemoryStore()
	got, err := store.Get(context.Background(), "nope")
	if err != nil || got != nil {
		t.Errorf("Get(missing) = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := New("m", nil, time.Nanosecond)
	store.Set(ctx, sess)
	time.Sleep(5 * time.Millisecond)

	if got, _ := store.Get(ctx, sess.ID); got != nil {
		t.Error("expired session returned")
	}
}

func TestMemoryStoreCleanup(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	expired := New("m", nil, time.Nanosecond)
	fresh := New("m", nil, time.Hour)
	store.Set(ctx, expired)
	store.Set(ctx, fresh)
	time.Sleep(5 * time.Millisecond)

	if err := store.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if got, _ := store.Get(ctx, fresh.ID); got == nil {
		t.Error("fresh session removed by cleanup")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	sess := New("germany", region.ValueMap{"sh": 1}, 0)
	if err := store.Set(ctx, sess); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || !maps.Equal(got.Values, sess.Values) {
		t.Errorf("Get = %+v, want stored session", got)
	}

	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got, _ := store.Get(ctx, sess.ID); got != nil {
		t.Error("session survives delete")
	}
}

func TestFileStoreDeleteMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.Delete(context.Background(), "never-saved"); err != nil {
		t.Errorf("Delete of missing state: %v", err)
	}
}

func TestStateStore(t *testing.T) {
	store, err := NewStateStore(t.TempDir(), "germany")
	if err != nil {
		t.Fatalf("NewStateStore: %v", err)
	}
	ctx := context.Background()

	if got, err := store.Load(ctx, "demo"); err != nil || got != nil {
		t.Fatalf("Load(unsaved) = (%v, %v), want (nil, nil)", got, err)
	}

	sess := New("germany", region.ValueMap{"by": 1}, time.Hour)
	if err := store.Save(ctx, "demo", sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx, "demo")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got == nil || !maps.Equal(got.Values, region.ValueMap{"by": 1}) {
		t.Errorf("Load = %+v, want saved values", got)
	}
	// Named states never expire, even when the saved session carried a ttl.
	if !got.ExpiresAt.IsZero() {
		t.Error("named state carries expiry")
	}

	names, err := store.Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if !slices.Contains(names, "demo") {
		t.Errorf("Names = %v, want [demo]", names)
	}

	if err := store.Remove(ctx, "demo"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got, _ := store.Load(ctx, "demo"); got != nil {
		t.Error("state survives remove")
	}
}

func TestStateStoreScopedByMap(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	germany, _ := NewStateStore(dir, "germany")
	france, _ := NewStateStore(dir, "france")

	germany.Save(ctx, "demo", New("germany", region.ValueMap{"by": 1}, 0))

	if got, _ := france.Load(ctx, "demo"); got != nil {
		t.Error("state leaked across maps")
	}
	names, _ := france.Names()
	if len(names) != 0 {
		t.Errorf("france names = %v, want none", names)
	}
}
