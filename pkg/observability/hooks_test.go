package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

// recordingEngineHooks captures engine events for assertions.
type recordingEngineHooks struct {
	mu     sync.Mutex
	clicks []string
	passes int
}

func (r *recordingEngineHooks) OnClick(_ context.Context, _, _, target string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clicks = append(r.clicks, target)
}

func (r *recordingEngineHooks) OnPassStart(context.Context, string, int) {}

func (r *recordingEngineHooks) OnPassComplete(_ context.Context, _ string, _ int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes++
}

func TestSetEngineHooks(t *testing.T) {
	defer Reset()

	rec := &recordingEngineHooks{}
	SetEngineHooks(rec)

	ctx := context.Background()
	Engine().OnClick(ctx, "germany", "single", "by")
	Engine().OnPassComplete(ctx, "germany", 16, time.Millisecond)

	if len(rec.clicks) != 1 || rec.clicks[0] != "by" {
		t.Errorf("clicks = %v, want [by]", rec.clicks)
	}
	if rec.passes != 1 {
		t.Errorf("passes = %d, want 1", rec.passes)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	defer Reset()

	SetEngineHooks(nil)
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Errorf("Engine() = %T, want NoopEngineHooks", Engine())
	}

	SetHostHooks(nil)
	if _, ok := Host().(NoopHostHooks); !ok {
		t.Errorf("Host() = %T, want NoopHostHooks", Host())
	}

	SetCacheHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
}

func TestReset(t *testing.T) {
	SetEngineHooks(&recordingEngineHooks{})
	Reset()

	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Errorf("after Reset: Engine() = %T, want NoopEngineHooks", Engine())
	}
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	defer Reset()
	ctx := context.Background()

	Engine().OnClick(ctx, "m", "single", "a")
	Engine().OnPassStart(ctx, "m", 1)
	Engine().OnPassComplete(ctx, "m", 1, time.Second)
	Host().OnSessionCreated(ctx, "m", "sess")
	Host().OnRequest(ctx, "GET", "/", 200, time.Millisecond)
	Cache().OnCacheHit(ctx, "render")
	Cache().OnCacheMiss(ctx, "render")
	Cache().OnCacheSet(ctx, "render", 128)
}
