package di

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-board-cache/boardcache"
	"github.com/goliatone/go-board-cache/cache"
	"github.com/goliatone/go-board-cache/pkg/testsupport"
)

func TestNew_MemoryStoreEndToEnd(t *testing.T) {
	container, err := New(Options{UseMemory: true})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer container.Close()
	ctx := context.Background()

	loaderCalls := 0
	load := func(context.Context) (boardcache.BoardView, error) {
		loaderCalls++
		return boardcache.BoardView{
			ProjectID: "p1", TeamID: "t1",
			Columns: []boardcache.ColumnView{{ID: "c1", Name: "Todo"}},
		}, nil
	}

	if _, err := container.Accessor().Board(ctx, "p1", "t1", load); err != nil {
		t.Fatalf("Board() error: %v", err)
	}

	// Population is asynchronous; poll until the entry lands.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, found := container.Store().Get(ctx, "board:p1:t1"); found {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for cache population")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, err := container.Accessor().Board(ctx, "p1", "t1", load); err != nil {
		t.Fatalf("Board() error: %v", err)
	}
	if loaderCalls != 1 {
		t.Errorf("loader calls = %d, want 1", loaderCalls)
	}

	container.Invalidator().TaskChanged(ctx, "p1", "t1", "c1", "task-1")
	if _, found := container.Store().Get(ctx, "board:p1:t1"); found {
		t.Error("board entry should be gone after invalidation")
	}
}

func TestNew_InjectedStore(t *testing.T) {
	fake := testsupport.NewFakeStore()
	container, err := New(Options{Store: fake})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if container.Store() != cache.Store(fake) {
		t.Error("injected store must be used as-is")
	}

	status := container.Health().CheckHealth(context.Background())
	if status.Status != boardcache.StatusHealthy {
		t.Errorf("status = %q, want healthy", status.Status)
	}

	fake.SetUnavailable(true)
	status = container.Health().CheckHealth(context.Background())
	if status.Status != boardcache.StatusDegraded {
		t.Errorf("status = %q, want degraded", status.Status)
	}
}

func TestNew_UnconfiguredBackendIsDegraded(t *testing.T) {
	container, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer container.Close()

	status := container.Health().CheckHealth(context.Background())
	if status.Status != boardcache.StatusDegraded {
		t.Errorf("status = %q, want degraded without a backend address", status.Status)
	}

	// Reads still work, straight from the loader.
	view, err := container.Accessor().TaskDetails(context.Background(), "task-1", func(context.Context) (boardcache.TaskDetailView, error) {
		return boardcache.TaskDetailView{ID: "task-1", Title: "fix login"}, nil
	})
	if err != nil {
		t.Fatalf("TaskDetails() error: %v", err)
	}
	if view.Title != "fix login" {
		t.Errorf("view = %+v", view)
	}
}

func TestNew_RejectsInvalidBackendConfig(t *testing.T) {
	if _, err := New(Options{Backend: cache.Config{DB: -1}}); err == nil {
		t.Error("expected error for invalid backend config")
	}
}
