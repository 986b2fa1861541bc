package boardcache

import (
	"context"
	"testing"
	"time"
)

func seededStore(t *testing.T, keys ...string) *fakeStore {
	t.Helper()
	store := newFakeStore()
	for _, key := range keys {
		store.SetWithTTL(context.Background(), key, []byte(`{}`), time.Minute)
	}
	return store
}

func assertGone(t *testing.T, store *fakeStore, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if store.has(key) {
			t.Errorf("key %q should have been invalidated", key)
		}
	}
}

func assertKept(t *testing.T, store *fakeStore, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if !store.has(key) {
			t.Errorf("key %q should have been kept", key)
		}
	}
}

func TestInvalidator_TaskChanged(t *testing.T) {
	store := seededStore(t,
		"board:p1:t1",
		"board:p1:t2",
		"board:p2:t1",
		"task-details:task-1",
		"task-details:task-2",
		"column-data:c1",
		"column-data:c2",
	)
	inv := NewInvalidator(store, nil)

	inv.TaskChanged(context.Background(), "p1", "t1", "c1", "task-1")

	assertGone(t, store, "board:p1:t1", "board:p1:t2", "task-details:task-1", "column-data:c1")
	assertKept(t, store, "board:p2:t1", "task-details:task-2", "column-data:c2")
}

func TestInvalidator_ColumnChanged(t *testing.T) {
	store := seededStore(t, "board:p1:t1", "column-data:c1", "column-data:c2")
	inv := NewInvalidator(store, nil)

	inv.ColumnChanged(context.Background(), "p1", "c1")

	assertGone(t, store, "board:p1:t1", "column-data:c1")
	assertKept(t, store, "column-data:c2")
}

func TestInvalidator_CategoriesChanged(t *testing.T) {
	store := seededStore(t,
		"categories:p1",
		"categories:p2",
		"dashboard:u1",
		"dashboard:u2",
		"board:p1:t1",
	)
	inv := NewInvalidator(store, nil)

	inv.CategoriesChanged(context.Background(), "p1")

	assertGone(t, store, "categories:p1", "dashboard:u1", "dashboard:u2")
	assertKept(t, store, "categories:p2", "board:p1:t1")
}

func TestInvalidator_MembershipChanged(t *testing.T) {
	store := seededStore(t,
		"user-teams:u1",
		"user-projects:u1",
		"dashboard:u1",
		"team-members:t1",
		"user-teams:u2",
	)
	inv := NewInvalidator(store, nil)

	inv.MembershipChanged(context.Background(), "u1", "t1")

	assertGone(t, store, "user-teams:u1", "user-projects:u1", "dashboard:u1", "team-members:t1")
	assertKept(t, store, "user-teams:u2")
}

func TestInvalidator_MembershipChangedWithoutTeam(t *testing.T) {
	store := seededStore(t, "user-teams:u1", "team-members:t1")
	inv := NewInvalidator(store, nil)

	inv.MembershipChanged(context.Background(), "u1", "")

	assertGone(t, store, "user-teams:u1")
	assertKept(t, store, "team-members:t1")
}

func TestInvalidator_ShiftsChanged(t *testing.T) {
	store := seededStore(t, "user-shifts:u1", "user-shifts:u2")
	inv := NewInvalidator(store, nil)

	inv.ShiftsChanged(context.Background(), "u1")

	assertGone(t, store, "user-shifts:u1")
	assertKept(t, store, "user-shifts:u2")
}

func TestInvalidator_SessionRevoked(t *testing.T) {
	store := seededStore(t, "user-session:u1", "user-session:u2")
	inv := NewInvalidator(store, nil)

	inv.SessionRevoked(context.Background(), "u1")

	assertGone(t, store, "user-session:u1")
	assertKept(t, store, "user-session:u2")
}

func TestInvalidator_ForceClear(t *testing.T) {
	store := seededStore(t, "board:p1:t1", "board:p1:t2", "board:p2:t1", "categories:p1")
	inv := NewInvalidator(store, nil)

	if n := inv.ForceClear(context.Background(), "board"); n != 3 {
		t.Errorf("ForceClear(board) = %d, want 3", n)
	}
	assertKept(t, store, "categories:p1")

	if n := inv.ForceClear(context.Background(), "board"); n != 0 {
		t.Errorf("second ForceClear(board) = %d, want 0", n)
	}
}

func TestInvalidator_ForceClearScoped(t *testing.T) {
	store := seededStore(t, "board:p1:t1", "board:p1:t2", "board:p2:t1")
	inv := NewInvalidator(store, nil)

	if n := inv.ForceClear(context.Background(), "board", "p1"); n != 2 {
		t.Errorf("ForceClear(board, p1) = %d, want 2", n)
	}
	assertKept(t, store, "board:p2:t1")
}

func TestInvalidator_UnavailableStoreIsSilent(t *testing.T) {
	store := newFakeStore()
	store.setUnavailable(true)
	inv := NewInvalidator(store, nil)
	ctx := context.Background()

	// None of these may panic or error; staleness is bounded by TTL.
	inv.TaskChanged(ctx, "p1", "t1", "c1", "task-1")
	inv.CategoriesChanged(ctx, "p1")
	inv.MembershipChanged(ctx, "u1", "t1")
	if n := inv.ForceClear(ctx, "board"); n != 0 {
		t.Errorf("ForceClear() = %d, want 0 against unavailable store", n)
	}
}
