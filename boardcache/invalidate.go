package boardcache

import (
	"context"

	"go.uber.org/zap"

	"github.com/goliatone/go-board-cache/cache"
)

// Invalidator maps domain mutations to the cache entries they stale. Each
// method runs synchronously after the write commits and before the response
// returns, so the next read observes the new state.
//
// Like every store interaction, invalidation never fails the caller: an
// unreachable backend simply leaves entries to expire on their TTL.
type Invalidator struct {
	store cache.Store
	log   *zap.Logger
}

// NewInvalidator builds an invalidator over store. A nil logger falls back
// to no-op.
func NewInvalidator(store cache.Store, log *zap.Logger) *Invalidator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Invalidator{store: store, log: log}
}

// TaskChanged handles task create, update, move, and delete. Every board
// variant under the project goes, since any team's board may render the
// task, plus the task's own detail entry and its column snapshot. On a
// move, call once per affected column.
func (inv *Invalidator) TaskChanged(ctx context.Context, projectID, teamID, columnID, taskID string) {
	_ = teamID // all team variants under the project are stale, not just one
	inv.pattern(ctx, cache.Pattern(cache.ResourceBoard, projectID))
	inv.direct(ctx,
		cache.BuildKey(cache.ResourceTaskDetails, taskID),
		cache.BuildKey(cache.ResourceColumnData, columnID),
	)
}

// ColumnChanged handles column create, rename, reorder, and delete.
func (inv *Invalidator) ColumnChanged(ctx context.Context, projectID, columnID string) {
	inv.pattern(ctx, cache.Pattern(cache.ResourceBoard, projectID))
	inv.direct(ctx, cache.BuildKey(cache.ResourceColumnData, columnID))
}

// CategoriesChanged handles category and option mutations. Dashboards embed
// category detail for every visible project, and which users see this
// project is unknown here, so the whole dashboard family goes.
func (inv *Invalidator) CategoriesChanged(ctx context.Context, projectID string) {
	inv.direct(ctx, cache.BuildKey(cache.ResourceCategories, projectID))
	inv.pattern(ctx, cache.Pattern(cache.ResourceDashboard))
}

// MembershipChanged handles a user joining or leaving a team. Everything
// derived from the membership graph for that user goes, plus the team's
// roster when the team is known.
func (inv *Invalidator) MembershipChanged(ctx context.Context, userID, teamID string) {
	keys := []string{
		cache.BuildKey(cache.ResourceUserTeams, userID),
		cache.BuildKey(cache.ResourceUserProjects, userID),
		cache.BuildKey(cache.ResourceDashboard, userID),
	}
	if teamID != "" {
		keys = append(keys, cache.BuildKey(cache.ResourceTeamMembers, teamID))
	}
	inv.direct(ctx, keys...)
}

// ShiftsChanged handles schedule edits for one user.
func (inv *Invalidator) ShiftsChanged(ctx context.Context, userID string) {
	inv.direct(ctx, cache.BuildKey(cache.ResourceUserShifts, userID))
}

// SessionRevoked drops a user's cached session immediately, for logout and
// permission changes that must not wait out a TTL.
func (inv *Invalidator) SessionRevoked(ctx context.Context, userID string) {
	inv.direct(ctx, cache.BuildKey(cache.ResourceUserSession, userID))
}

// ForceClear is the administrative escape hatch: it drops every entry under
// the given resource scope and reports how many went.
func (inv *Invalidator) ForceClear(ctx context.Context, resource cache.Resource, parts ...string) int {
	pattern := cache.Pattern(resource, parts...)
	n := inv.store.DeleteByPattern(ctx, pattern)
	inv.log.Info("cache scope cleared",
		zap.String("pattern", pattern),
		zap.Int("removed", n))
	return n
}

func (inv *Invalidator) direct(ctx context.Context, keys ...string) {
	n := inv.store.Delete(ctx, keys...)
	inv.log.Debug("cache keys invalidated",
		zap.Strings("keys", keys),
		zap.Int("removed", n))
}

func (inv *Invalidator) pattern(ctx context.Context, pattern string) {
	n := inv.store.DeleteByPattern(ctx, pattern)
	inv.log.Debug("cache pattern invalidated",
		zap.String("pattern", pattern),
		zap.Int("removed", n))
}
