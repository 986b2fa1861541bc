package boardcache

import (
	"context"

	"github.com/goliatone/go-board-cache/cache"
)

// Typed entry points for each cacheable resource. These pin the key shape
// per resource so call sites cannot mix up part ordering.

// Board returns the board for one project and team.
func (a *Accessor) Board(ctx context.Context, projectID, teamID string, load LoaderFn[BoardView]) (BoardView, error) {
	return GetOrLoad(ctx, a, cache.ResourceBoard, []string{projectID, teamID}, load)
}

// Categories returns the category definitions for one project.
func (a *Accessor) Categories(ctx context.Context, projectID string, load LoaderFn[[]CategoryView]) ([]CategoryView, error) {
	return GetOrLoad(ctx, a, cache.ResourceCategories, []string{projectID}, load)
}

// UserTeams returns the teams one user belongs to.
func (a *Accessor) UserTeams(ctx context.Context, userID string, load LoaderFn[[]TeamView]) ([]TeamView, error) {
	return GetOrLoad(ctx, a, cache.ResourceUserTeams, []string{userID}, load)
}

// UserShifts returns one user's scheduled shifts.
func (a *Accessor) UserShifts(ctx context.Context, userID string, load LoaderFn[[]ShiftView]) ([]ShiftView, error) {
	return GetOrLoad(ctx, a, cache.ResourceUserShifts, []string{userID}, load)
}

// UserProjects returns the projects one user can reach. Snapshots whose
// rows lost their team detail are evicted and reloaded.
func (a *Accessor) UserProjects(ctx context.Context, userID string, load LoaderFn[[]ProjectAccessView]) ([]ProjectAccessView, error) {
	return GetOrLoadChecked(ctx, a, cache.ResourceUserProjects, []string{userID}, hasTeamDetail, load)
}

// TeamMembers returns the member roster for one team.
func (a *Accessor) TeamMembers(ctx context.Context, teamID string, load LoaderFn[[]MemberView]) ([]MemberView, error) {
	return GetOrLoad(ctx, a, cache.ResourceTeamMembers, []string{teamID}, load)
}

// Dashboard returns the aggregate landing view for one user. Degenerate
// snapshots, present but missing category detail, are evicted and reloaded.
func (a *Accessor) Dashboard(ctx context.Context, userID string, load LoaderFn[DashboardView]) (DashboardView, error) {
	return GetOrLoadChecked(ctx, a, cache.ResourceDashboard, []string{userID}, DashboardView.Complete, load)
}

// TaskDetails returns the expanded view of one task.
func (a *Accessor) TaskDetails(ctx context.Context, taskID string, load LoaderFn[TaskDetailView]) (TaskDetailView, error) {
	return GetOrLoad(ctx, a, cache.ResourceTaskDetails, []string{taskID}, load)
}

// ColumnData returns one column with its tasks.
func (a *Accessor) ColumnData(ctx context.Context, columnID string, load LoaderFn[ColumnView]) (ColumnView, error) {
	return GetOrLoad(ctx, a, cache.ResourceColumnData, []string{columnID}, load)
}

// UserSession returns the cached session context for one user.
func (a *Accessor) UserSession(ctx context.Context, userID string, load LoaderFn[SessionView]) (SessionView, error) {
	return GetOrLoad(ctx, a, cache.ResourceUserSession, []string{userID}, load)
}
