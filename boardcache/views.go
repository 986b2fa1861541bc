package boardcache

import "time"

// View types are the cacheable read models served to the dashboard. They
// carry only what a render needs, with empty collections and blank optional
// fields dropped from the wire form by the codec.

// TaskView is one card on a board column.
type TaskView struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Assignee string   `json:"assignee,omitempty"`
	Labels   []string `json:"labels,omitempty"`
	Position int      `json:"position"`
}

// ColumnView is one ordered column with its tasks.
type ColumnView struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Position int        `json:"position"`
	Tasks    []TaskView `json:"tasks,omitempty"`
}

// BoardView is the full board for one project and team.
type BoardView struct {
	ProjectID string       `json:"project_id"`
	TeamID    string       `json:"team_id"`
	Columns   []ColumnView `json:"columns,omitempty"`
}

// CategoryOption is one selectable value inside a category.
type CategoryOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Position int    `json:"position"`
}

// CategoryView is a project-level classification with its options.
type CategoryView struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Options []CategoryOption `json:"options,omitempty"`
}

// TeamView is one team a user belongs to.
type TeamView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
}

// ShiftView is one scheduled working window for a user.
type ShiftView struct {
	ID       string    `json:"id"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// MemberView is one member of a team.
type MemberView struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role,omitempty"`
}

// ProjectSummary is one project row on a user's dashboard, including the
// project's category detail.
type ProjectSummary struct {
	ProjectID  string         `json:"project_id"`
	Name       string         `json:"name"`
	Categories []CategoryView `json:"categories,omitempty"`
}

// DashboardView is the aggregate landing view for one user.
type DashboardView struct {
	UserID   string           `json:"user_id"`
	Projects []ProjectSummary `json:"projects,omitempty"`
}

// Complete reports whether the snapshot carries real detail. A dashboard
// with projects but no category detail anywhere is a degenerate shape
// produced by a partially failed aggregation and must not be served from
// cache.
func (v DashboardView) Complete() bool {
	if len(v.Projects) == 0 {
		return false
	}
	for _, p := range v.Projects {
		if len(p.Categories) > 0 {
			return true
		}
	}
	return false
}

// ProjectAccessView is one project a user can reach, with the teams that
// grant the access.
type ProjectAccessView struct {
	ProjectID string     `json:"project_id"`
	Name      string     `json:"name"`
	Teams     []TeamView `json:"teams,omitempty"`
}

// hasTeamDetail reports whether every project row still carries its team
// detail. Rows stripped of teams indicate a partial aggregation.
func hasTeamDetail(views []ProjectAccessView) bool {
	if len(views) == 0 {
		return false
	}
	for _, v := range views {
		if len(v.Teams) == 0 {
			return false
		}
	}
	return true
}

// TaskDetailView is the expanded single-task view.
type TaskDetailView struct {
	ID          string     `json:"id"`
	ColumnID    string     `json:"column_id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Assignee    string     `json:"assignee,omitempty"`
	Labels      []string   `json:"labels,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// SessionView is the cached session context for one user.
type SessionView struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}
