package store

import (
	"context"
	"strings"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-board-cache/boardcache"
)

// Loaders builds the read models the cache accessors serve. Each method
// returns a boardcache.LoaderFn bound to its identifiers, so call sites
// read as accessor.Board(ctx, p, t, loaders.Board(p, t)).
type Loaders struct {
	db          *bun.DB
	projects    *Records[*Project]
	teams       *Records[*Team]
	columns     *Records[*Column]
	tasks       *Records[*Task]
	categories  *Records[*Category]
	options     *Records[*CategoryOption]
	memberships *Records[*Membership]
	shifts      *Records[*Shift]
}

// NewLoaders builds loaders over db.
func NewLoaders(db *bun.DB) *Loaders {
	return &Loaders{
		db:          db,
		projects:    NewRecords(db, func() *Project { return &Project{} }, "name"),
		teams:       NewRecords(db, func() *Team { return &Team{} }, "name"),
		columns:     NewRecords(db, func() *Column { return &Column{} }, "name"),
		tasks:       NewRecords(db, func() *Task { return &Task{} }, "title"),
		categories:  NewRecords(db, func() *Category { return &Category{} }, "name"),
		options:     NewRecords(db, func() *CategoryOption { return &CategoryOption{} }, "label"),
		memberships: NewRecords(db, func() *Membership { return &Membership{} }, "user_id"),
		shifts:      NewRecords(db, func() *Shift { return &Shift{} }, "user_id"),
	}
}

func byColumn(column, value string) func(*bun.SelectQuery) *bun.SelectQuery {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("? = ?", bun.Ident(column), value)
	}
}

// allRows clears the repository's default page limit. Aggregate loaders
// need every row of their scope, not the first page.
func allRows(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Limit(0).Offset(0)
}

func orderBy(column string) func(*bun.SelectQuery) *bun.SelectQuery {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("? ASC", bun.Ident(column))
	}
}

func splitLabels(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels
}

func taskView(t *Task) boardcache.TaskView {
	return boardcache.TaskView{
		ID:       t.ID,
		Title:    t.Title,
		Assignee: t.Assignee,
		Labels:   splitLabels(t.Labels),
		Position: t.Position,
	}
}

// Board assembles the column and task tree for one project. Columns and
// tasks come back position ordered; the team identifier scopes the cache
// key, the row set is project wide.
func (l *Loaders) Board(projectID, teamID string) boardcache.LoaderFn[boardcache.BoardView] {
	return func(ctx context.Context) (boardcache.BoardView, error) {
		view := boardcache.BoardView{ProjectID: projectID, TeamID: teamID}

		columns, _, err := l.columns.List(ctx, allRows, byColumn("project_id", projectID), orderBy("position"))
		if err != nil {
			return boardcache.BoardView{}, err
		}
		tasks, _, err := l.tasks.List(ctx, allRows, byColumn("project_id", projectID), orderBy("position"))
		if err != nil {
			return boardcache.BoardView{}, err
		}

		tasksByColumn := make(map[string][]boardcache.TaskView, len(columns))
		for _, t := range tasks {
			tasksByColumn[t.ColumnID] = append(tasksByColumn[t.ColumnID], taskView(t))
		}
		for _, c := range columns {
			view.Columns = append(view.Columns, boardcache.ColumnView{
				ID:       c.ID,
				Name:     c.Name,
				Position: c.Position,
				Tasks:    tasksByColumn[c.ID],
			})
		}
		return view, nil
	}
}

// Categories loads a project's category definitions with their ordered
// options.
func (l *Loaders) Categories(projectID string) boardcache.LoaderFn[[]boardcache.CategoryView] {
	return func(ctx context.Context) ([]boardcache.CategoryView, error) {
		return l.loadCategories(ctx, projectID)
	}
}

func (l *Loaders) loadCategories(ctx context.Context, projectID string) ([]boardcache.CategoryView, error) {
	categories, _, err := l.categories.List(ctx, allRows, byColumn("project_id", projectID), orderBy("name"))
	if err != nil {
		return nil, err
	}

	views := make([]boardcache.CategoryView, 0, len(categories))
	for _, cat := range categories {
		options, _, err := l.options.List(ctx, allRows, byColumn("category_id", cat.ID), orderBy("position"))
		if err != nil {
			return nil, err
		}
		view := boardcache.CategoryView{ID: cat.ID, Name: cat.Name}
		for _, o := range options {
			view.Options = append(view.Options, boardcache.CategoryOption{
				ID:       o.ID,
				Label:    o.Label,
				Position: o.Position,
			})
		}
		views = append(views, view)
	}
	return views, nil
}

// UserTeams loads the teams one user belongs to.
func (l *Loaders) UserTeams(userID string) boardcache.LoaderFn[[]boardcache.TeamView] {
	return func(ctx context.Context) ([]boardcache.TeamView, error) {
		memberships, _, err := l.memberships.List(ctx, allRows, byColumn("user_id", userID))
		if err != nil {
			return nil, err
		}

		views := make([]boardcache.TeamView, 0, len(memberships))
		for _, m := range memberships {
			team, err := l.teams.GetByID(ctx, m.TeamID)
			if err != nil {
				return nil, err
			}
			views = append(views, boardcache.TeamView{
				ID:        team.ID,
				Name:      team.Name,
				ProjectID: team.ProjectID,
			})
		}
		return views, nil
	}
}

// UserShifts loads one user's schedule ordered by start time.
func (l *Loaders) UserShifts(userID string) boardcache.LoaderFn[[]boardcache.ShiftView] {
	return func(ctx context.Context) ([]boardcache.ShiftView, error) {
		shifts, _, err := l.shifts.List(ctx, allRows, byColumn("user_id", userID), orderBy("starts_at"))
		if err != nil {
			return nil, err
		}

		views := make([]boardcache.ShiftView, 0, len(shifts))
		for _, s := range shifts {
			views = append(views, boardcache.ShiftView{
				ID:       s.ID,
				StartsAt: s.StartsAt,
				EndsAt:   s.EndsAt,
			})
		}
		return views, nil
	}
}

// UserProjects loads the projects a user can reach, each with the teams
// granting the access.
func (l *Loaders) UserProjects(userID string) boardcache.LoaderFn[[]boardcache.ProjectAccessView] {
	return func(ctx context.Context) ([]boardcache.ProjectAccessView, error) {
		memberships, _, err := l.memberships.List(ctx, allRows, byColumn("user_id", userID))
		if err != nil {
			return nil, err
		}

		byProject := make(map[string]*boardcache.ProjectAccessView)
		order := make([]string, 0)
		for _, m := range memberships {
			team, err := l.teams.GetByID(ctx, m.TeamID)
			if err != nil {
				return nil, err
			}
			view, ok := byProject[team.ProjectID]
			if !ok {
				project, err := l.projects.GetByID(ctx, team.ProjectID)
				if err != nil {
					return nil, err
				}
				view = &boardcache.ProjectAccessView{ProjectID: project.ID, Name: project.Name}
				byProject[team.ProjectID] = view
				order = append(order, team.ProjectID)
			}
			view.Teams = append(view.Teams, boardcache.TeamView{
				ID:        team.ID,
				Name:      team.Name,
				ProjectID: team.ProjectID,
			})
		}

		views := make([]boardcache.ProjectAccessView, 0, len(order))
		for _, id := range order {
			views = append(views, *byProject[id])
		}
		return views, nil
	}
}

// TeamMembers loads the roster for one team.
func (l *Loaders) TeamMembers(teamID string) boardcache.LoaderFn[[]boardcache.MemberView] {
	return func(ctx context.Context) ([]boardcache.MemberView, error) {
		memberships, _, err := l.memberships.List(ctx, allRows, byColumn("team_id", teamID), orderBy("display_name"))
		if err != nil {
			return nil, err
		}

		views := make([]boardcache.MemberView, 0, len(memberships))
		for _, m := range memberships {
			views = append(views, boardcache.MemberView{
				UserID:      m.UserID,
				DisplayName: m.DisplayName,
				Role:        m.Role,
			})
		}
		return views, nil
	}
}

// Dashboard aggregates the landing view for one user: every reachable
// project with its full category detail.
func (l *Loaders) Dashboard(userID string) boardcache.LoaderFn[boardcache.DashboardView] {
	return func(ctx context.Context) (boardcache.DashboardView, error) {
		memberships, _, err := l.memberships.List(ctx, allRows, byColumn("user_id", userID))
		if err != nil {
			return boardcache.DashboardView{}, err
		}

		view := boardcache.DashboardView{UserID: userID}
		seen := make(map[string]bool)
		for _, m := range memberships {
			if seen[m.ProjectID] {
				continue
			}
			seen[m.ProjectID] = true

			project, err := l.projects.GetByID(ctx, m.ProjectID)
			if err != nil {
				return boardcache.DashboardView{}, err
			}
			categories, err := l.loadCategories(ctx, m.ProjectID)
			if err != nil {
				return boardcache.DashboardView{}, err
			}
			view.Projects = append(view.Projects, boardcache.ProjectSummary{
				ProjectID:  project.ID,
				Name:       project.Name,
				Categories: categories,
			})
		}
		return view, nil
	}
}

// TaskDetails loads the expanded view of one task.
func (l *Loaders) TaskDetails(taskID string) boardcache.LoaderFn[boardcache.TaskDetailView] {
	return func(ctx context.Context) (boardcache.TaskDetailView, error) {
		task, err := l.tasks.GetByID(ctx, taskID)
		if err != nil {
			return boardcache.TaskDetailView{}, err
		}
		return boardcache.TaskDetailView{
			ID:          task.ID,
			ColumnID:    task.ColumnID,
			ProjectID:   task.ProjectID,
			Title:       task.Title,
			Description: task.Description,
			Assignee:    task.Assignee,
			Labels:      splitLabels(task.Labels),
		}, nil
	}
}

// ColumnData loads one column with its ordered tasks.
func (l *Loaders) ColumnData(columnID string) boardcache.LoaderFn[boardcache.ColumnView] {
	return func(ctx context.Context) (boardcache.ColumnView, error) {
		column, err := l.columns.GetByID(ctx, columnID)
		if err != nil {
			return boardcache.ColumnView{}, err
		}
		tasks, _, err := l.tasks.List(ctx, allRows, byColumn("column_id", columnID), orderBy("position"))
		if err != nil {
			return boardcache.ColumnView{}, err
		}

		view := boardcache.ColumnView{ID: column.ID, Name: column.Name, Position: column.Position}
		for _, t := range tasks {
			view.Tasks = append(view.Tasks, taskView(t))
		}
		return view, nil
	}
}
