package store

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-board-cache/boardcache"
)

// Mutations are the write paths of the dashboard. Each method commits its
// change and then invalidates the affected cache entries synchronously, so
// the response returns only after the stale state is gone. Invalidation
// itself cannot fail the mutation.
type Mutations struct {
	projects    *Records[*Project]
	teams       *Records[*Team]
	columns     *Records[*Column]
	tasks       *Records[*Task]
	categories  *Records[*Category]
	options     *Records[*CategoryOption]
	memberships *Records[*Membership]
	shifts      *Records[*Shift]
	inv         *boardcache.Invalidator
}

// NewMutations builds the write paths over db, invalidating through inv.
func NewMutations(db *bun.DB, inv *boardcache.Invalidator) *Mutations {
	return &Mutations{
		projects:    NewRecords(db, func() *Project { return &Project{} }, "name"),
		teams:       NewRecords(db, func() *Team { return &Team{} }, "name"),
		columns:     NewRecords(db, func() *Column { return &Column{} }, "name"),
		tasks:       NewRecords(db, func() *Task { return &Task{} }, "title"),
		categories:  NewRecords(db, func() *Category { return &Category{} }, "name"),
		options:     NewRecords(db, func() *CategoryOption { return &CategoryOption{} }, "label"),
		memberships: NewRecords(db, func() *Membership { return &Membership{} }, "user_id"),
		shifts:      NewRecords(db, func() *Shift { return &Shift{} }, "user_id"),
		inv:         inv,
	}
}

// WithInvalidator attaches the cache invalidator. Mutations run without one
// for setups that skip the cache entirely.
func (m *Mutations) WithInvalidator(inv *boardcache.Invalidator) *Mutations {
	m.inv = inv
	return m
}

func (m *Mutations) taskChanged(ctx context.Context, task *Task) {
	if m.inv != nil {
		m.inv.TaskChanged(ctx, task.ProjectID, "", task.ColumnID, task.ID)
	}
}

// CreateTask inserts a task and stales its board family, column, and
// detail entries.
func (m *Mutations) CreateTask(ctx context.Context, task *Task) (*Task, error) {
	if task.ID == "" {
		task.ID = NewID()
	}
	created, err := m.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	m.taskChanged(ctx, created)
	return created, nil
}

// UpdateTask persists field edits on a task.
func (m *Mutations) UpdateTask(ctx context.Context, task *Task) (*Task, error) {
	updated, err := m.tasks.Update(ctx, task)
	if err != nil {
		return nil, err
	}
	m.taskChanged(ctx, updated)
	return updated, nil
}

// MoveTask relocates a task to another column and position. Both the old
// and the new column snapshots go stale.
func (m *Mutations) MoveTask(ctx context.Context, taskID, toColumnID string, position int) (*Task, error) {
	task, err := m.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	fromColumnID := task.ColumnID

	task.ColumnID = toColumnID
	task.Position = position
	// Explicit SET clauses so a move to position zero persists; the default
	// update path omits zero-valued fields.
	moved, err := m.tasks.Update(ctx, task, func(q *bun.UpdateQuery) *bun.UpdateQuery {
		return q.Set("column_id = ?", toColumnID).Set("position = ?", position)
	})
	if err != nil {
		return nil, err
	}

	m.taskChanged(ctx, moved)
	if m.inv != nil && fromColumnID != toColumnID {
		m.inv.TaskChanged(ctx, moved.ProjectID, "", fromColumnID, moved.ID)
	}
	return moved, nil
}

// DeleteTask removes a task.
func (m *Mutations) DeleteTask(ctx context.Context, taskID string) error {
	task, err := m.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if err := m.tasks.Delete(ctx, task); err != nil {
		return err
	}
	m.taskChanged(ctx, task)
	return nil
}

// CreateColumn inserts a column and stales the project's board family.
func (m *Mutations) CreateColumn(ctx context.Context, column *Column) (*Column, error) {
	if column.ID == "" {
		column.ID = NewID()
	}
	created, err := m.columns.Create(ctx, column)
	if err != nil {
		return nil, err
	}
	if m.inv != nil {
		m.inv.ColumnChanged(ctx, created.ProjectID, created.ID)
	}
	return created, nil
}

// UpdateColumn persists a rename or reorder.
func (m *Mutations) UpdateColumn(ctx context.Context, column *Column) (*Column, error) {
	updated, err := m.columns.Update(ctx, column)
	if err != nil {
		return nil, err
	}
	if m.inv != nil {
		m.inv.ColumnChanged(ctx, updated.ProjectID, updated.ID)
	}
	return updated, nil
}

// DeleteColumn removes a column and its tasks.
func (m *Mutations) DeleteColumn(ctx context.Context, columnID string) error {
	column, err := m.columns.GetByID(ctx, columnID)
	if err != nil {
		return err
	}
	if err := m.tasks.DeleteWhere(ctx, func(q *bun.DeleteQuery) *bun.DeleteQuery {
		return q.Where("column_id = ?", columnID)
	}); err != nil {
		return err
	}
	if err := m.columns.Delete(ctx, column); err != nil {
		return err
	}
	if m.inv != nil {
		m.inv.ColumnChanged(ctx, column.ProjectID, column.ID)
	}
	return nil
}

// UpsertCategory writes a category definition and stales the project's
// category entry plus every dashboard embedding it.
func (m *Mutations) UpsertCategory(ctx context.Context, category *Category) (*Category, error) {
	if category.ID == "" {
		category.ID = NewID()
	}
	saved, err := m.categories.Upsert(ctx, category)
	if err != nil {
		return nil, err
	}
	if m.inv != nil {
		m.inv.CategoriesChanged(ctx, saved.ProjectID)
	}
	return saved, nil
}

// UpsertCategoryOption writes one option row under a category.
func (m *Mutations) UpsertCategoryOption(ctx context.Context, projectID string, option *CategoryOption) (*CategoryOption, error) {
	if option.ID == "" {
		option.ID = NewID()
	}
	saved, err := m.options.Upsert(ctx, option)
	if err != nil {
		return nil, err
	}
	if m.inv != nil {
		m.inv.CategoriesChanged(ctx, projectID)
	}
	return saved, nil
}

// AddMember enrolls a user in a team and stales everything derived from
// the membership graph.
func (m *Mutations) AddMember(ctx context.Context, membership *Membership) (*Membership, error) {
	if membership.ID == "" {
		membership.ID = NewID()
	}
	created, err := m.memberships.Create(ctx, membership)
	if err != nil {
		return nil, err
	}
	if m.inv != nil {
		m.inv.MembershipChanged(ctx, created.UserID, created.TeamID)
	}
	return created, nil
}

// RemoveMember withdraws a user from a team.
func (m *Mutations) RemoveMember(ctx context.Context, userID, teamID string) error {
	if err := m.memberships.DeleteWhere(ctx, func(q *bun.DeleteQuery) *bun.DeleteQuery {
		return q.Where("user_id = ?", userID).Where("team_id = ?", teamID)
	}); err != nil {
		return err
	}
	if m.inv != nil {
		m.inv.MembershipChanged(ctx, userID, teamID)
	}
	return nil
}

// SaveShift writes one schedule entry and stales the user's shift list.
func (m *Mutations) SaveShift(ctx context.Context, shift *Shift) (*Shift, error) {
	if shift.ID == "" {
		shift.ID = NewID()
	}
	saved, err := m.shifts.Upsert(ctx, shift)
	if err != nil {
		return nil, err
	}
	if m.inv != nil {
		m.inv.ShiftsChanged(ctx, saved.UserID)
	}
	return saved, nil
}
