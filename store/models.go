package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewID returns a fresh record identifier.
func NewID() string { return uuid.NewString() }

// Project is a top-level workspace.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:p"`

	ID   string `bun:"id,pk" json:"id"`
	Name string `bun:"name,notnull" json:"name"`
}

// Team is a group of users working inside one project.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:tm"`

	ID        string `bun:"id,pk" json:"id"`
	ProjectID string `bun:"project_id,notnull" json:"project_id"`
	Name      string `bun:"name,notnull" json:"name"`
}

// Column is one ordered lane on a project board.
type Column struct {
	bun.BaseModel `bun:"table:columns,alias:c"`

	ID        string `bun:"id,pk" json:"id"`
	ProjectID string `bun:"project_id,notnull" json:"project_id"`
	Name      string `bun:"name,notnull" json:"name"`
	Position  int    `bun:"position,notnull" json:"position"`
}

// Task is one card inside a column. Labels are stored comma separated so
// the row shape stays portable across the supported drivers.
type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:t"`

	ID          string `bun:"id,pk" json:"id"`
	ColumnID    string `bun:"column_id,notnull" json:"column_id"`
	ProjectID   string `bun:"project_id,notnull" json:"project_id"`
	Title       string `bun:"title,notnull" json:"title"`
	Description string `bun:"description" json:"description"`
	Assignee    string `bun:"assignee" json:"assignee"`
	Labels      string `bun:"labels" json:"labels"`
	Position    int    `bun:"position,notnull" json:"position"`
	DueDate     string `bun:"due_date" json:"due_date"`
}

// Category is a project-level classification.
type Category struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`

	ID        string `bun:"id,pk" json:"id"`
	ProjectID string `bun:"project_id,notnull" json:"project_id"`
	Name      string `bun:"name,notnull" json:"name"`
}

// CategoryOption is one selectable value inside a category.
type CategoryOption struct {
	bun.BaseModel `bun:"table:category_options,alias:co"`

	ID         string `bun:"id,pk" json:"id"`
	CategoryID string `bun:"category_id,notnull" json:"category_id"`
	Label      string `bun:"label,notnull" json:"label"`
	Position   int    `bun:"position,notnull" json:"position"`
}

// Membership ties a user to a team. DisplayName and Role are denormalized
// onto the row because the roster view is the only consumer.
type Membership struct {
	bun.BaseModel `bun:"table:memberships,alias:m"`

	ID          string `bun:"id,pk" json:"id"`
	UserID      string `bun:"user_id,notnull" json:"user_id"`
	TeamID      string `bun:"team_id,notnull" json:"team_id"`
	ProjectID   string `bun:"project_id,notnull" json:"project_id"`
	DisplayName string `bun:"display_name" json:"display_name"`
	Role        string `bun:"role" json:"role"`
}

// Shift is one scheduled working window for a user.
type Shift struct {
	bun.BaseModel `bun:"table:shifts,alias:s"`

	ID       string    `bun:"id,pk" json:"id"`
	UserID   string    `bun:"user_id,notnull" json:"user_id"`
	StartsAt time.Time `bun:"starts_at,notnull" json:"starts_at"`
	EndsAt   time.Time `bun:"ends_at,notnull" json:"ends_at"`
}
