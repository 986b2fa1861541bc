package cache

import "strings"

// Resource identifies a family of cached read views. The string value is the
// fixed key prefix for that family; prefixes never change once issued because
// invalidation patterns are built from them.
type Resource string

const (
	ResourceBoard        Resource = "board"
	ResourceCategories   Resource = "categories"
	ResourceUserTeams    Resource = "user-teams"
	ResourceUserShifts   Resource = "user-shifts"
	ResourceUserProjects Resource = "user-projects"
	ResourceTeamMembers  Resource = "team-members"
	ResourceDashboard    Resource = "dashboard"
	ResourceTaskDetails  Resource = "task-details"
	ResourceColumnData   Resource = "column-data"
	ResourceUserSession  Resource = "user-session"
)

// KeySeparator delimits the prefix and identifying parts of a cache key.
const KeySeparator = ":"

// BuildKey joins a resource prefix with its identifying parts using the fixed
// separator. It is a pure function: the same inputs produce the same key
// across calls and across process restarts. Part order is fixed per resource
// type and parts must not contain the separator; callers use opaque
// identifiers (UUIDs) as parts.
func BuildKey(resource Resource, parts ...string) string {
	if len(parts) == 0 {
		return string(resource)
	}
	return string(resource) + KeySeparator + strings.Join(parts, KeySeparator)
}

// Pattern returns the glob that matches every key of resource scoped under
// the given leading parts. Pattern(ResourceBoard, "p1") yields "board:p1:*",
// matching the board of every team in project p1.
func Pattern(resource Resource, parts ...string) string {
	return BuildKey(resource, parts...) + KeySeparator + "*"
}
