package cache

import "time"

// DefaultTTL applies to resources without an explicit policy entry.
const DefaultTTL = 5 * time.Minute

// Policy maps a resource type to the lifetime of its cached entries. The
// table is fixed at construction time and treated as immutable for the
// process lifetime; the TTL is enforced by the backend store, not tracked by
// the application.
type Policy map[Resource]time.Duration

// DefaultPolicy returns the standard TTL table. Aggregates that change with
// every board interaction get short lifetimes; membership and session data
// changes rarely and can ride longer ones.
func DefaultPolicy() Policy {
	return Policy{
		ResourceBoard:        5 * time.Minute,
		ResourceCategories:   10 * time.Minute,
		ResourceUserTeams:    15 * time.Minute,
		ResourceUserShifts:   15 * time.Minute,
		ResourceUserProjects: 5 * time.Minute,
		ResourceTeamMembers:  10 * time.Minute,
		ResourceDashboard:    5 * time.Minute,
		ResourceTaskDetails:  2 * time.Minute,
		ResourceColumnData:   2 * time.Minute,
		ResourceUserSession:  30 * time.Minute,
	}
}

// TTL returns the configured lifetime for resource, falling back to
// DefaultTTL when the resource has no entry or a non-positive one.
func (p Policy) TTL(resource Resource) time.Duration {
	if ttl, ok := p[resource]; ok && ttl > 0 {
		return ttl
	}
	return DefaultTTL
}
