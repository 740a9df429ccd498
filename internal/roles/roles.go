// Package roles derives a coarse access role from account data.
//
// The derivation is a heuristic inherited from the existing system: roles
// are inferred from the superuser flag and substrings of the email address.
// Downstream authorization depends on the exact precedence, so it must not
// be reordered. The Resolver interface exists so a proper role-assignment
// table can replace the heuristic without touching callers.
package roles

import "strings"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDoctor    Role = "doctor"
	RoleSecretary Role = "secretary"
	RolePatient   Role = "patient"
	RoleUser      Role = "user"
)

type Kind string

const (
	KindStaff   Kind = "staff"
	KindPatient Kind = "patient"
)

type Resolver interface {
	Resolve(isSuperuser bool, email string) Role
}

type Heuristic struct{}

// Resolve applies the observed precedence, first match wins.
func (Heuristic) Resolve(isSuperuser bool, email string) Role {
	lower := strings.ToLower(email)
	switch {
	case isSuperuser:
		return RoleAdmin
	case strings.Contains(lower, "doctor"):
		return RoleDoctor
	case strings.Contains(lower, "secretary"):
		return RoleSecretary
	case strings.Contains(lower, "patient"):
		return RolePatient
	default:
		return RoleUser
	}
}

// KindFor buckets a role into the staff/patient split used by the portals.
func KindFor(role Role) Kind {
	if role == RolePatient {
		return KindPatient
	}
	return KindStaff
}
