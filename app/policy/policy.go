// Package policy gates workflow operations by the caller's role. Every
// predicate is pure and fails closed: an empty or unknown role grants nothing.
package policy

import "death-registry/app/models"

// ValidRole reports whether role is one of the accepted tiers.
func ValidRole(role string) bool {
	switch role {
	case models.RoleUser, models.RoleScheduler, models.RoleAdmin:
		return true
	}
	return false
}

// CanDirectlyPublish reports whether a submission by this role skips review.
func CanDirectlyPublish(role string) bool { return role == models.RoleAdmin }

// CanDecideApproval reports whether this role may approve or reject a
// pending record.
func CanDecideApproval(role string) bool { return role == models.RoleAdmin }

// CanListAllDeaths reports whether this role may list every record
// regardless of status.
func CanListAllDeaths(role string) bool { return role == models.RoleAdmin }
