package authz

import "tourcrm/internal/models"

// IsElevated roles manage the team, billing and workspace settings.
func IsElevated(role models.Role) bool {
	return role == models.RoleOwner || role == models.RoleAdmin
}

// IsReadOnly roles may look at every view but change nothing.
func IsReadOnly(role models.Role) bool {
	return role == models.RoleViewer
}

func CanEditRecords(role models.Role) bool {
	return role.Valid() && !IsReadOnly(role)
}
