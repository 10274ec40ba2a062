package authz

import (
	"testing"

	"tourcrm/internal/models"
)

func TestRoleMatrix(t *testing.T) {
	tests := []struct {
		role     models.Role
		elevated bool
		readOnly bool
		edit     bool
	}{
		{models.RoleOwner, true, false, true},
		{models.RoleAdmin, true, false, true},
		{models.RoleAgent, false, false, true},
		{models.RoleViewer, false, true, false},
		{"Guide", false, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := IsElevated(tt.role); got != tt.elevated {
				t.Errorf("IsElevated = %v", got)
			}
			if got := IsReadOnly(tt.role); got != tt.readOnly {
				t.Errorf("IsReadOnly = %v", got)
			}
			if got := CanEditRecords(tt.role); got != tt.edit {
				t.Errorf("CanEditRecords = %v", got)
			}
		})
	}
}
