package models

import "time"

// Role of a workspace member; the authz package maps roles to permissions.
type Role string

const (
	RoleOwner  Role = "Owner"
	RoleAdmin  Role = "Admin"
	RoleAgent  Role = "Agent"
	RoleViewer Role = "Viewer"
)

var Roles = []Role{RoleOwner, RoleAdmin, RoleAgent, RoleViewer}

func (r Role) Valid() bool {
	for _, v := range Roles {
		if r == v {
			return true
		}
	}
	return false
}

type MemberStatus string

const (
	MemberActive  MemberStatus = "Active"
	MemberInvited MemberStatus = "Invited"
)

func (s MemberStatus) Valid() bool {
	return s == MemberActive || s == MemberInvited
}

type TeamMember struct {
	ID        string       `json:"id"`
	Name      string       `json:"name" validate:"required,notblank"`
	Email     string       `json:"email" validate:"required,email"`
	Role      Role         `json:"role" validate:"required,enum"`
	Status    MemberStatus `json:"status" validate:"required,enum"`
	InvitedAt time.Time    `json:"invited_at,omitempty"`
}

func (m TeamMember) EntityID() string { return m.ID }

func (m TeamMember) WithID(id string) TeamMember {
	m.ID = id
	return m
}

func (m TeamMember) Clone() TeamMember { return m }

func (m TeamMember) EntityStatus() MemberStatus { return m.Status }

func (m TeamMember) WithStatus(s MemberStatus) TeamMember {
	m.Status = s
	return m
}

type InviteRequest struct {
	Name  string `json:"name" validate:"required,notblank"`
	Email string `json:"email" validate:"required,email"`
	Role  Role   `json:"role" validate:"required,enum"`
}
