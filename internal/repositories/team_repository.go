package repositories

import "tourcrm/internal/models"

type MemberFilter struct {
	Search string `form:"q"`
	Status string `form:"status"`
	Role   string `form:"role"`
}

func (f MemberFilter) Query() Query[models.TeamMember] {
	return Query[models.TeamMember]{
		Search: f.Search,
		Fields: func(m models.TeamMember) []string { return []string{m.Name, m.Email} },
		Filters: []Predicate[models.TeamMember]{
			Equals(f.Status, func(m models.TeamMember) string { return string(m.Status) }),
			Equals(f.Role, func(m models.TeamMember) string { return string(m.Role) }),
		},
	}
}
