package repositories

import (
	"tourcrm/internal/models"
)

// TourFilter: Status is "active" or "inactive".
type TourFilter struct {
	Search     string `form:"q"`
	Status     string `form:"status"`
	Difficulty string `form:"difficulty"`
}

func (f TourFilter) Query() Query[models.Tour] {
	return Query[models.Tour]{
		Search: f.Search,
		Fields: func(t models.Tour) []string {
			fields := []string{t.Name, t.Location}
			return append(fields, t.Tags...)
		},
		Filters: []Predicate[models.Tour]{
			Equals(f.Status, tourState),
			Equals(f.Difficulty, func(t models.Tour) string { return string(t.Difficulty) }),
		},
	}
}

func tourState(t models.Tour) string {
	if t.Active {
		return "active"
	}
	return "inactive"
}
