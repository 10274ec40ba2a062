package repositories

import "tourcrm/internal/models"

// LeadFilter mirrors the controls above the lead table and board.
type LeadFilter struct {
	Search  string `form:"q"`
	Status  string `form:"status"`
	Channel string `form:"channel"`
}

func (f LeadFilter) Query() Query[models.Lead] {
	return Query[models.Lead]{
		Search: f.Search,
		Fields: func(l models.Lead) []string {
			return []string{l.Name, l.Email, l.Phone, l.TourInterest}
		},
		Filters: []Predicate[models.Lead]{
			Equals(f.Status, func(l models.Lead) string { return string(l.Status) }),
			Equals(f.Channel, func(l models.Lead) string { return string(l.Channel) }),
		},
	}
}
