package repositories

import "tourcrm/internal/models"

type BookingFilter struct {
	Search string `form:"q"`
	Status string `form:"status"`
	Tour   string `form:"tour"`
}

func (f BookingFilter) Query() Query[models.Booking] {
	return Query[models.Booking]{
		Search: f.Search,
		Fields: func(b models.Booking) []string {
			return []string{b.ID, b.ClientName, b.TourName, b.Pickup}
		},
		Filters: []Predicate[models.Booking]{
			Equals(f.Status, func(b models.Booking) string { return string(b.Status) }),
			Equals(f.Tour, func(b models.Booking) string { return b.TourName }),
		},
	}
}
