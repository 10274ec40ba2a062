package services

import "tourcrm/internal/models"

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type ReportSummary struct {
	LeadsByStatus    []StatusCount `json:"leads_by_status"`
	BookingsByStatus []StatusCount `json:"bookings_by_status"`
	TotalPax         int           `json:"total_pax"`
	ActiveTours      int           `json:"active_tours"`
	CatalogRevenue   float64       `json:"catalog_revenue"`
	CatalogBookings  int           `json:"catalog_bookings"`
	UnreadMessages   int           `json:"unread_messages"`
	LeadConversion   float64       `json:"lead_conversion"`
}

type ReportService struct {
	leads    *LeadService
	bookings *BookingService
	tours    *TourService
	inbox    *InboxService
}

func NewReportService(leads *LeadService, bookings *BookingService, tours *TourService, inbox *InboxService) *ReportService {
	return &ReportService{leads: leads, bookings: bookings, tours: tours, inbox: inbox}
}

// Summary is computed from the current view collections on every call.
// Cancelled bookings are left out of the pax total.
func (s *ReportService) Summary() ReportSummary {
	var r ReportSummary

	leads := s.leads.All()
	leadCounts := map[models.LeadStatus]int{}
	for _, l := range leads {
		leadCounts[l.Status]++
	}
	for _, st := range models.LeadStatuses {
		r.LeadsByStatus = append(r.LeadsByStatus, StatusCount{Status: string(st), Count: leadCounts[st]})
	}
	if len(leads) > 0 {
		r.LeadConversion = float64(leadCounts[models.LeadBooked]) / float64(len(leads))
	}

	bookingCounts := map[models.BookingStatus]int{}
	for _, b := range s.bookings.All() {
		bookingCounts[b.Status]++
		if b.Status != models.BookingCancelled {
			r.TotalPax += b.Pax
		}
	}
	for _, st := range models.BookingStatuses {
		r.BookingsByStatus = append(r.BookingsByStatus, StatusCount{Status: string(st), Count: bookingCounts[st]})
	}

	for _, t := range s.tours.All() {
		if t.Active {
			r.ActiveTours++
		}
		r.CatalogRevenue += t.Analytics.Revenue
		r.CatalogBookings += t.Analytics.Bookings
	}
	if s.inbox != nil {
		r.UnreadMessages = s.inbox.UnreadTotal()
	}
	return r
}
