package services

import (
	"testing"

	"tourcrm/internal/mockdata"
)

func TestReportSummary(t *testing.T) {
	leads, bookings, _ := newLeadFixture()
	tours := NewTourService(mockdata.Tours(), nil)
	inbox := NewInboxService(mockdata.Conversations(fixedNow), nil)

	r := NewReportService(leads, bookings, tours, inbox).Summary()

	if r.TotalPax != 13 {
		t.Errorf("total pax = %d, want 13", r.TotalPax)
	}
	if r.ActiveTours != 4 {
		t.Errorf("active tours = %d, want 4", r.ActiveTours)
	}
	if r.CatalogRevenue != 30154 {
		t.Errorf("revenue = %v", r.CatalogRevenue)
	}
	if r.UnreadMessages != 3 {
		t.Errorf("unread = %d", r.UnreadMessages)
	}
	if r.LeadsByStatus[0].Status != "New" || r.LeadsByStatus[0].Count != 2 {
		t.Errorf("leads by status = %+v", r.LeadsByStatus)
	}
	if r.BookingsByStatus[1].Status != "Confirmed" || r.BookingsByStatus[1].Count != 1 {
		t.Errorf("bookings by status = %+v", r.BookingsByStatus)
	}
}
