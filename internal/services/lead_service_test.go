package services

import (
	"sync"
	"testing"
	"time"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/mockdata"
	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
)

func newLeadFixture() (*LeadService, *BookingService, *recordingNotifier) {
	n := &recordingNotifier{}
	bookings := NewBookingService(mockdata.Bookings(), n, &fakeVouchers{}, "Silk Road Travel")
	leads := NewLeadService(mockdata.Leads(fixedNow), bookings, n)
	leads.now = func() time.Time { return fixedNow }
	return leads, bookings, n
}

func TestLeadListFilters(t *testing.T) {
	leads, _, _ := newLeadFixture()

	tests := []struct {
		name   string
		filter repositories.LeadFilter
		want   []string
	}{
		{"all", repositories.LeadFilter{}, []string{"L-1001", "L-1002", "L-1003", "L-1004", "L-1005", "L-1006"}},
		{"search email", repositories.LeadFilter{Search: "LAURENT"}, []string{"L-1003"}},
		{"status", repositories.LeadFilter{Status: "New"}, []string{"L-1001", "L-1006"}},
		{"status and channel", repositories.LeadFilter{Status: "new", Channel: "Walk-in"}, []string{"L-1006"}},
		{"tour interest", repositories.LeadFilter{Search: "lake"}, []string{"L-1002", "L-1003"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := leads.List(tt.filter)
			if len(page.Items) != len(tt.want) {
				t.Fatalf("got %d leads, want %d", len(page.Items), len(tt.want))
			}
			for i, id := range tt.want {
				if page.Items[i].ID != id {
					t.Fatalf("item %d = %s, want %s", i, page.Items[i].ID, id)
				}
			}
		})
	}
}

func TestLeadListEmptyState(t *testing.T) {
	leads, _, _ := newLeadFixture()
	page := leads.List(repositories.LeadFilter{Search: "zzz"})
	if !page.Empty() || page.EmptyMessage != `No leads match "zzz"` {
		t.Fatalf("unexpected empty state: %+v", page)
	}
}

func TestLeadActivityLabel(t *testing.T) {
	leads, _, _ := newLeadFixture()
	page := leads.List(repositories.LeadFilter{Search: "Aigerim"})
	if got := page.Items[0].Activity; got != "2 hours ago" {
		t.Fatalf("label = %q", got)
	}
}

func TestLeadCreateDefaultsAndValidation(t *testing.T) {
	leads, _, n := newLeadFixture()

	lead, err := leads.Create(models.Lead{Name: "Nadia Ali", Channel: models.ChannelEmail, Email: "nadia@example.com"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if lead.Status != models.LeadNew || lead.ID == "" || !lead.LastActivity.Equal(fixedNow) {
		t.Fatalf("unexpected lead %+v", lead)
	}
	if n.last() != "Lead Nadia Ali added" {
		t.Fatalf("toast = %q", n.last())
	}

	_, err = leads.Create(models.Lead{Channel: models.ChannelEmail, Email: "not-an-email"})
	ae, ok := apperrors.As(err)
	if !ok || ae.Code != apperrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ae.Fields["name"] == "" || ae.Fields["email"] == "" {
		t.Fatalf("missing field errors: %v", ae.Fields)
	}
	if got := len(leads.All()); got != 7 {
		t.Fatalf("collection size = %d, want 7", got)
	}
}

func TestLeadBlankNameRejected(t *testing.T) {
	leads, _, _ := newLeadFixture()

	_, err := leads.Create(models.Lead{Name: "   ", Channel: models.ChannelEmail})
	ae, ok := apperrors.As(err)
	if !ok || ae.Fields["name"] != "is required" {
		t.Fatalf("expected name field error, got %v", err)
	}
	if _, err := leads.Update("L-1001", models.LeadPatch{Name: strPtr(" \t ")}); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error on update, got %v", err)
	}
	if got := len(leads.All()); got != 6 {
		t.Fatalf("collection size = %d, want 6", got)
	}

	lead, err := leads.Create(models.Lead{Name: "  Nadia Ali ", Channel: models.ChannelEmail})
	if err != nil || lead.Name != "Nadia Ali" {
		t.Fatalf("Create = %+v, %v", lead, err)
	}
}

func TestLeadChangeStatusAndBoard(t *testing.T) {
	leads, _, _ := newLeadFixture()

	if _, err := leads.ChangeStatus("L-1001", models.LeadQualified); err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}
	board := leads.Board(repositories.LeadFilter{Status: "Lost"})
	if len(board) != len(models.LeadStatuses) {
		t.Fatalf("board has %d columns", len(board))
	}
	if board[2].Status != models.LeadQualified || len(board[2].Leads) != 2 {
		t.Fatalf("qualified column = %+v", board[2])
	}

	_, err := leads.ChangeStatus("L-1001", "Archived")
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = leads.ChangeStatus("L-9999", models.LeadLost)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLeadConvertCreatesConfirmedBooking(t *testing.T) {
	leads, bookings, _ := newLeadFixture()

	b, err := leads.Convert("L-1003", ConvertLeadRequest{Date: "2026-05-11", Pax: 6})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if b.Status != models.BookingConfirmed || b.ClientName != "Sophie Laurent" || b.TourName != "Kolsai Lakes Weekend" {
		t.Fatalf("unexpected booking %+v", b)
	}
	lead, _ := leads.GetByID("L-1003")
	if lead.Status != models.LeadBooked {
		t.Fatalf("lead status = %s", lead.Status)
	}
	if got := bookings.ForClient(" sophie laurent "); len(got) != 2 {
		t.Fatalf("ForClient found %d bookings", len(got))
	}

	if _, err := leads.Convert("L-1003", ConvertLeadRequest{Date: "2026-05-11", Pax: 6}); !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Fatalf("expected conflict on second convert, got %v", err)
	}
}

func TestLeadConvertConcurrentBooksOnce(t *testing.T) {
	leads, bookings, _ := newLeadFixture()
	before := len(bookings.All())

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := leads.Convert("L-1003", ConvertLeadRequest{Date: "2026-05-11", Pax: 2})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case apperrors.HasCode(err, apperrors.CodeConflict):
				conflicts++
			default:
				t.Errorf("unexpected error %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != 1 || conflicts != callers-1 {
		t.Fatalf("ok=%d conflicts=%d", ok, conflicts)
	}
	if got := len(bookings.All()) - before; got != 1 {
		t.Fatalf("created %d bookings, want 1", got)
	}
}

func TestLeadDetailListsBookingsByName(t *testing.T) {
	leads, _, _ := newLeadFixture()

	d, err := leads.Detail("L-1003")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if len(d.Bookings) != 1 || d.Bookings[0].ClientName != "Sophie Laurent" {
		t.Fatalf("bookings = %+v", d.Bookings)
	}
	if len(d.Transitions) != len(models.LeadStatuses)-1 {
		t.Fatalf("transitions = %v", d.Transitions)
	}
	if _, err := leads.Detail("L-0000"); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLeadConvertInvalidBookingLeavesLead(t *testing.T) {
	leads, bookings, _ := newLeadFixture()
	before := len(bookings.All())

	_, err := leads.Convert("L-1001", ConvertLeadRequest{Date: "11/05/2026", Pax: 0})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	lead, _ := leads.GetByID("L-1001")
	if lead.Status != models.LeadNew || len(bookings.All()) != before {
		t.Fatalf("state changed after failed convert")
	}
}

func TestLeadPanelSaveFailureKeepsPanelOpen(t *testing.T) {
	leads, _, _ := newLeadFixture()

	if _, err := leads.OpenPanel("L-1002"); err != nil {
		t.Fatalf("OpenPanel: %v", err)
	}
	if _, err := leads.EditDraft(models.LeadPatch{Name: strPtr("")}); err != nil {
		t.Fatalf("EditDraft: %v", err)
	}
	if _, err := leads.SavePanel(); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	st := leads.Panel()
	if !st.Open || st.SelectedID != "L-1002" {
		t.Fatalf("panel closed after failed save: %+v", st)
	}
	lead, _ := leads.GetByID("L-1002")
	if lead.Name != "Marco Rossi" {
		t.Fatalf("collection changed: %s", lead.Name)
	}

	leads.EditDraft(models.LeadPatch{Name: strPtr("Marco R.")})
	saved, err := leads.SavePanel()
	if err != nil || saved.Name != "Marco R." {
		t.Fatalf("SavePanel = %+v, %v", saved, err)
	}
	if !saved.LastActivity.Equal(fixedNow) {
		t.Fatalf("last activity = %v, want %v", saved.LastActivity, fixedNow)
	}
	if leads.Panel().Open {
		t.Fatalf("panel still open after save")
	}
}
