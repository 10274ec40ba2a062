package services

import (
	"fmt"
	"strings"

	"tourcrm/internal/models"
	"tourcrm/internal/pdf"
	"tourcrm/internal/repositories"
	"tourcrm/internal/utils"
	"tourcrm/internal/views"
)

type BookingService struct {
	view     *entityView[models.Booking]
	notifier Notifier
	vouchers pdf.Generator
	company  string
}

func NewBookingService(initial []models.Booking, notifier Notifier, vouchers pdf.Generator, company string) *BookingService {
	return &BookingService{
		view:     newEntityView("booking", "B-", initial, validateBooking),
		notifier: notifier,
		vouchers: vouchers,
		company:  company,
	}
}

func validateBooking(b models.Booking) error {
	return utils.ValidateStruct(b)
}

func (s *BookingService) List(f repositories.BookingFilter) repositories.Page[models.Booking] {
	return s.view.page("bookings", f.Query())
}

func (s *BookingService) GetByID(id string) (models.Booking, error) {
	return s.view.get(id)
}

// Create books from a form. When the draft has no status it gets the default
// of the screen it came from.
func (s *BookingService) Create(draft models.Booking, entry models.EntryPoint) (models.Booking, error) {
	if draft.Status == "" {
		draft.Status = models.DefaultBookingStatus(entry)
	}
	draft.TourName = strings.TrimSpace(draft.TourName)
	draft.ClientName = strings.TrimSpace(draft.ClientName)

	b, err := s.view.create(draft)
	if err != nil {
		return b, err
	}
	notify(s.notifier, fmt.Sprintf("Booking %s created for %s", b.ID, b.ClientName))
	return b, nil
}

func (s *BookingService) Update(id string, patch models.BookingPatch) (models.Booking, error) {
	return s.view.update(id, patch.Apply)
}

func (s *BookingService) ChangeStatus(id string, to models.BookingStatus) (models.Booking, error) {
	return s.view.mutate("status", func(c repositories.Collection[models.Booking]) (repositories.Collection[models.Booking], models.Booking, error) {
		return repositories.ChangeStatus(c, id, to)
	})
}

// ForClient returns the bookings whose client name equals name, ignoring case
// and surrounding spaces. Two clients with the same name are indistinguishable.
func (s *BookingService) ForClient(name string) []models.Booking {
	name = strings.TrimSpace(name)
	var out []models.Booking
	for _, b := range s.view.snapshot() {
		if strings.EqualFold(strings.TrimSpace(b.ClientName), name) {
			out = append(out, b)
		}
	}
	return out
}

// Voucher renders the booking confirmation PDF and returns its path.
func (s *BookingService) Voucher(id string) (string, error) {
	b, err := s.view.get(id)
	if err != nil {
		return "", err
	}
	if s.vouchers == nil {
		return "", fmt.Errorf("voucher generator is not configured")
	}
	path, err := s.vouchers.GenerateVoucher(pdf.VoucherData{
		BookingID:  b.ID,
		Company:    s.company,
		TourName:   b.TourName,
		Date:       b.Date,
		ClientName: b.ClientName,
		Pax:        b.Pax,
		Status:     string(b.Status),
		Pickup:     b.Pickup,
		Notes:      b.Notes,
	})
	if err != nil {
		return "", fmt.Errorf("generate voucher for %s: %w", b.ID, err)
	}
	notify(s.notifier, fmt.Sprintf("Voucher for booking %s is ready", b.ID))
	return path, nil
}

func (s *BookingService) OpenPanel(id string) (models.Booking, error) {
	return s.view.openPanel(id)
}

func (s *BookingService) EditDraft(patch models.BookingPatch) (models.Booking, error) {
	return s.view.editDraft(patch.Apply)
}

func (s *BookingService) SavePanel() (models.Booking, error) {
	b, err := s.view.savePanel(nil)
	if err == nil {
		notify(s.notifier, fmt.Sprintf("Booking %s updated", b.ID))
	}
	return b, err
}

func (s *BookingService) ClosePanel() {
	s.view.closePanel()
}

func (s *BookingService) Panel() views.PanelState[models.Booking] {
	return s.view.panelState()
}

func (s *BookingService) All() []models.Booking {
	return s.view.snapshot()
}
