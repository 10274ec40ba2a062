package services

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
	"tourcrm/internal/utils"
	"tourcrm/internal/views"
)

type LeadService struct {
	view     *entityView[models.Lead]
	bookings *BookingService
	notifier Notifier
	now      func() time.Time
}

func NewLeadService(initial []models.Lead, bookings *BookingService, notifier Notifier) *LeadService {
	return &LeadService{
		view:     newEntityView("lead", "L-", initial, validateLead),
		bookings: bookings,
		notifier: notifier,
		now:      time.Now,
	}
}

func validateLead(l models.Lead) error {
	return utils.ValidateStruct(l)
}

// LeadCard is a lead as shown in the table, with its activity label.
type LeadCard struct {
	models.Lead
	Activity string `json:"last_activity_label"`
}

type LeadColumn struct {
	Status models.LeadStatus `json:"status"`
	Leads  []LeadCard        `json:"leads"`
}

func (s *LeadService) card(l models.Lead) LeadCard {
	return LeadCard{Lead: l, Activity: l.LastActivityLabel(s.now())}
}

func (s *LeadService) List(f repositories.LeadFilter) repositories.Page[LeadCard] {
	p := s.view.page("leads", f.Query())
	cards := make([]LeadCard, len(p.Items))
	for i, l := range p.Items {
		cards[i] = s.card(l)
	}
	return repositories.Page[LeadCard]{
		Items:        cards,
		Total:        p.Total,
		Matched:      p.Matched,
		Search:       p.Search,
		EmptyMessage: p.EmptyMessage,
	}
}

// Board groups the filtered leads into one column per status, in status order.
func (s *LeadService) Board(f repositories.LeadFilter) []LeadColumn {
	f.Status = ""
	leads := repositories.Filter(s.view.snapshot(), f.Query())
	cols := make([]LeadColumn, len(models.LeadStatuses))
	for i, st := range models.LeadStatuses {
		cols[i] = LeadColumn{Status: st, Leads: []LeadCard{}}
	}
	for _, l := range leads {
		for i := range cols {
			if cols[i].Status == l.Status {
				cols[i].Leads = append(cols[i].Leads, s.card(l))
			}
		}
	}
	return cols
}

func (s *LeadService) GetByID(id string) (models.Lead, error) {
	return s.view.get(id)
}

// LeadDetail is a lead with the bookings made under its name.
type LeadDetail struct {
	Lead        models.Lead         `json:"lead"`
	Bookings    []models.Booking    `json:"bookings"`
	Transitions []models.LeadStatus `json:"transitions"`
}

func (s *LeadService) Detail(id string) (LeadDetail, error) {
	lead, err := s.GetByID(id)
	if err != nil {
		return LeadDetail{}, err
	}
	d := LeadDetail{Lead: lead, Bookings: []models.Booking{}, Transitions: LeadTransitions(lead.Status)}
	if s.bookings != nil {
		d.Bookings = s.bookings.ForClient(lead.Name)
	}
	return d, nil
}

// Create registers a lead from the intake form; a blank status means New.
func (s *LeadService) Create(draft models.Lead) (models.Lead, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Status == "" {
		draft.Status = models.LeadNew
	}
	if draft.LastActivity.IsZero() {
		draft.LastActivity = s.now()
	}
	lead, err := s.view.create(draft)
	if err != nil {
		return lead, err
	}
	notify(s.notifier, fmt.Sprintf("Lead %s added", lead.Name))
	return lead, nil
}

func (s *LeadService) Update(id string, patch models.LeadPatch) (models.Lead, error) {
	now := s.now()
	return s.view.update(id, func(l models.Lead) models.Lead {
		l = patch.Apply(l)
		l.LastActivity = now
		return l
	})
}

// ChangeStatus is the one path for both the status dropdown and dragging a
// card to another board column.
func (s *LeadService) ChangeStatus(id string, to models.LeadStatus) (models.Lead, error) {
	return s.view.mutate("status", func(c repositories.Collection[models.Lead]) (repositories.Collection[models.Lead], models.Lead, error) {
		return repositories.ChangeStatus(c, id, to)
	})
}

type ConvertLeadRequest struct {
	TourName string `json:"tour_name"`
	Date     string `json:"date"`
	Pax      int    `json:"pax"`
	Pickup   string `json:"pickup"`
	Notes    string `json:"notes"`
}

// Convert books the lead: it moves the lead to Booked and creates a confirmed
// booking under the lead's name. The status flip and the Booked check are one
// step, so a lead is converted at most once; a rejected booking puts the lead
// back to its previous status.
func (s *LeadService) Convert(id string, req ConvertLeadRequest) (models.Booking, error) {
	if s.bookings == nil {
		return models.Booking{}, apperrors.Internal("bookings are not configured", nil)
	}

	var previous models.LeadStatus
	lead, err := s.view.mutate("convert", func(c repositories.Collection[models.Lead]) (repositories.Collection[models.Lead], models.Lead, error) {
		current, ok := c.Get(id)
		if !ok {
			return c, models.Lead{}, apperrors.NotFound("lead", id)
		}
		if current.Status == models.LeadBooked {
			return c, models.Lead{}, apperrors.Conflict(fmt.Sprintf("lead %s is already booked", id))
		}
		previous = current.Status
		return repositories.ChangeStatus(c, id, models.LeadBooked)
	})
	if err != nil {
		return models.Booking{}, err
	}

	tourName := strings.TrimSpace(req.TourName)
	if tourName == "" {
		tourName = lead.TourInterest
	}
	booking, err := s.bookings.Create(models.Booking{
		TourName:   tourName,
		Date:       req.Date,
		ClientName: lead.Name,
		Pax:        req.Pax,
		Pickup:     req.Pickup,
		Notes:      req.Notes,
	}, models.EntryLeadConversion)
	if err != nil {
		s.restoreStatus(id, previous)
		return models.Booking{}, err
	}
	return booking, nil
}

func (s *LeadService) restoreStatus(id string, to models.LeadStatus) {
	_, err := s.view.mutate("convert_rollback", func(c repositories.Collection[models.Lead]) (repositories.Collection[models.Lead], models.Lead, error) {
		current, ok := c.Get(id)
		if !ok {
			return c, models.Lead{}, apperrors.NotFound("lead", id)
		}
		if current.Status != models.LeadBooked {
			// moved on by someone else meanwhile
			return c, current, nil
		}
		return repositories.ChangeStatus(c, id, to)
	})
	if err != nil {
		log.Errorf("[lead][convert][err] lead %s left Booked after failed booking: %v", id, err)
	}
}

func (s *LeadService) OpenPanel(id string) (models.Lead, error) {
	return s.view.openPanel(id)
}

func (s *LeadService) EditDraft(patch models.LeadPatch) (models.Lead, error) {
	return s.view.editDraft(patch.Apply)
}

// SavePanel commits the panel draft and bumps its activity like Update does.
func (s *LeadService) SavePanel() (models.Lead, error) {
	now := s.now()
	return s.view.savePanel(func(l models.Lead) models.Lead {
		l.LastActivity = now
		return l
	})
}

func (s *LeadService) ClosePanel() {
	s.view.closePanel()
}

func (s *LeadService) Panel() views.PanelState[models.Lead] {
	return s.view.panelState()
}

func (s *LeadService) All() []models.Lead {
	return s.view.snapshot()
}
