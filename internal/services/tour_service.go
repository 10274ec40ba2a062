package services

import (
	"fmt"

	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
	"tourcrm/internal/utils"
	"tourcrm/internal/views"
)

type TourService struct {
	view     *entityView[models.Tour]
	notifier Notifier
}

func NewTourService(initial []models.Tour, notifier Notifier) *TourService {
	return &TourService{
		view:     newEntityView("tour", "T-", initial, validateTour),
		notifier: notifier,
	}
}

func validateTour(t models.Tour) error {
	return utils.ValidateStruct(t)
}

func (s *TourService) List(f repositories.TourFilter) repositories.Page[models.Tour] {
	return s.view.page("tours", f.Query())
}

func (s *TourService) GetByID(id string) (models.Tour, error) {
	return s.view.get(id)
}

// Create adds a catalog entry. Analytics start at zero whatever the draft says.
func (s *TourService) Create(draft models.Tour) (models.Tour, error) {
	draft.Tags = models.NormalizeTags(draft.Tags)
	draft.Analytics = models.TourAnalytics{}
	t, err := s.view.create(draft)
	if err != nil {
		return t, err
	}
	notify(s.notifier, fmt.Sprintf("Tour %s added to the catalog", t.Name))
	return t, nil
}

func (s *TourService) Update(id string, patch models.TourPatch) (models.Tour, error) {
	return s.view.update(id, patch.Apply)
}

func (s *TourService) SetActive(id string, active bool) (models.Tour, error) {
	return s.Update(id, models.TourPatch{Active: &active})
}

func (s *TourService) OpenPanel(id string) (models.Tour, error) {
	return s.view.openPanel(id)
}

func (s *TourService) EditDraft(patch models.TourPatch) (models.Tour, error) {
	return s.view.editDraft(patch.Apply)
}

func (s *TourService) SavePanel() (models.Tour, error) {
	return s.view.savePanel(nil)
}

func (s *TourService) ClosePanel() {
	s.view.closePanel()
}

func (s *TourService) Panel() views.PanelState[models.Tour] {
	return s.view.panelState()
}

func (s *TourService) All() []models.Tour {
	return s.view.snapshot()
}
