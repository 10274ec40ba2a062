package services

import (
	"testing"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/mockdata"
	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
)

func TestTourCreateNormalizesTagsAndZeroesAnalytics(t *testing.T) {
	s := NewTourService(mockdata.Tours(), nil)
	tour, err := s.Create(models.Tour{
		Name: "Steppe Horse Ride", Price: 70, Duration: "5 hours", Difficulty: models.DifficultyEasy,
		MaxGroupSize: 6, Location: "Assy Plateau", Tags: []string{"horses", " Horses", "steppe", ""},
		Analytics: models.TourAnalytics{Bookings: 99, Revenue: 1},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(tour.Tags) != 2 || tour.Tags[0] != "horses" || tour.Tags[1] != "steppe" {
		t.Fatalf("tags = %v", tour.Tags)
	}
	if tour.Analytics != (models.TourAnalytics{}) {
		t.Fatalf("analytics not reset: %+v", tour.Analytics)
	}
}

func TestTourUpdateValidatesAndKeepsAnalytics(t *testing.T) {
	s := NewTourService(mockdata.Tours(), nil)

	negative := -5.0
	if _, err := s.Update("T-3001", models.TourPatch{Price: &negative}); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	tags := []string{"city", "City", "night"}
	tour, err := s.Update("T-3001", models.TourPatch{Tags: &tags})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(tour.Tags) != 2 || tour.Analytics.Bookings != 128 || tour.Price != 45 {
		t.Fatalf("unexpected tour %+v", tour)
	}
}

func TestTourFilterActiveState(t *testing.T) {
	s := NewTourService(mockdata.Tours(), nil)
	if p := s.List(repositories.TourFilter{Status: "inactive"}); p.Matched != 1 || p.Items[0].ID != "T-3005" {
		t.Fatalf("inactive filter: %+v", p)
	}
	if _, err := s.SetActive("T-3005", true); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if p := s.List(repositories.TourFilter{Status: "inactive"}); !p.Empty() {
		t.Fatalf("expected no inactive tours, got %d", p.Matched)
	}
	if p := s.List(repositories.TourFilter{Search: "LAKE", Difficulty: "Hard"}); p.Matched != 1 || p.Items[0].ID != "T-3004" {
		t.Fatalf("search+difficulty: %+v", p)
	}
}
