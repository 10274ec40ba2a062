package models

import "strings"

type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
	DifficultyExpert   Difficulty = "Expert"
)

var Difficulties = []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyHard, DifficultyExpert}

func (d Difficulty) Valid() bool {
	for _, v := range Difficulties {
		if d == v {
			return true
		}
	}
	return false
}

// TourAnalytics is computed elsewhere and never edited through the catalog.
type TourAnalytics struct {
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type Tour struct {
	ID           string        `json:"id"`
	Name         string        `json:"name" validate:"required,notblank"`
	Price        float64       `json:"price" validate:"gte=0"`
	Duration     string        `json:"duration" validate:"required,notblank"`
	Difficulty   Difficulty    `json:"difficulty" validate:"required,enum"`
	MaxGroupSize int           `json:"max_group_size" validate:"gte=1"`
	Location     string        `json:"location" validate:"required,notblank"`
	Tags         []string      `json:"tags"`
	Description  string        `json:"description,omitempty"`
	Active       bool          `json:"active"`
	Analytics    TourAnalytics `json:"analytics"`
}

func (t Tour) EntityID() string { return t.ID }

func (t Tour) WithID(id string) Tour {
	t.ID = id
	return t
}

func (t Tour) Clone() Tour {
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	return t
}

// NormalizeTags trims tags, drops blanks and keeps the first spelling of
// case-insensitive duplicates.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// TourPatch has no analytics fields: analytics stay read-only.
type TourPatch struct {
	Name         *string     `json:"name"`
	Price        *float64    `json:"price"`
	Duration     *string     `json:"duration"`
	Difficulty   *Difficulty `json:"difficulty"`
	MaxGroupSize *int        `json:"max_group_size"`
	Location     *string     `json:"location"`
	Tags         *[]string   `json:"tags"`
	Description  *string     `json:"description"`
	Active       *bool       `json:"active"`
}

func (p TourPatch) Apply(t Tour) Tour {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.Difficulty != nil {
		t.Difficulty = *p.Difficulty
	}
	if p.MaxGroupSize != nil {
		t.MaxGroupSize = *p.MaxGroupSize
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Tags != nil {
		t.Tags = NormalizeTags(*p.Tags)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Active != nil {
		t.Active = *p.Active
	}
	return t
}
