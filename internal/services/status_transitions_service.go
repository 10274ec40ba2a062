package services

import "tourcrm/internal/models"

// Lead and booking statuses form a flat graph: every status can move to any
// other. These tables drive the status dropdown and the board's drop targets.

func LeadTransitions(from models.LeadStatus) []models.LeadStatus {
	return nextStatuses(models.LeadStatuses, from)
}

func BookingTransitions(from models.BookingStatus) []models.BookingStatus {
	return nextStatuses(models.BookingStatuses, from)
}

func nextStatuses[S comparable](all []S, from S) []S {
	out := make([]S, 0, len(all))
	for _, s := range all {
		if s != from {
			out = append(out, s)
		}
	}
	return out
}
