package models

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

type LeadStatus string

const (
	LeadNew       LeadStatus = "New"
	LeadContacted LeadStatus = "Contacted"
	LeadQualified LeadStatus = "Qualified"
	LeadBooked    LeadStatus = "Booked"
	LeadLost      LeadStatus = "Lost"
)

// LeadStatuses is the column order of the lead board.
var LeadStatuses = []LeadStatus{LeadNew, LeadContacted, LeadQualified, LeadBooked, LeadLost}

func (s LeadStatus) Valid() bool {
	for _, v := range LeadStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Channel is where a lead came in from.
type Channel string

const (
	ChannelWebsite  Channel = "Website"
	ChannelWhatsApp Channel = "WhatsApp"
	ChannelEmail    Channel = "Email"
	ChannelReferral Channel = "Referral"
	ChannelSocial   Channel = "Social Media"
	ChannelWalkIn   Channel = "Walk-in"
)

var Channels = []Channel{ChannelWebsite, ChannelWhatsApp, ChannelEmail, ChannelReferral, ChannelSocial, ChannelWalkIn}

func (c Channel) Valid() bool {
	for _, v := range Channels {
		if c == v {
			return true
		}
	}
	return false
}

type Lead struct {
	ID           string     `json:"id"`
	Name         string     `json:"name" validate:"required,notblank"`
	Email        string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string     `json:"phone,omitempty"`
	Status       LeadStatus `json:"status" validate:"required,enum"`
	Channel      Channel    `json:"channel" validate:"required,enum"`
	TourInterest string     `json:"tour_interest,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	LastActivity time.Time  `json:"last_activity"`
}

func (l Lead) EntityID() string { return l.ID }

func (l Lead) WithID(id string) Lead {
	l.ID = id
	return l
}

func (l Lead) Clone() Lead { return l }

func (l Lead) EntityStatus() LeadStatus { return l.Status }

func (l Lead) WithStatus(s LeadStatus) Lead {
	l.Status = s
	return l
}

// LastActivityLabel renders the activity timestamp relative to now, e.g. "3 hours ago".
func (l Lead) LastActivityLabel(now time.Time) string {
	if l.LastActivity.IsZero() {
		return "never"
	}
	return humanize.RelTime(l.LastActivity, now, "ago", "from now")
}

// LeadPatch carries the fields of a lead edit; nil fields are left as they
// are. Status only moves through ChangeStatus.
type LeadPatch struct {
	Name         *string  `json:"name"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	Channel      *Channel `json:"channel"`
	TourInterest *string  `json:"tour_interest"`
	Notes        *string  `json:"notes"`
}

func (p LeadPatch) Apply(l Lead) Lead {
	if p.Name != nil {
		l.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.Channel != nil {
		l.Channel = *p.Channel
	}
	if p.TourInterest != nil {
		l.TourInterest = *p.TourInterest
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
	return l
}
