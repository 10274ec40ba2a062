package models

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

var BookingStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled}

func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// EntryPoint identifies the screen a booking was created from.
type EntryPoint string

const (
	EntryBookingsPage   EntryPoint = "bookings"
	EntryLeadConversion EntryPoint = "lead_conversion"
)

// DefaultBookingStatus: bookings made from the bookings page wait for
// confirmation, conversions from a lead are already agreed with the client.
func DefaultBookingStatus(entry EntryPoint) BookingStatus {
	if entry == EntryLeadConversion {
		return BookingConfirmed
	}
	return BookingPending
}

// Booking references its tour and client by name only.
type Booking struct {
	ID         string        `json:"id"`
	TourName   string        `json:"tour_name" validate:"required,notblank"`
	Date       string        `json:"date" validate:"required,datetime=2006-01-02"`
	ClientName string        `json:"client_name" validate:"required,notblank"`
	Pax        int           `json:"pax" validate:"gte=1"`
	Status     BookingStatus `json:"status" validate:"required,enum"`
	Pickup     string        `json:"pickup,omitempty"`
	Notes      string        `json:"notes,omitempty"`
}

func (b Booking) EntityID() string { return b.ID }

func (b Booking) WithID(id string) Booking {
	b.ID = id
	return b
}

func (b Booking) Clone() Booking { return b }

func (b Booking) EntityStatus() BookingStatus { return b.Status }

func (b Booking) WithStatus(s BookingStatus) Booking {
	b.Status = s
	return b
}

type BookingPatch struct {
	TourName   *string `json:"tour_name"`
	Date       *string `json:"date"`
	ClientName *string `json:"client_name"`
	Pax        *int    `json:"pax"`
	Pickup     *string `json:"pickup"`
	Notes      *string `json:"notes"`
}

func (p BookingPatch) Apply(b Booking) Booking {
	if p.TourName != nil {
		b.TourName = *p.TourName
	}
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.ClientName != nil {
		b.ClientName = *p.ClientName
	}
	if p.Pax != nil {
		b.Pax = *p.Pax
	}
	if p.Pickup != nil {
		b.Pickup = *p.Pickup
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	return b
}
