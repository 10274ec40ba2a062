package utils

import (
	"testing"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/models"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	appErr, ok := apperrors.As(err)
	if !ok || appErr.Code != apperrors.CodeValidation {
		t.Fatalf("err = %v, want validation error", err)
	}
	return appErr.Fields
}

func TestValidateSignupShortPassword(t *testing.T) {
	fields := fieldsOf(t, ValidateStruct(models.SignupRequest{
		Name: "Dana", Email: "dana@tours.kz", Password: "12345",
	}))
	if fields["password"] != "must be at least 8 characters" {
		t.Errorf("fields = %v", fields)
	}
	if len(fields) != 1 {
		t.Errorf("unexpected extra fields %v", fields)
	}
}

func TestValidateBooking(t *testing.T) {
	tests := []struct {
		name  string
		in    models.Booking
		field string
		msg   string
	}{
		{
			name:  "pax below one",
			in:    models.Booking{TourName: "City Tour", Date: "2024-05-01", ClientName: "Ana", Pax: 0, Status: models.BookingPending},
			field: "pax", msg: "must be at least 1",
		},
		{
			name:  "bad date",
			in:    models.Booking{TourName: "City Tour", Date: "01/05/2024", ClientName: "Ana", Pax: 1, Status: models.BookingPending},
			field: "date", msg: "must be a date in YYYY-MM-DD format",
		},
		{
			name:  "unknown status",
			in:    models.Booking{TourName: "City Tour", Date: "2024-05-01", ClientName: "Ana", Pax: 1, Status: "Lost"},
			field: "status", msg: "is not a recognized value",
		},
		{
			name:  "missing client",
			in:    models.Booking{TourName: "City Tour", Date: "2024-05-01", Pax: 1, Status: models.BookingPending},
			field: "client_name", msg: "is required",
		},
		{
			name:  "whitespace client",
			in:    models.Booking{TourName: "City Tour", Date: "2024-05-01", ClientName: "   ", Pax: 1, Status: models.BookingPending},
			field: "client_name", msg: "is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := fieldsOf(t, ValidateStruct(tt.in))
			if fields[tt.field] != tt.msg {
				t.Errorf("fields = %v, want %s=%q", fields, tt.field, tt.msg)
			}
		})
	}
}

func TestValidateWorkspaceClosedSets(t *testing.T) {
	fields := fieldsOf(t, ValidateStruct(models.WorkspaceSettings{
		CompanyName: "Steppe Tours", Timezone: "Mars/Olympus", Currency: "DOGE",
	}))
	if fields["timezone"] == "" || fields["currency"] == "" {
		t.Errorf("fields = %v", fields)
	}

	ok := models.WorkspaceSettings{CompanyName: "Steppe Tours", Timezone: "Asia/Almaty", Currency: "KZT"}
	if err := ValidateStruct(ok); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestNewTokenLength(t *testing.T) {
	tok, err := NewToken(16)
	if err != nil {
		t.Fatal(err)
	}
	if len(tok) != 32 {
		t.Errorf("len = %d", len(tok))
	}
}
