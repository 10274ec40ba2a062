package services

import (
	"sync"
	"time"

	"tourcrm/internal/models"
	"tourcrm/internal/pdf"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recordingNotifier) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

type fakeVouchers struct {
	got pdf.VoucherData
	err error
}

func (f *fakeVouchers) GenerateVoucher(data pdf.VoucherData) (string, error) {
	f.got = data
	if f.err != nil {
		return "", f.err
	}
	return "/tmp/voucher_" + data.BookingID + ".pdf", nil
}

type sentMail struct {
	kind, to, detail string
}

type fakeEmails struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeEmails) record(kind, to, detail string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{kind, to, detail})
	return f.err
}

func (f *fakeEmails) SendWelcomeEmail(email, companyName string) error {
	return f.record("welcome", email, companyName)
}

func (f *fakeEmails) SendPasswordResetEmail(email, token string) error {
	return f.record("reset", email, token)
}

func (f *fakeEmails) SendTeamInvite(email, name, companyName, role string) error {
	return f.record("invite", email, role)
}

func (f *fakeEmails) lastOf(kind string) (sentMail, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.sent) - 1; i >= 0; i-- {
		if f.sent[i].kind == kind {
			return f.sent[i], true
		}
	}
	return sentMail{}, false
}

type recordingNavigator struct {
	dests []models.Destination
}

func (r *recordingNavigator) Navigate(dest models.Destination) {
	r.dests = append(r.dests, dest)
}

func strPtr(s string) *string { return &s }
