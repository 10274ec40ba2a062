package services

import (
	"testing"

	"tourcrm/internal/apperrors"
	"tourcrm/internal/mockdata"
	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
)

func TestInboxOpenMarksRead(t *testing.T) {
	s := NewInboxService(mockdata.Conversations(fixedNow), nil)
	if got := s.UnreadTotal(); got != 3 {
		t.Fatalf("unread = %d, want 3", got)
	}
	c, err := s.Open("C-5001")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.Unread != 0 || s.UnreadTotal() != 1 {
		t.Fatalf("open did not mark read")
	}
	if st := s.Selected(); !st.Open || st.SelectedID != "C-5001" {
		t.Fatalf("selection = %+v", st)
	}
}

func TestInboxReplyAndAttach(t *testing.T) {
	n := &recordingNotifier{}
	s := NewInboxService(mockdata.Conversations(fixedNow), n)

	c, err := s.Reply("C-5003", models.ReplyRequest{Body: "  Yes, at 7:30.  "})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	last, _ := c.LastMessage()
	if last.Body != "Yes, at 7:30." || last.Direction != models.Outbound || last.ID == "" {
		t.Fatalf("unexpected message %+v", last)
	}

	c, err = s.Attach("C-5003", models.AttachRequest{Filename: "pickup-map.png"})
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if n.last() != "File attached" {
		t.Fatalf("toast = %q", n.last())
	}
	page := s.List(repositories.ConversationFilter{Search: "pickup-map"})
	if page.Matched != 1 || page.Items[0].LastMessage != "pickup-map.png" {
		t.Fatalf("list summary = %+v", page)
	}
	if len(c.Messages) != 3 {
		t.Fatalf("messages = %d", len(c.Messages))
	}
}

func TestInboxReplyValidation(t *testing.T) {
	s := NewInboxService(mockdata.Conversations(fixedNow), nil)
	if _, err := s.Reply("C-5001", models.ReplyRequest{Body: "   "}); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := s.Reply("C-0000", models.ReplyRequest{Body: "hi"}); !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
