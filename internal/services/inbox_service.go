package services

import (
	"fmt"
	"strings"
	"time"

	"tourcrm/internal/models"
	"tourcrm/internal/repositories"
	"tourcrm/internal/utils"
	"tourcrm/internal/views"
)

type InboxService struct {
	view      *entityView[models.Conversation]
	notifier  Notifier
	messageID repositories.IDFunc
	now       func() time.Time
}

func NewInboxService(initial []models.Conversation, notifier Notifier) *InboxService {
	return &InboxService{
		view:      newEntityView[models.Conversation]("conversation", "C-", initial, nil),
		notifier:  notifier,
		messageID: repositories.PrefixedID("M-"),
		now:       time.Now,
	}
}

// ConversationSummary is one row of the inbox list.
type ConversationSummary struct {
	ID          string         `json:"id"`
	ContactName string         `json:"contact_name"`
	Channel     models.Channel `json:"channel"`
	Unread      int            `json:"unread"`
	LastMessage string         `json:"last_message"`
	LastAt      time.Time      `json:"last_at,omitempty"`
}

func summarize(c models.Conversation) ConversationSummary {
	sum := ConversationSummary{ID: c.ID, ContactName: c.ContactName, Channel: c.Channel, Unread: c.Unread}
	if m, ok := c.LastMessage(); ok {
		sum.LastMessage = m.Body
		if m.Body == "" && m.Attachment != "" {
			sum.LastMessage = m.Attachment
		}
		sum.LastAt = m.SentAt
	}
	return sum
}

func (s *InboxService) List(f repositories.ConversationFilter) repositories.Page[ConversationSummary] {
	p := s.view.page("conversations", f.Query())
	rows := make([]ConversationSummary, len(p.Items))
	for i, c := range p.Items {
		rows[i] = summarize(c)
	}
	return repositories.Page[ConversationSummary]{
		Items:        rows,
		Total:        p.Total,
		Matched:      p.Matched,
		Search:       p.Search,
		EmptyMessage: p.EmptyMessage,
	}
}

// Open selects a thread and marks it read.
func (s *InboxService) Open(id string) (models.Conversation, error) {
	if _, err := s.MarkRead(id); err != nil {
		return models.Conversation{}, err
	}
	return s.view.openPanel(id)
}

func (s *InboxService) Close() {
	s.view.closePanel()
}

func (s *InboxService) Selected() views.PanelState[models.Conversation] {
	return s.view.panelState()
}

func (s *InboxService) MarkRead(id string) (models.Conversation, error) {
	return s.view.update(id, func(c models.Conversation) models.Conversation {
		c.Unread = 0
		return c
	})
}

func (s *InboxService) Reply(id string, req models.ReplyRequest) (models.Conversation, error) {
	req.Body = strings.TrimSpace(req.Body)
	if err := utils.ValidateStruct(req); err != nil {
		return models.Conversation{}, err
	}
	c, err := s.appendMessage(id, "reply", models.Message{Direction: models.Outbound, Body: req.Body})
	if err != nil {
		return c, err
	}
	notify(s.notifier, fmt.Sprintf("Reply sent to %s", c.ContactName))
	return c, nil
}

func (s *InboxService) Attach(id string, req models.AttachRequest) (models.Conversation, error) {
	req.Filename = strings.TrimSpace(req.Filename)
	if err := utils.ValidateStruct(req); err != nil {
		return models.Conversation{}, err
	}
	c, err := s.appendMessage(id, "attach", models.Message{
		Direction:  models.Outbound,
		Body:       strings.TrimSpace(req.Caption),
		Attachment: req.Filename,
	})
	if err != nil {
		return c, err
	}
	notify(s.notifier, "File attached")
	return c, nil
}

func (s *InboxService) appendMessage(id, op string, msg models.Message) (models.Conversation, error) {
	msg.ID = s.messageID()
	msg.SentAt = s.now()
	return s.view.mutate(op, func(c repositories.Collection[models.Conversation]) (repositories.Collection[models.Conversation], models.Conversation, error) {
		return c.Update(id, func(conv models.Conversation) models.Conversation {
			conv.Messages = append(conv.Messages, msg)
			conv.Unread = 0
			return conv
		})
	})
}

func (s *InboxService) UnreadTotal() int {
	total := 0
	for _, c := range s.view.snapshot() {
		total += c.Unread
	}
	return total
}
