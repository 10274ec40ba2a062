package repositories

import "tourcrm/internal/models"

// ConversationFilter drives the inbox list. Unread=true keeps threads with unread messages.
type ConversationFilter struct {
	Search  string `form:"q"`
	Channel string `form:"channel"`
	Unread  bool   `form:"unread"`
}

func (f ConversationFilter) Query() Query[models.Conversation] {
	var unread Predicate[models.Conversation]
	if f.Unread {
		unread = func(c models.Conversation) bool { return c.Unread > 0 }
	}
	return Query[models.Conversation]{
		Search: f.Search,
		Fields: func(c models.Conversation) []string {
			fields := []string{c.ContactName}
			if last, ok := c.LastMessage(); ok {
				fields = append(fields, last.Body, last.Attachment)
			}
			return fields
		},
		Filters: []Predicate[models.Conversation]{
			Equals(f.Channel, func(c models.Conversation) string { return string(c.Channel) }),
			unread,
		},
	}
}
