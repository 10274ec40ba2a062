package models

import "time"

type Direction string

const (
	Inbound  Direction = "inbound"
	Outbound Direction = "outbound"
)

type Message struct {
	ID         string    `json:"id"`
	Direction  Direction `json:"direction"`
	Body       string    `json:"body"`
	Attachment string    `json:"attachment,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}

// Conversation is one inbox thread with a contact.
type Conversation struct {
	ID          string    `json:"id"`
	ContactName string    `json:"contact_name"`
	Channel     Channel   `json:"channel"`
	Unread      int       `json:"unread"`
	Messages    []Message `json:"messages"`
}

func (c Conversation) EntityID() string { return c.ID }

func (c Conversation) WithID(id string) Conversation {
	c.ID = id
	return c
}

func (c Conversation) Clone() Conversation {
	if c.Messages != nil {
		c.Messages = append([]Message(nil), c.Messages...)
	}
	return c
}

func (c Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

type ReplyRequest struct {
	Body string `json:"body" validate:"required,notblank"`
}

type AttachRequest struct {
	Filename string `json:"filename" validate:"required,notblank"`
	Caption  string `json:"caption"`
}
