package services

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// TelegramSender is the part of the bot API the forwarder needs.
type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier forwards toasts to one operator chat. Sends run in the
// background so Notify never blocks a mutation.
type TelegramNotifier struct {
	bot    TelegramSender
	chatID int64
	prefix string
	async  bool
}

// NewTelegramNotifier connects the bot. It returns nil, nil when no token or
// chat is configured so callers can skip it.
func NewTelegramNotifier(token string, chatID int64, company string) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		log.Infof("[tg][skip] token or chat id empty")
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	log.Infof("[tg] authorized as @%s", bot.Self.UserName)
	return newTelegramNotifier(bot, chatID, company, true), nil
}

func newTelegramNotifier(bot TelegramSender, chatID int64, company string, async bool) *TelegramNotifier {
	prefix := ""
	if company != "" {
		prefix = "[" + company + "] "
	}
	return &TelegramNotifier{bot: bot, chatID: chatID, prefix: prefix, async: async}
}

func (t *TelegramNotifier) Notify(message string) {
	if t == nil || t.bot == nil {
		return
	}
	if t.async {
		go t.send(message)
		return
	}
	t.send(message)
}

func (t *TelegramNotifier) send(message string) {
	msg := tgbotapi.NewMessage(t.chatID, t.prefix+message)
	msg.DisableWebPagePreview = true
	if _, err := t.bot.Send(msg); err != nil {
		log.Warnf("[tg][send][err] chat=%d: %v", t.chatID, err)
		return
	}
	log.Debugf("[tg][send] chat=%d text=%q", t.chatID, message)
}
