package services

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestToastFeedKeepsNewestFirst(t *testing.T) {
	feed := NewToastFeed(2)
	feed.Notify("one")
	feed.Notify("two")
	feed.Notify("three")

	got := feed.Recent()
	if len(got) != 2 || got[0].Message != "three" || got[1].Message != "two" {
		t.Fatalf("recent = %+v", got)
	}
}

func TestMultiNotifierSkipsNil(t *testing.T) {
	a := &recordingNotifier{}
	var tg *TelegramNotifier
	MultiNotifier{a, nil, tg}.Notify("Booking created")
	if a.last() != "Booking created" {
		t.Fatalf("fan-out missed a notifier")
	}
}

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func TestTelegramNotifierForwardsToast(t *testing.T) {
	bot := &fakeBot{}
	n := newTelegramNotifier(bot, 42, "Silk Road", false)
	n.Notify("File attached")

	if len(bot.sent) != 1 {
		t.Fatalf("sent %d messages", len(bot.sent))
	}
	if bot.sent[0].ChatID != 42 || bot.sent[0].Text != "[Silk Road] File attached" {
		t.Fatalf("unexpected message %+v", bot.sent[0])
	}

	bot.err = errors.New("flood wait")
	n.Notify("ignored failure")
}

func TestNewTelegramNotifierDisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", 0, "")
	if err != nil || n != nil {
		t.Fatalf("expected disabled notifier, got %v, %v", n, err)
	}
}
