package services

import (
	"sync"
	"time"

	"tourcrm/internal/metrics"
)

// Notifier receives toast messages after successful actions. Delivery is
// fire-and-forget: Notify returns nothing and must not block for long.
type Notifier interface {
	Notify(message string)
}

type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// MultiNotifier fans a toast out to every non-nil notifier.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(message string) {
	metrics.ObserveNotification()
	for _, n := range m {
		if n != nil {
			n.Notify(message)
		}
	}
}

type Toast struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// ToastFeed keeps the latest toasts for the shell to display.
type ToastFeed struct {
	mu    sync.Mutex
	limit int
	items []Toast
	now   func() time.Time
}

func NewToastFeed(limit int) *ToastFeed {
	if limit <= 0 {
		limit = 20
	}
	return &ToastFeed{limit: limit, now: time.Now}
}

func (f *ToastFeed) Notify(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, Toast{Message: message, At: f.now()})
	if len(f.items) > f.limit {
		f.items = append([]Toast(nil), f.items[len(f.items)-f.limit:]...)
	}
}

// Recent returns toasts newest first.
func (f *ToastFeed) Recent() []Toast {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Toast, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out
}

func notify(n Notifier, message string) {
	if n != nil {
		n.Notify(message)
	}
}
