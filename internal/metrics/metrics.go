// Package metrics exposes prometheus counters for entity mutations.
package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tourcrm/internal/apperrors"
)

var (
	Registry = prometheus.NewRegistry()

	mutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tourcrm",
		Name:      "mutations_total",
		Help:      "Entity store mutations by entity, operation and outcome.",
	}, []string{"entity", "op", "outcome"})

	notifications = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tourcrm",
		Name:      "notifications_total",
		Help:      "Toast notifications emitted.",
	})
)

func init() {
	Registry.MustRegister(
		mutations,
		notifications,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Outcome is "ok", the lower-cased apperrors code, or "error".
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if appErr, ok := apperrors.As(err); ok {
		return strings.ToLower(appErr.Code)
	}
	return "error"
}

func ObserveMutation(entity, op string, err error) {
	mutations.WithLabelValues(entity, op, Outcome(err)).Inc()
}

func ObserveNotification() {
	notifications.Inc()
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
