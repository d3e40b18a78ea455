// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"sales/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SalesOrdersTotal counts order commands by operation and outcome.
	SalesOrdersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales",
		Subsystem: "orders",
		Name:      "commands_total",
		Help:      "Sales order commands handled, by operation and status",
	}, []string{"operation", "status"})

	// ValidationFailuresTotal counts rejected requests by top level error kind.
	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales",
		Subsystem: "orders",
		Name:      "validation_failures_total",
		Help:      "Domain validation failures, by error kind",
	}, []string{"kind"})

	// PersonalizationFlagsTotal counts flags attached to line items at creation.
	PersonalizationFlagsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales",
		Subsystem: "line_items",
		Name:      "personalization_flags_total",
		Help:      "Personalization flags recorded on new line items, by flag type",
	}, []string{"type"})

	// OutboxMessagesTotal counts relay attempts by outcome.
	OutboxMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales",
		Subsystem: "outbox",
		Name:      "messages_total",
		Help:      "Outbox messages relayed to the broker, by status",
	}, []string{"status"})

	// KafkaMessagesTotal counts inbound broker messages by outcome.
	KafkaMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sales",
		Subsystem: "kafka",
		Name:      "messages_received_total",
		Help:      "Inbound order messages, by status",
	}, []string{"status"})
)

// ObserveCommand records the outcome of one command. Domain failures are
// counted as rejected and by kind; anything else as error.
func ObserveCommand(operation string, err error) {
	switch {
	case err == nil:
		SalesOrdersTotal.WithLabelValues(operation, "ok").Inc()
	case errs.KindOf(err) != "":
		SalesOrdersTotal.WithLabelValues(operation, "rejected").Inc()
		ValidationFailuresTotal.WithLabelValues(string(errs.KindOf(err))).Inc()
	default:
		SalesOrdersTotal.WithLabelValues(operation, "error").Inc()
	}
}
