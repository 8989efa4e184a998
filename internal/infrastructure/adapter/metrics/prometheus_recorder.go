// Package metrics exports domain events as Prometheus series.
package metrics

import (
	"strconv"

	"github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "linkledger"

// PrometheusRecorder implements core.MetricsRecorder
type PrometheusRecorder struct {
	ledgerOperations     *prometheus.CounterVec
	ledgerCredits        *prometheus.CounterVec
	linksCreated         *prometheus.CounterVec
	linksExtended        *prometheus.CounterVec
	paymentVerifications *prometheus.CounterVec
	unknownDurations     *prometheus.CounterVec
	bonusClaims          *prometheus.CounterVec
}

// NewPrometheusRecorder registers the domain series on reg
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		ledgerOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_operations_total",
			Help:      "Balance movements by operation and outcome.",
		}, []string{"operation", "outcome"}),
		ledgerCredits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_credits_total",
			Help:      "Credits moved by successful ledger operations.",
		}, []string{"direction"}),
		linksCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_created_total",
			Help:      "Links purchased, by type and duration tier.",
		}, []string{"type", "duration"}),
		linksExtended: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_extended_total",
			Help:      "Link extensions, by type and weeks added.",
		}, []string{"type", "weeks"}),
		paymentVerifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_verifications_total",
			Help:      "Payment reconciliations by source and outcome.",
		}, []string{"source", "outcome"}),
		unknownDurations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_unknown_duration_total",
			Help:      "Prices computed with the fallback multiplier.",
		}, []string{"duration"}),
		bonusClaims: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "welcome_bonus_claims_total",
			Help:      "Messaging identity claims by outcome.",
		}, []string{"outcome"}),
	}
}

var _ core.MetricsRecorder = (*PrometheusRecorder)(nil)

func (r *PrometheusRecorder) LedgerOperation(operation, outcome string, amount int64) {
	r.ledgerOperations.WithLabelValues(operation, outcome).Inc()
	if outcome != "success" {
		return
	}
	direction := "in"
	if operation == "debit" {
		direction = "out"
	}
	r.ledgerCredits.WithLabelValues(direction).Add(float64(amount))
}

func (r *PrometheusRecorder) LinkCreated(linkType string, durationKey string) {
	r.linksCreated.WithLabelValues(linkType, durationKey).Inc()
}

func (r *PrometheusRecorder) LinkExtended(linkType string, weeks int) {
	r.linksExtended.WithLabelValues(linkType, strconv.Itoa(weeks)).Inc()
}

func (r *PrometheusRecorder) PaymentVerification(source, outcome string) {
	r.paymentVerifications.WithLabelValues(source, outcome).Inc()
}

func (r *PrometheusRecorder) UnknownDurationPriced(durationKey string) {
	r.unknownDurations.WithLabelValues(durationKey).Inc()
}

func (r *PrometheusRecorder) BonusClaim(outcome string) {
	r.bonusClaims.WithLabelValues(outcome).Inc()
}

// NoopRecorder drops every event
type NoopRecorder struct{}

func (NoopRecorder) LedgerOperation(string, string, int64) {}
func (NoopRecorder) LinkCreated(string, string) {}
func (NoopRecorder) LinkExtended(string, int) {}
func (NoopRecorder) PaymentVerification(string, string) {}
func (NoopRecorder) UnknownDurationPriced(string) {}
func (NoopRecorder) BonusClaim(string) {}
