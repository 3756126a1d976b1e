package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_client_api_requests_total",
			Help: "Total number of API requests issued by the client",
		},
		[]string{"endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "ats_client_api_request_duration_seconds",
			Help: "Duration of API requests in seconds",
		},
		[]string{"endpoint"},
	)

	GateDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_client_gate_decisions_total",
			Help: "Access gate decisions by outcome",
		},
		[]string{"decision"},
	)

	AnswersSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_client_answers_submitted_total",
			Help: "Interview answer submissions by result",
		},
		[]string{"result"},
	)
)
