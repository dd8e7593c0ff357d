package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	llmCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_calls_total",
			Help: "Total number of AI tutor calls",
		},
		[]string{"status"},
	)

	llmCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "llm_call_duration_seconds",
			Help:    "AI tutor call duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)

	revisionAnswersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "revision_answers_total",
			Help: "Total number of graded revision answers",
		},
		[]string{"question_type", "correct"},
	)

	remindersSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminders_sent_total",
			Help: "Total number of reminder emails sent",
		},
		[]string{"kind", "status"},
	)
)

func RequestStarted() {
	httpRequestsInFlight.Inc()
}

func RequestFinished(method, endpoint, status string, duration time.Duration) {
	httpRequestsInFlight.Dec()
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func RecordLLMCall(success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	llmCallsTotal.WithLabelValues(status).Inc()
	llmCallDuration.Observe(duration.Seconds())
}

func RecordRevisionAnswer(questionType string, correct bool) {
	c := "false"
	if correct {
		c = "true"
	}
	revisionAnswersTotal.WithLabelValues(questionType, c).Inc()
}

func RecordReminder(kind string, err error) {
	status := "sent"
	if err != nil {
		status = "failed"
	}
	remindersSentTotal.WithLabelValues(kind, status).Inc()
}
