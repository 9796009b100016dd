package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	EventsReceived = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chaddon_events_received_total",
		Help: "Total push deliveries received on the event endpoint.",
	})

	DecodeFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chaddon_decode_failures_total",
		Help: "Total deliveries whose payload could not be decoded, by reason.",
	}, []string{"reason"})

	EventsClassified = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chaddon_events_classified_total",
		Help: "Total decoded events by classified kind.",
	}, []string{"kind"})

	EventsDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chaddon_events_dropped_total",
		Help: "Total events dropped without a reply, by reason.",
	}, []string{"reason"})

	RepliesSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chaddon_replies_sent_total",
		Help: "Total Chat API writes that succeeded, by event kind.",
	}, []string{"kind"})

	RepliesFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chaddon_replies_failed_total",
		Help: "Total Chat API writes that failed, by event kind.",
	}, []string{"kind"})
)

func Register() {
	prometheus.MustRegister(
		EventsReceived,
		DecodeFailures, EventsClassified, EventsDropped,
		RepliesSent, RepliesFailed,
	)
}
