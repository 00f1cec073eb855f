package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// QueueMessagesPublished counts messages accepted by the broker.
	QueueMessagesPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "queue_messages_published_total",
		Help: "Messages successfully published to the queue, by topic.",
	}, []string{"topic"})

	// QueueMessagesDropped counts messages lost at the producer boundary.
	// reason is "disabled" (producer never connected) or "publish_failed".
	QueueMessagesDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "queue_messages_dropped_total",
		Help: "Messages dropped by the queue producer, by topic and reason.",
	}, []string{"topic", "reason"})

	// HTTPRequests counts handled requests by route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests handled, by route and status code.",
	}, []string{"route", "status"})
)

// Handler exposes the default registry for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
