// internal/common/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apierrors "rulecraft-chat/internal/common/errors"
)

var (
	RepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_replies_total",
			Help: "Total number of replies produced, by matched rule",
		},
		[]string{"rule"},
	)

	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of external API calls, by service and outcome",
		},
		[]string{"service", "status"},
	)

	GatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gateway_request_duration_seconds",
			Help: "Duration of external API calls in seconds",
		},
		[]string{"service"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of inbound HTTP requests in seconds",
		},
		[]string{"path", "status"},
	)
)

// ObserveGateway records one external call. Status is derived from err so
// every gateway client reports outcomes the same way.
func ObserveGateway(service string, start time.Time, err error) {
	GatewayRequestDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
	GatewayRequestsTotal.WithLabelValues(service, gatewayStatus(err)).Inc()
}

func gatewayStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case apierrors.IsMissingCredential(err):
		return "missing_key"
	case apierrors.IsNotFound(err):
		return "not_found"
	case apierrors.IsTimeout(err):
		return "timeout"
	default:
		return "error"
	}
}
