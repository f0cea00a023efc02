package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	SpeakingChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speaking_checks_total",
			Help: "Speaking comparisons by deciding tier and verdict",
		},
		[]string{"tier", "correct"},
	)

	PointsComputations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "points_computations_total",
			Help: "Point aggregations by scope",
		},
		[]string{"scope"},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default Prometheus registry.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter, RequestDuration, SpeakingChecks, PointsComputations)
	})
}

// ObserveSpeakingCheck counts one matcher verdict.
func ObserveSpeakingCheck(tier string, correct bool) {
	SpeakingChecks.WithLabelValues(tier, strconv.FormatBool(correct)).Inc()
}

// ObservePointsComputation counts one aggregation ("user" or "team").
func ObservePointsComputation(scope string) {
	PointsComputations.WithLabelValues(scope).Inc()
}

// Middleware records request count and latency per route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		status := c.Response().StatusCode()

		RequestCounter.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
