package monitoring

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const unmatchedRoute = "unmatched"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	PostsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_created_total",
		Help: "Total posts successfully stored",
	})

	PostValidationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "post_validation_failures_total",
		Help: "Total post submissions rejected for an empty message",
	})
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(PostsCreated)
	prometheus.MustRegister(PostValidationFailures)
}

// Middleware to track request timing and status code
type statusRecordingWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecordingWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// InstrumentHandler records the duration of every request under the route
// template it matched, so unknown paths do not create new series.
func InstrumentHandler(router *mux.Router, log logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecordingWriter{ResponseWriter: w, statusCode: http.StatusOK}
		router.ServeHTTP(rw, r)

		duration := time.Since(start)
		status := fmt.Sprintf("%d", rw.statusCode)
		RequestDuration.WithLabelValues(r.Method, routeName(router, r), status).Observe(duration.Seconds())

		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rw.statusCode,
			"duration": duration,
		}).Info("Request handled")
	})
}

func routeName(router *mux.Router, r *http.Request) string {
	var match mux.RouteMatch
	if !router.Match(r, &match) || match.Route == nil {
		return unmatchedRoute
	}
	tmpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tmpl
}
