package billing

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var metricsHandler = promhttp.Handler()

// Metrics exposes the job counters in the Prometheus text format.
//
//encore:api public raw path=/metrics method=GET
func (s *Service) Metrics(w http.ResponseWriter, req *http.Request) {
	metricsHandler.ServeHTTP(w, req)
}
