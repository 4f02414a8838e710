package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/campus-admin-api/internal/dto"
)

var (
	registerOnce      sync.Once
	apiRequestsTotal  *prometheus.CounterVec
	apiLatencySeconds *prometheus.HistogramVec
	apiErrorsTotal    *prometheus.CounterVec
	dashboardMetrics  *prometheus.GaugeVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campus_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "campus_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campus_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		dashboardMetrics = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "campus_dashboard_metric",
			Help: "Latest computed value of each dashboard metric.",
		}, []string{"metric"})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, apiErrorsTotal, dashboardMetrics)
	})
}

// APIRequests exposes the counter for API requests.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram for API requests.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the counter for API error responses.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// SetDashboardTotals mirrors the latest dashboard computation into the scrape
// surface.
func SetDashboardTotals(totals dto.DashboardTotalsResponse) {
	RegisterMetrics()
	dashboardMetrics.WithLabelValues("total_students").Set(float64(totals.TotalStudents))
	dashboardMetrics.WithLabelValues("fees_collected").Set(totals.FeesCollected)
	dashboardMetrics.WithLabelValues("dues").Set(totals.Dues)
	dashboardMetrics.WithLabelValues("hostel_occupied").Set(float64(totals.HostelOccupied))
	dashboardMetrics.WithLabelValues("hostel_free").Set(float64(totals.HostelFree))
	dashboardMetrics.WithLabelValues("pass_rate").Set(float64(totals.PassRate))
	dashboardMetrics.WithLabelValues("books_out").Set(float64(totals.BooksOut))
	dashboardMetrics.WithLabelValues("active_passes").Set(float64(totals.ActivePasses))
}
