package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts list requests.
	// Labels: resource, status (HTTP status code), page_range (1-10, 11-50, ...)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_pagination_requests_total",
			Help: "Total number of paginated list requests",
		},
		[]string{"resource", "status", "page_range"},
	)

	// CollectionSize tracks the available item count seen by the last list request.
	CollectionSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "blog_collection_items",
			Help: "Number of available items per resource at the last list request",
		},
		[]string{"resource"},
	)
)

// RecordRequest records a paginated list request.
func RecordRequest(resource string, statusCode, page int) {
	RequestsTotal.WithLabelValues(resource, strconv.Itoa(statusCode), pageRangeBucket(page)).Inc()
}

// RecordTotal updates the collection size gauge.
func RecordTotal(resource string, total int64) {
	CollectionSize.WithLabelValues(resource).Set(float64(total))
}

func pageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
