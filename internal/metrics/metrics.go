package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry содержит коллекторы приложения.
	Registry = prometheus.NewRegistry()

	// HTTPRequests — счетчик обработанных запросов по методу, роуту и статусу.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ocapi",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPDuration — гистограмма длительности запросов.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ocapi",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms .. ~5s
		},
		[]string{"method", "path"},
	)

	// LedgerEntriesWritten — счетчик строк двойной записи по виду транзакции.
	LedgerEntriesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ocapi",
			Subsystem: "ledger",
			Name:      "entries_written_total",
			Help:      "Total number of ledger rows written.",
		},
		[]string{"kind"},
	)

	// PayoutRuns — результаты попыток выплат фонового обработчика.
	PayoutRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ocapi",
			Subsystem: "payouts",
			Name:      "attempts_total",
			Help:      "Total number of payout attempts by outcome.",
		},
		[]string{"outcome"},
	)

	// RecurringCharges — результаты списаний по подпискам.
	RecurringCharges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ocapi",
			Subsystem: "orders",
			Name:      "recurring_charges_total",
			Help:      "Total number of recurring charge attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(
		HTTPRequests,
		HTTPDuration,
		LedgerEntriesWritten,
		PayoutRuns,
		RecurringCharges,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler отдает http.Handler для роута /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
