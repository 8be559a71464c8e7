package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса.
// Методы безопасно вызывать на nil, когда метрики выключены.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration    *prometheus.HistogramVec
	dbOpenConnections  prometheus.Gauge
	dbInUseConnections prometheus.Gauge
	dbWaitCount        prometheus.Gauge

	bookingsCreated   *prometheus.CounterVec
	bookingsRejected  *prometheus.CounterVec
	scheduleSaves     *prometheus.CounterVec
	blocksGenerated   prometheus.Counter
	washerCacheLookup *prometheus.CounterVec
}

// New регистрирует метрики в стандартном реестре
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(prometheus.WrapRegistererWith(prometheus.Labels{"service": serviceName}, reg))

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		dbOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}),
		dbInUseConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}),
		dbWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}),
		bookingsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings created, by assignment mode",
		}, []string{"mode"}),
		bookingsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_rejected_total",
			Help: "Booking attempts rejected, by error kind",
		}, []string{"reason"}),
		scheduleSaves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "schedule_saves_total",
			Help: "Washer schedule save attempts, by outcome",
		}, []string{"outcome"}),
		blocksGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "availability_blocks_generated_total",
			Help: "Availability blocks written by schedule regeneration",
		}),
		washerCacheLookup: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "washer_cache_lookups_total",
			Help: "Washer profile cache lookups, by result",
		}, []string{"result"}),
	}
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает запрос к БД
func (m *Metrics) ObserveDBQuery(operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBPoolStats публикует статистику пула соединений
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUseConnections.Set(float64(stats.InUse))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

func (m *Metrics) IncBookingCreated(mode string) {
	if m == nil {
		return
	}
	m.bookingsCreated.WithLabelValues(mode).Inc()
}

func (m *Metrics) IncBookingRejected(reason string) {
	if m == nil {
		return
	}
	m.bookingsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncScheduleSave(outcome string) {
	if m == nil {
		return
	}
	m.scheduleSaves.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AddGeneratedBlocks(n int) {
	if m == nil {
		return
	}
	m.blocksGenerated.Add(float64(n))
}

func (m *Metrics) IncWasherCacheLookup(result string) {
	if m == nil {
		return
	}
	m.washerCacheLookup.WithLabelValues(result).Inc()
}
