package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	ContactsCreated      prometheus.Counter
	SubEntityWrites      *prometheus.CounterVec
	ValidationFailures   *prometheus.CounterVec
	EmploymentPatches    prometheus.Counter
	EmploymentPatchOps   *prometheus.CounterVec
	RefDataCacheOutcomes *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		ContactsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contact_registry_contacts_created_total",
			Help: "Total number of contacts created in the registry",
		}),
		SubEntityWrites: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_registry_sub_entity_writes_total",
			Help: "Writes to contact sub-entities by entity and operation",
		}, []string{"entity", "operation"}),
		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_registry_validation_failures_total",
			Help: "Rejected writes by validation rule",
		}, []string{"rule"}),
		EmploymentPatches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "contact_registry_employment_patches_total",
			Help: "Total number of employment patch requests applied",
		}),
		EmploymentPatchOps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_registry_employment_patch_operations_total",
			Help: "Individual operations applied by employment patches",
		}, []string{"operation"}),
		RefDataCacheOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_registry_refdata_cache_total",
			Help: "Reference data cache lookups by outcome",
		}, []string{"outcome"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "contact_registry_request_duration_seconds",
			Help:    "HTTP request latency by method and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
}

// IncrementContactsCreated increments the contacts created counter by 1
func (m *Metrics) IncrementContactsCreated() {
	if m == nil {
		return
	}
	m.ContactsCreated.Inc()
}

// RecordWrite counts one sub-entity write, e.g. ("phone", "create").
func (m *Metrics) RecordWrite(entity, operation string) {
	if m == nil {
		return
	}
	m.SubEntityWrites.WithLabelValues(entity, operation).Inc()
}

// RecordValidationFailure counts one rejected write by rule name.
func (m *Metrics) RecordValidationFailure(rule string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(rule).Inc()
}

// RecordEmploymentPatch counts a patch and its per-operation breakdown.
func (m *Metrics) RecordEmploymentPatch(created, updated, deleted int) {
	if m == nil {
		return
	}
	m.EmploymentPatches.Inc()
	m.EmploymentPatchOps.WithLabelValues("create").Add(float64(created))
	m.EmploymentPatchOps.WithLabelValues("update").Add(float64(updated))
	m.EmploymentPatchOps.WithLabelValues("delete").Add(float64(deleted))
}

// RecordRefDataCache counts a cache lookup outcome: hit, miss or error.
func (m *Metrics) RecordRefDataCache(outcome string) {
	if m == nil {
		return
	}
	m.RefDataCacheOutcomes.WithLabelValues(outcome).Inc()
}

// ObserveRequest records one request's latency.
func (m *Metrics) ObserveRequest(method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, status).Observe(seconds)
}
