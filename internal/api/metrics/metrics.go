// Package metrics defines and registers all custom Prometheus metrics for
// the barangay records API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "barangay"

// --- Auth metrics ---

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// --- Registry metrics ---

// CertificatesIssuedTotal counts issued certificates.
// Label:
//   - type: certificate type as submitted (e.g. "Barangay Clearance")
var CertificatesIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "certificates_issued_total",
		Help:      "Total number of certificates issued, by type.",
	},
	[]string{"type"},
)

// ResidentExportsTotal counts CSV export downloads.
var ResidentExportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resident_exports_total",
		Help:      "Total number of resident CSV exports served.",
	},
)

// --- Audit trail metrics ---

// AuditRecordedTotal counts activity entries persisted successfully.
// Label:
//   - entity: the entity the entry describes (user, resident, ...)
var AuditRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_recorded_total",
		Help:      "Total number of activity entries written to the audit trail.",
	},
	[]string{"entity"},
)

// AuditErrorsTotal counts activity entries that failed to persist.
var AuditErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of activity entries that failed to persist.",
	},
)

// AuditDroppedTotal counts activity entries dropped because the dispatcher
// queue was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of activity entries dropped due to a full queue.",
	},
)
