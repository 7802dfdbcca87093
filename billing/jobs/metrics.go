package jobs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	jobMonthlyBilling   = "monthly_billing"
	jobDelinquencySweep = "delinquency_sweep"
)

var (
	jobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tuition",
			Name:      "job_runs_total",
			Help:      "Total scheduled job runs",
		},
		[]string{"job", "status"},
	)

	jobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tuition",
			Name:      "job_duration_seconds",
			Help:      "Duration of scheduled job runs in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12), // 0.5s to ~17m
		},
		[]string{"job"},
	)

	jobItemFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tuition",
			Name:      "job_item_failures_total",
			Help:      "Schools or billing records a job could not process",
		},
		[]string{"job"},
	)

	billsGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tuition",
			Name:      "bills_generated_total",
			Help:      "Total billing records created by monthly billing",
		},
	)

	recordsDelayedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tuition",
			Name:      "billing_records_delayed_total",
			Help:      "Total billing records marked as delayed by the delinquency sweep",
		},
	)

	lateFeesAppliedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tuition",
			Name:      "late_fees_applied_total",
			Help:      "Total late fees assessed by the delinquency sweep",
		},
	)
)
