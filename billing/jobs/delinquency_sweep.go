package jobs

import (
	"context"
	"fmt"
	"time"

	"encore.dev/rlog"

	"tuition.app/billing/business/bill"
)

// RunDelinquencySweep ages every overdue bill across all schools and assesses
// late fees where due. Records are handled one at a time, each in its own
// transaction; a failing record is logged and skipped.
func (r *runner) RunDelinquencySweep(ctx context.Context, now time.Time) (*SweepReport, error) {
	start := time.Now()
	defer func() {
		jobDuration.WithLabelValues(jobDelinquencySweep).Observe(time.Since(start).Seconds())
	}()

	refs, err := r.bill.ListDelinquentBillingRecords(ctx, now)
	if err != nil {
		jobRunsTotal.WithLabelValues(jobDelinquencySweep, "error").Inc()
		return nil, fmt.Errorf("list delinquent billing records: %w", err)
	}

	report := &SweepReport{Processed: len(refs)}
	for _, ref := range refs {
		outcome, err := r.bill.SweepDelinquentRecord(ctx, ref, r.systemActor, now)
		if err != nil {
			rlog.Error("delinquency sweep failed for billing record",
				"job", jobDelinquencySweep,
				"school_id", ref.SchoolID,
				"billing_record_id", ref.ID,
				"error", err)
			jobItemFailuresTotal.WithLabelValues(jobDelinquencySweep).Inc()
			report.Failures = append(report.Failures, bill.ItemFailure{ID: ref.ID, Error: err.Error()})
			continue
		}

		if !outcome.Changed() {
			report.Unchanged++
			continue
		}
		if outcome.Delayed {
			report.Delayed++
			recordsDelayedTotal.Inc()
		}
		if outcome.LateFeeApplied {
			report.LateFeesApplied++
			lateFeesAppliedTotal.Inc()
		}
	}

	jobRunsTotal.WithLabelValues(jobDelinquencySweep, "completed").Inc()
	rlog.Info("delinquency sweep finished",
		"job", jobDelinquencySweep,
		"processed", report.Processed,
		"delayed", report.Delayed,
		"late_fees_applied", report.LateFeesApplied,
		"failed", len(report.Failures))

	return report, nil
}
