package workflow

import (
	"context"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"tuition.app/billing/jobs"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Runner jobs.Runner
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(runner jobs.Runner) {
	activityDeps = &ActivityDependencies{
		Runner: runner,
	}
}

// MonthlyBillingActivity issues the bills of now's month for every school
func MonthlyBillingActivity(ctx context.Context, now time.Time) (*jobs.MonthlyBillingReport, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing monthly billing activity", "now", now)

	if activityDeps == nil || activityDeps.Runner == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	report, err := activityDeps.Runner.RunMonthlyBilling(ctx, now)
	if err != nil {
		logger.Error("Failed to run monthly billing", "error", err)
		return nil, err
	}

	logger.Info("Successfully ran monthly billing",
		"billingMonth", report.BillingMonth,
		"billingYear", report.BillingYear,
		"billsCreated", report.BillsCreated,
		"schoolsFailed", len(report.Failures))
	return report, nil
}

// DelinquencySweepActivity ages overdue bills and assesses late fees
func DelinquencySweepActivity(ctx context.Context, now time.Time) (*jobs.SweepReport, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing delinquency sweep activity", "now", now)

	if activityDeps == nil || activityDeps.Runner == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	report, err := activityDeps.Runner.RunDelinquencySweep(ctx, now)
	if err != nil {
		logger.Error("Failed to run delinquency sweep", "error", err)
		return nil, err
	}

	logger.Info("Successfully ran delinquency sweep",
		"processed", report.Processed,
		"delayed", report.Delayed,
		"lateFeesApplied", report.LateFeesApplied,
		"failed", len(report.Failures))
	return report, nil
}
