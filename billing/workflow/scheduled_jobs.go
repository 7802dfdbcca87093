package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"tuition.app/billing/jobs"
)

// JobParams pins the clock a job run uses. A zero Now means the workflow's
// own start time, which for cron runs is the scheduled tick.
type JobParams struct {
	Now time.Time `json:"now"`
}

// MonthlyBilling runs one pass of the monthly bill generation
func MonthlyBilling(ctx workflow.Context, params JobParams) (*jobs.MonthlyBillingReport, error) {
	logger := workflow.GetLogger(ctx)
	now := jobTime(ctx, params)
	logger.Info("Starting monthly billing workflow", "now", now)

	var report jobs.MonthlyBillingReport
	err := workflow.ExecuteActivity(jobActivityContext(ctx), MonthlyBillingActivity, now).Get(ctx, &report)
	if err != nil {
		logger.Error("Monthly billing workflow failed", "error", err)
		return nil, err
	}

	logger.Info("Monthly billing workflow completed", "billsCreated", report.BillsCreated, "schools", report.Schools)
	return &report, nil
}

// DelinquencySweep runs one pass of the delinquency sweep
func DelinquencySweep(ctx workflow.Context, params JobParams) (*jobs.SweepReport, error) {
	logger := workflow.GetLogger(ctx)
	now := jobTime(ctx, params)
	logger.Info("Starting delinquency sweep workflow", "now", now)

	var report jobs.SweepReport
	err := workflow.ExecuteActivity(jobActivityContext(ctx), DelinquencySweepActivity, now).Get(ctx, &report)
	if err != nil {
		logger.Error("Delinquency sweep workflow failed", "error", err)
		return nil, err
	}

	logger.Info("Delinquency sweep workflow completed", "processed", report.Processed, "delayed", report.Delayed)
	return &report, nil
}

func jobTime(ctx workflow.Context, params JobParams) time.Time {
	if !params.Now.IsZero() {
		return params.Now
	}
	return workflow.Now(ctx)
}

// Both jobs skip work that is already done, so a retried attempt only
// finishes what the failed one left.
func jobActivityContext(ctx workflow.Context) workflow.Context {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    10 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Minute,
			MaximumAttempts:    3,
		},
	}
	return workflow.WithActivityOptions(ctx, activityOptions)
}
