package workflow

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
)

const (
	MonthlyBillingWorkflowID   = "tuition-monthly-billing"
	DelinquencySweepWorkflowID = "tuition-delinquency-sweep"
)

// Schedule configures the cron runs of both jobs.
type Schedule struct {
	TaskQueue            string
	MonthlyBillingCron   string
	DelinquencySweepCron string
}

// Registry is the part of a Temporal worker that accepts registrations.
type Registry interface {
	RegisterWorkflow(w interface{})
	RegisterActivity(a interface{})
}

// Register adds the job workflows and activities to a worker
func Register(r Registry) {
	r.RegisterWorkflow(MonthlyBilling)
	r.RegisterWorkflow(DelinquencySweep)
	r.RegisterActivity(MonthlyBillingActivity)
	r.RegisterActivity(DelinquencySweepActivity)
}

// StartCronWorkflows starts both cron workflows. A cron workflow that is
// already running is left as is.
func StartCronWorkflows(ctx context.Context, c client.Client, s Schedule) error {
	crons := []struct {
		id       string
		schedule string
		workflow any
	}{
		{MonthlyBillingWorkflowID, s.MonthlyBillingCron, MonthlyBilling},
		{DelinquencySweepWorkflowID, s.DelinquencySweepCron, DelinquencySweep},
	}

	for _, cron := range crons {
		options := client.StartWorkflowOptions{
			ID:           cron.id,
			TaskQueue:    s.TaskQueue,
			CronSchedule: cron.schedule,
		}
		_, err := c.ExecuteWorkflow(ctx, options, cron.workflow, JobParams{})
		if err != nil {
			if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
				continue
			}
			return fmt.Errorf("start cron workflow %s: %w", cron.id, err)
		}
	}
	return nil
}
