package billing

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/client"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"tuition.app/billing/workflow"
)

type TriggerJobRequest struct {
	// Now overrides the clock the job bills against. Zero means the time the
	// workflow starts.
	Now time.Time `json:"now"`
}

type TriggerJobResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// TriggerMonthlyBilling starts an out of schedule monthly billing run.
//
//encore:api private path=/v1/jobs/monthly-billing method=POST
func (s *Service) TriggerMonthlyBilling(ctx context.Context, req *TriggerJobRequest) (*TriggerJobResponse, error) {
	return s.triggerJob(ctx, workflow.MonthlyBillingWorkflowID, workflow.MonthlyBilling, req.Now)
}

// TriggerDelinquencySweep starts an out of schedule delinquency sweep.
//
//encore:api private path=/v1/jobs/delinquency-sweep method=POST
func (s *Service) TriggerDelinquencySweep(ctx context.Context, req *TriggerJobRequest) (*TriggerJobResponse, error) {
	return s.triggerJob(ctx, workflow.DelinquencySweepWorkflowID, workflow.DelinquencySweep, req.Now)
}

func (s *Service) triggerJob(ctx context.Context, cronID string, wf interface{}, now time.Time) (*TriggerJobResponse, error) {
	workflowID := fmt.Sprintf("%s-manual-%d", cronID, time.Now().UnixNano())

	run, err := s.temporal.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}, wf, workflow.JobParams{Now: now})
	if err != nil {
		rlog.Error("failed to start job workflow", "workflow_id", workflowID, "error", err)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to start job"}
	}

	rlog.Info("job workflow started", "workflow_id", run.GetID(), "run_id", run.GetRunID())
	return &TriggerJobResponse{WorkflowID: run.GetID(), RunID: run.GetRunID()}, nil
}
