package billing

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"

	"encore.dev/beta/errs"

	"tuition.app/billing/workflow"
)

func TestTriggerJobs(t *testing.T) {
	now := time.Date(2025, time.June, 1, 1, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		trigger  func(s *Service, ctx context.Context, req *TriggerJobRequest) (*TriggerJobResponse, error)
		cronID   string
		workflow interface{}
	}{
		{
			name:     "monthly_billing",
			trigger:  (*Service).TriggerMonthlyBilling,
			cronID:   workflow.MonthlyBillingWorkflowID,
			workflow: workflow.MonthlyBilling,
		},
		{
			name:     "delinquency_sweep",
			trigger:  (*Service).TriggerDelinquencySweep,
			cronID:   workflow.DelinquencySweepWorkflowID,
			workflow: workflow.DelinquencySweep,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, mockTemporal := newTestService(t)
			run := mocks.NewWorkflowRun(t)
			run.On("GetID").Return(tc.cronID + "-manual-1")
			run.On("GetRunID").Return("run-1")

			mockTemporal.On("ExecuteWorkflow",
				mock.Anything,
				mock.MatchedBy(func(o client.StartWorkflowOptions) bool {
					return strings.HasPrefix(o.ID, tc.cronID+"-manual-") && o.CronSchedule == ""
				}),
				mock.MatchedBy(func(wf interface{}) bool {
					return reflect.ValueOf(wf).Pointer() == reflect.ValueOf(tc.workflow).Pointer()
				}),
				workflow.JobParams{Now: now},
			).Return(run, nil)

			resp, err := tc.trigger(svc, context.Background(), &TriggerJobRequest{Now: now})

			require.NoError(t, err)
			assert.Equal(t, tc.cronID+"-manual-1", resp.WorkflowID)
			assert.Equal(t, "run-1", resp.RunID)
		})
	}
}

func TestTriggerJobs_StartFailure(t *testing.T) {
	svc, _, mockTemporal := newTestService(t)
	mockTemporal.On("ExecuteWorkflow",
		mock.Anything,
		mock.Anything,
		mock.Anything,
		mock.Anything,
	).Return(nil, errors.New("temporal unavailable"))

	resp, err := svc.TriggerDelinquencySweep(context.Background(), &TriggerJobRequest{})

	assert.Equal(t, errs.Unavailable, errs.Code(err))
	assert.Nil(t, resp)
}
