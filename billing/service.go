package billing

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"tuition.app/billing/business/bill"
	"tuition.app/billing/business/catalog"
	"tuition.app/billing/business/school"
	"tuition.app/billing/domain"
	"tuition.app/billing/jobs"
	"tuition.app/billing/store"
	"tuition.app/billing/workflow"
)

var tuitionDB = sqldb.NewDatabase("tuition", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

//encore:service
type Service struct {
	business bill.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(tuitionDB)
	st := store.NewStore(pgxdb)

	catalogBusiness := catalog.NewCatalogBusiness(st.Catalog)
	schoolBusiness := school.NewSchoolBusiness(st.Schools)
	billBusiness := bill.NewBillBusiness(
		st.BillingRecords,
		catalogBusiness,
		schoolBusiness,
		domain.NewBillingRecordStateMachine(st),
	)

	workflow.SetActivityDependencies(jobs.NewRunner(billBusiness, schoolBusiness, catalogBusiness, cfg.SystemActor()))

	c, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort(),
		Namespace: cfg.Temporal.Namespace(),
	})
	if err != nil {
		return nil, fmt.Errorf("create temporal client: %w", err)
	}

	w := worker.New(c, taskQueue, worker.Options{})
	workflow.Register(w)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	if cfg.SchedulerEnabled() {
		schedule := workflow.Schedule{
			TaskQueue:            taskQueue,
			MonthlyBillingCron:   cfg.MonthlyBillingCron(),
			DelinquencySweepCron: cfg.DelinquencySweepCron(),
		}
		safeAsync("start cron workflows", func(ctx context.Context) error {
			return workflow.StartCronWorkflows(ctx, c, schedule)
		})
	} else {
		rlog.Info("billing scheduler disabled")
	}

	return &Service{
		business: billBusiness,
		temporal: c,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
