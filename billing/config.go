package billing

import (
	"encore.dev/config"
)

type TemporalConfig struct {
	HostPort  config.String
	Namespace config.String
	TaskQueue config.String
}

type Config struct {
	// SystemActor is recorded as the author of everything the scheduled jobs write.
	SystemActor config.String

	// SchedulerEnabled starts the cron workflows on service start.
	SchedulerEnabled     config.Bool
	MonthlyBillingCron   config.String
	DelinquencySweepCron config.String

	Temporal TemporalConfig
}

var cfg = config.Load[*Config]()

var taskQueue = cfg.Temporal.TaskQueue()
