package catalog

import "errors"

var (
	ErrConfigurationMissing = errors.New("tuition configuration is missing")
	ErrNoTuitionTypes       = errors.New("no tuition types configured")
)
