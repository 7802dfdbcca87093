package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"tuition.app/billing/model"
	"tuition.app/billing/repository/pgconv"
)

// GetTuitionConfig returns the school's billing settings. Generation cannot
// run without them, so a missing row is ErrConfigurationMissing.
func (b *business) GetTuitionConfig(ctx context.Context, schoolID uuid.UUID) (*model.TuitionConfig, error) {
	dbConfig, err := b.catalogRepo.GetTuitionConfig(ctx, pgconv.UUID(schoolID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("school %s: %w", schoolID, ErrConfigurationMissing)
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get tuition config"}
	}

	return &model.TuitionConfig{
		SchoolID: pgconv.FromUUID(dbConfig.SchoolID),
		DueDay:   int(dbConfig.DueDay),
	}, nil
}
