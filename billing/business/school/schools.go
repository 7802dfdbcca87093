package school

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

func (b *business) ListActiveSchools(ctx context.Context) ([]model.School, error) {
	dbSchools, err := b.schoolRepo.ListActiveSchools(ctx)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list schools"}
	}

	result := make([]model.School, 0, len(dbSchools))
	for _, s := range dbSchools {
		result = append(result, model.School{ID: pgconv.FromUUID(s.ID), Name: s.Name})
	}
	return result, nil
}

// GetActiveSchoolYear returns ErrNoActiveSchoolYear when the school has no
// open year, which callers treat as "nothing to bill".
func (b *business) GetActiveSchoolYear(ctx context.Context, schoolID uuid.UUID) (*model.SchoolYear, error) {
	dbYear, err := b.schoolRepo.GetActiveSchoolYear(ctx, pgconv.UUID(schoolID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("school %s: %w", schoolID, ErrNoActiveSchoolYear)
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get active school year"}
	}

	return &model.SchoolYear{
		ID:       pgconv.FromUUID(dbYear.ID),
		SchoolID: pgconv.FromUUID(dbYear.SchoolID),
		Name:     dbYear.Name,
		StartsOn: dbYear.StartsOn.Time,
		EndsOn:   dbYear.EndsOn.Time,
	}, nil
}
