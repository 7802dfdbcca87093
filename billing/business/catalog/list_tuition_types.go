package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"tuition.app/billing/model"
	"tuition.app/billing/repository/pgconv"
)

// ListTuitionTypes returns the school's tuition catalog, default entry first.
func (b *business) ListTuitionTypes(ctx context.Context, schoolID uuid.UUID) ([]model.TuitionType, error) {
	dbTypes, err := b.catalogRepo.ListTuitionTypes(ctx, pgconv.UUID(schoolID))
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list tuition types"}
	}
	if len(dbTypes) == 0 {
		return nil, fmt.Errorf("school %s: %w", schoolID, ErrNoTuitionTypes)
	}

	types := make([]model.TuitionType, 0, len(dbTypes))
	for _, dbType := range dbTypes {
		amount, err := pgconv.Decimal(dbType.Amount)
		if err != nil {
			rlog.Error("invalid tuition type amount", "tuition_type_id", pgconv.FromUUID(dbType.ID), "error", err)
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to read tuition types"}
		}
		lateFee, err := pgconv.Decimal(dbType.LateFeeValue)
		if err != nil {
			rlog.Error("invalid tuition type late fee", "tuition_type_id", pgconv.FromUUID(dbType.ID), "error", err)
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to read tuition types"}
		}

		types = append(types, model.TuitionType{
			ID:           pgconv.FromUUID(dbType.ID),
			SchoolID:     pgconv.FromUUID(dbType.SchoolID),
			Name:         dbType.Name,
			Amount:       amount,
			LateFeeType:  model.LateFeeType(dbType.LateFeeType),
			LateFeeValue: lateFee,
			IsDefault:    dbType.IsDefault,
		})
	}

	return types, nil
}

// DefaultTuitionType picks the entry flagged as default, else the first one.
func DefaultTuitionType(types []model.TuitionType) (model.TuitionType, bool) {
	for _, t := range types {
		if t.IsDefault {
			return t, true
		}
	}
	if len(types) == 0 {
		return model.TuitionType{}, false
	}
	return types[0], true
}
