package billing

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
)

var validate = validator.New()

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, &errs.Error{Code: errs.InvalidArgument, Message: field + " must be a valid UUID"}
	}
	return id, nil
}

func parseIDs(field string, values []string) ([]uuid.UUID, error) {
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := parseID(field, v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &errs.Error{Code: errs.InvalidArgument, Message: field + " must be a decimal amount"}
	}
	return d, nil
}

func parseRecordPath(schoolID, id string) (uuid.UUID, uuid.UUID, error) {
	sid, err := parseID("school_id", schoolID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	rid, err := parseID("id", id)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return sid, rid, nil
}
