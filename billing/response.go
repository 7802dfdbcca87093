package billing

import (
	"time"

	"github.com/google/uuid"

	"tuition.app/billing/business/bill"
	"tuition.app/billing/domain/billingrecord"
	"tuition.app/billing/model"
)

const dateLayout = "2006-01-02"

type TuitionTypeSnapshot struct {
	TuitionTypeID   string `json:"tuition_type_id"`
	TuitionTypeName string `json:"tuition_type_name"`
	BaseAmount      string `json:"base_amount"`
	LateFeeType     string `json:"late_fee_type"`
	LateFeeValue    string `json:"late_fee_value"`
}

type DiscountAdjustment struct {
	Type        string `json:"type" validate:"required,oneof=percentage fixed"`
	Value       string `json:"value" validate:"required,numeric"`
	Description string `json:"description,omitempty"`
}

type ExtraCharge struct {
	Amount      string `json:"amount" validate:"required,numeric"`
	Description string `json:"description,omitempty"`
}

type AuditMetadata struct {
	CreatedBy        string `json:"created_by"`
	UpdatedBy        string `json:"updated_by,omitempty"`
	StatusChangedBy  string `json:"status_changed_by,omitempty"`
	PaidBy           string `json:"paid_by,omitempty"`
	LateFeeAppliedBy string `json:"late_fee_applied_by,omitempty"`
}

// BillingRecord is the wire form of a billing record. Amounts are decimal strings.
type BillingRecord struct {
	ID           string `json:"id"`
	SchoolID     string `json:"school_id"`
	StudentID    string `json:"student_id"`
	SchoolYearID string `json:"school_year_id"`
	BillingMonth int    `json:"billing_month"`
	BillingYear  int    `json:"billing_year"`

	TuitionType            TuitionTypeSnapshot  `json:"tuition_type_snapshot"`
	EffectiveTuitionAmount string               `json:"effective_tuition_amount"`
	ScholarshipAmount      string               `json:"scholarship_amount"`
	DiscountAdjustments    []DiscountAdjustment `json:"discount_adjustments"`
	ExtraCharges           []ExtraCharge        `json:"extra_charges"`
	LateFeeAmount          string               `json:"late_fee_amount"`
	FinalAmount            string               `json:"final_amount"`

	BillStatus       string     `json:"bill_status"`
	PaymentStatus    string     `json:"payment_status"`
	PaidAmount       string     `json:"paid_amount"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	LockedAt         *time.Time `json:"locked_at,omitempty"`
	PaymentMethod    string     `json:"payment_method,omitempty"`
	PaymentGateway   string     `json:"payment_gateway,omitempty"`
	PaymentReference string     `json:"payment_reference,omitempty"`
	DueDate          string     `json:"due_date"`

	Audit     AuditMetadata `json:"audit_metadata"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type BillingRecordResponse struct {
	BillingRecord BillingRecord `json:"billing_record"`
}

type ItemFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BatchResponse reports a bulk operation item by item.
type BatchResponse struct {
	Processed int           `json:"processed"`
	Succeeded int           `json:"succeeded"`
	Skipped   int           `json:"skipped"`
	Failures  []ItemFailure `json:"failures"`
}

func toBillingRecord(r *billingrecord.BillingRecord) BillingRecord {
	d := r.Data()

	adjustments := make([]DiscountAdjustment, 0, len(d.DiscountAdjustments))
	for _, a := range d.DiscountAdjustments {
		adjustments = append(adjustments, DiscountAdjustment{
			Type:        string(a.Type),
			Value:       a.Value.StringFixed(2),
			Description: a.Description,
		})
	}
	charges := make([]ExtraCharge, 0, len(d.ExtraCharges))
	for _, c := range d.ExtraCharges {
		charges = append(charges, ExtraCharge{
			Amount:      c.Amount.StringFixed(2),
			Description: c.Description,
		})
	}

	return BillingRecord{
		ID:           d.ID.String(),
		SchoolID:     d.SchoolID.String(),
		StudentID:    d.StudentID.String(),
		SchoolYearID: d.SchoolYearID.String(),
		BillingMonth: d.BillingMonth,
		BillingYear:  d.BillingYear,
		TuitionType: TuitionTypeSnapshot{
			TuitionTypeID:   d.TuitionType.TuitionTypeID.String(),
			TuitionTypeName: d.TuitionType.TuitionTypeName,
			BaseAmount:      d.TuitionType.BaseAmount.StringFixed(2),
			LateFeeType:     string(d.TuitionType.LateFeeType),
			LateFeeValue:    d.TuitionType.LateFeeValue.String(),
		},
		EffectiveTuitionAmount: d.EffectiveTuitionAmount.StringFixed(2),
		ScholarshipAmount:      d.ScholarshipAmount.StringFixed(2),
		DiscountAdjustments:    adjustments,
		ExtraCharges:           charges,
		LateFeeAmount:          d.LateFeeAmount.StringFixed(2),
		FinalAmount:            d.FinalAmount.StringFixed(2),
		BillStatus:             string(d.BillStatus),
		PaymentStatus:          string(d.PaymentStatus),
		PaidAmount:             d.PaidAmount.StringFixed(2),
		PaidAt:                 d.PaidAt,
		LockedAt:               d.LockedAt,
		PaymentMethod:          d.Payment.Method,
		PaymentGateway:         d.Payment.Gateway,
		PaymentReference:       d.Payment.Reference,
		DueDate:                d.DueDate.Format(dateLayout),
		Audit:                  AuditMetadata(d.Audit),
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}

func toBatchResponse(r *bill.BatchResult) *BatchResponse {
	failures := make([]ItemFailure, 0, len(r.Failures))
	for _, f := range r.Failures {
		failures = append(failures, ItemFailure{ID: idString(f.ID), Error: f.Error})
	}
	return &BatchResponse{
		Processed: r.Processed,
		Succeeded: r.Succeeded,
		Skipped:   r.Skipped,
		Failures:  failures,
	}
}

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func toDiscountAdjustments(in []DiscountAdjustment) ([]model.DiscountAdjustment, error) {
	out := make([]model.DiscountAdjustment, 0, len(in))
	for _, a := range in {
		v, err := parseAmount("discount_adjustments.value", a.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, model.DiscountAdjustment{
			Type:        model.AdjustmentType(a.Type),
			Value:       v,
			Description: a.Description,
		})
	}
	return out, nil
}

func toExtraCharges(in []ExtraCharge) ([]model.ExtraCharge, error) {
	out := make([]model.ExtraCharge, 0, len(in))
	for _, c := range in {
		v, err := parseAmount("extra_charges.amount", c.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, model.ExtraCharge{Amount: v, Description: c.Description})
	}
	return out, nil
}
