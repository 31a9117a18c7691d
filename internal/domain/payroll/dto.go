package payroll

import (
	"github.com/schoolsuite/payroll-backend-go/internal/domain/attendance"
	"github.com/schoolsuite/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PROCESSING DTOs ==========

type ProcessPayrollRequest struct {
	Period      string   `json:"period"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // Empty = all active employees
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := attendance.ParsePeriod(r.Period); err != nil {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be in YYYY-MM format"})
	}
	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "must not contain empty entries"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReprocessRequest struct {
	Reason string `json:"reason"`
}

func (r *ReprocessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSE DTOs ==========

type GrossPayResponse struct {
	RegularPay  int64 `json:"regular_pay"`
	OvertimePay int64 `json:"overtime_pay"`
	Total       int64 `json:"total"`
}

type DeductionsResponse struct {
	IncomeTax       int64 `json:"income_tax"`
	SocialSecurity  int64 `json:"social_security"`
	OtherDeductions int64 `json:"other_deductions"`
	Total           int64 `json:"total"`
}

type PayrollRecordResponse struct {
	ID               string              `json:"id"`
	EmployeeID       string              `json:"employee_id"`
	Period           string              `json:"period"`
	AttendanceHours  decimal.Decimal     `json:"attendance_hours"`
	ExpectedHours    decimal.Decimal     `json:"expected_hours"`
	AttendanceRate   decimal.Decimal     `json:"attendance_rate"`
	GrossPay         GrossPayResponse    `json:"gross_pay"`
	Deductions       DeductionsResponse  `json:"deductions"`
	NetPay           int64               `json:"net_pay"`
	BenefitsTotal    int64               `json:"benefits_total"`
	Status           string              `json:"status"`
	FailureReason    *string             `json:"failure_reason,omitempty"`
	NegativeNet      bool                `json:"negative_net"`
	NegativeNetAck   bool                `json:"negative_net_acknowledged"`
	ProcessedAt      *string             `json:"processed_at,omitempty"`
	PayStubGenerated bool                `json:"pay_stub_generated"`
	AuditNote        *string             `json:"audit_note,omitempty"`
	RawLogs          []attendance.RawLog `json:"raw_logs,omitempty"`
}

// ========== BATCH DTOs ==========

type BatchOutcomeStatus string

const (
	BatchOutcomeProcessed BatchOutcomeStatus = "processed"
	BatchOutcomeFailed    BatchOutcomeStatus = "failed"
	BatchOutcomeSkipped   BatchOutcomeStatus = "skipped"
)

// BatchOutcome is one employee's result within a batch run.
type BatchOutcome struct {
	EmployeeID string             `json:"employee_id"`
	Status     BatchOutcomeStatus `json:"status"`
	RecordID   string             `json:"record_id,omitempty"`
	Reason     string             `json:"reason,omitempty"`
}

// BatchResult collects every outcome of a period run. A failure for one
// employee never aborts the others.
type BatchResult struct {
	Period         string         `json:"period"`
	ProcessedCount int            `json:"processed_count"`
	FailedCount    int            `json:"failed_count"`
	SkippedCount   int            `json:"skipped_count"`
	Outcomes       []BatchOutcome `json:"outcomes"`
}
