package payroll

import "errors"

var (
	ErrInvalidPeriod           = errors.New("expected hours must be greater than zero")
	ErrInvalidAttendance       = errors.New("attendance hours must not be negative")
	ErrInvalidDeductionConfig  = errors.New("deduction percentages must be within 0-100 and fixed deductions non-negative")
	ErrDuplicateRecord         = errors.New("payroll record already exists for this employee and period")
	ErrInvalidState            = errors.New("operation not allowed in the record's current status")
	ErrRecordNotFound          = errors.New("payroll record not found")
	ErrNegativeNetNotAcked     = errors.New("negative net pay must be acknowledged first")
	ErrReprocessReasonRequired = errors.New("reprocessing requires a reason")
)
