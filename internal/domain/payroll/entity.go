package payroll

import (
	"time"

	"github.com/schoolsuite/payroll-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// RecordStatus enum
type RecordStatus string

const (
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusProcessed RecordStatus = "processed"
	RecordStatusFailed    RecordStatus = "failed"
)

// Terminal reports whether a record in this status may only change
// through an explicit reprocess override.
func (s RecordStatus) Terminal() bool {
	return s == RecordStatusProcessed || s == RecordStatusFailed
}

// GrossPay - earnings before deductions, minor currency units.
type GrossPay struct {
	RegularPay  int64
	OvertimePay int64
	Total       int64
}

// Deductions - amounts withheld from gross pay, minor currency units.
type Deductions struct {
	IncomeTax       int64
	SocialSecurity  int64
	OtherDeductions int64
	Total           int64
}

// PayrollRecord - one employee's payroll result for one period.
// Exactly one record may exist per (EmployeeID, Period); the store
// enforces this with an insert-if-absent constraint.
type PayrollRecord struct {
	ID               string
	EmployeeID       string
	Period           string
	AttendanceHours  decimal.Decimal
	ExpectedHours    decimal.Decimal
	AttendanceRate   decimal.Decimal
	GrossPay         GrossPay
	Deductions       Deductions
	NetPay           int64
	BenefitsTotal    int64 // employee benefits captured at processing time
	Status           RecordStatus
	FailureReason    *string
	NegativeNet      bool
	NegativeNetAck   bool
	ProcessedAt      *time.Time
	PayStubGenerated bool
	AuditNote        *string
	RawLogs          []attendance.RawLog
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
