package attendance

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultExpectedHours is applied by the attendance source when a period
// carries no explicit expectation.
var DefaultExpectedHours = decimal.NewFromInt(160)

var periodRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParsePeriod validates a payroll period identifier ("YYYY-MM").
func ParsePeriod(s string) (string, error) {
	if !periodRegex.MatchString(s) {
		return "", ErrInvalidPeriodFormat
	}
	return s, nil
}

// CurrentPeriod returns the period identifier for the given time.
func CurrentPeriod(t time.Time) string {
	return t.Format("2006-01")
}

// AttendancePeriod is the total a biometric source reports for one
// employee in one period. Immutable once payroll has computed against it.
type AttendancePeriod struct {
	EmployeeID      string          `json:"employee_id"`
	Period          string          `json:"period"`
	AttendanceHours decimal.Decimal `json:"attendance_hours"`
	ExpectedHours   decimal.Decimal `json:"expected_hours"`
	RawLogs         []RawLog        `json:"raw_logs,omitempty"`
}

// RawLog is a single check-in/check-out entry. The payroll core treats
// these as opaque audit data and never computes from them.
type RawLog struct {
	Date     string          `json:"date"`
	CheckIn  string          `json:"check_in"`
	CheckOut string          `json:"check_out"`
	Hours    decimal.Decimal `json:"hours"`
}
