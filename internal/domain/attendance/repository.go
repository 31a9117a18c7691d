package attendance

import "context"

// AttendanceRepository reads biometric attendance totals per employee
// per period. The device integration feeding it is an external concern.
type AttendanceRepository interface {
	GetByEmployeePeriod(ctx context.Context, employeeID, period string) (AttendancePeriod, error)
}
