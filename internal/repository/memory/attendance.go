package memory

import (
	"context"
	"sync"

	"github.com/schoolsuite/payroll-backend-go/internal/domain/attendance"
)

// AttendanceRepository is an in-memory attendance source. Periods
// without an explicit expectation get the default on Put.
type AttendanceRepository struct {
	mu      sync.RWMutex
	periods map[attendanceKey]attendance.AttendancePeriod
}

type attendanceKey struct {
	employeeID string
	period     string
}

func NewAttendanceRepository(seed ...attendance.AttendancePeriod) *AttendanceRepository {
	r := &AttendanceRepository{
		periods: make(map[attendanceKey]attendance.AttendancePeriod, len(seed)),
	}
	for _, p := range seed {
		r.Put(p)
	}
	return r
}

func (r *AttendanceRepository) Put(p attendance.AttendancePeriod) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ExpectedHours.IsZero() {
		p.ExpectedHours = attendance.DefaultExpectedHours
	}
	r.periods[attendanceKey{employeeID: p.EmployeeID, period: p.Period}] = p
}

func (r *AttendanceRepository) GetByEmployeePeriod(_ context.Context, employeeID, period string) (attendance.AttendancePeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.periods[attendanceKey{employeeID: employeeID, period: period}]
	if !ok {
		return attendance.AttendancePeriod{}, attendance.ErrAttendanceNotFound
	}
	return p, nil
}
