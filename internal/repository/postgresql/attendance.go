package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/attendance"
	"github.com/schoolsuite/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) GetByEmployeePeriod(ctx context.Context, employeeID, period string) (attendance.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, period, attendance_hours, expected_hours, raw_logs
		FROM attendance_periods
		WHERE employee_id = $1 AND period = $2
	`

	var a attendance.AttendancePeriod
	var rawLogs []byte
	err := q.QueryRow(ctx, query, employeeID, period).Scan(
		&a.EmployeeID, &a.Period, &a.AttendanceHours, &a.ExpectedHours, &rawLogs,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendancePeriod{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendancePeriod{}, fmt.Errorf("failed to get attendance period: %w", err)
	}

	if len(rawLogs) > 0 {
		if err := json.Unmarshal(rawLogs, &a.RawLogs); err != nil {
			return attendance.AttendancePeriod{}, fmt.Errorf("failed to decode raw logs: %w", err)
		}
	}

	// Rows written before the expectation column was backfilled carry 0.
	if a.ExpectedHours.IsZero() {
		a.ExpectedHours = attendance.DefaultExpectedHours
	}

	return a, nil
}
