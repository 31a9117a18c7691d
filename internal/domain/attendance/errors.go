package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance period not found")
	ErrInvalidPeriodFormat = errors.New("period must be in YYYY-MM format")
)
