package response

import (
	"errors"
	"net/http"

	"github.com/schoolsuite/payroll-backend-go/internal/domain/attendance"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/employee"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/payroll"
	"github.com/schoolsuite/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Registry / attendance source errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance period not found")
	case errors.Is(err, attendance.ErrInvalidPeriodFormat):
		BadRequest(w, "Period must be in YYYY-MM format", nil)

	// Payroll lifecycle errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrDuplicateRecord):
		Conflict(w, "Payroll record already exists for this employee and period")
	case errors.Is(err, payroll.ErrInvalidState):
		Conflict(w, "Operation not allowed in the record's current status")
	case errors.Is(err, payroll.ErrNegativeNetNotAcked):
		Conflict(w, "Negative net pay must be acknowledged before generating a pay stub")
	case errors.Is(err, payroll.ErrReprocessReasonRequired):
		BadRequest(w, "Reprocessing requires a reason", nil)

	// Calculator validation errors surfaced synchronously
	case errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, payroll.ErrInvalidAttendance),
		errors.Is(err, payroll.ErrInvalidDeductionConfig):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
