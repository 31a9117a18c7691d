package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/attendance"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/employee"
	"github.com/schoolsuite/payroll-backend-go/internal/handler/http/response"
)

// EmployeeHandler exposes read-only registry and attendance views. The
// admin surface that writes them lives outside this service.
type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeHandler(employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository) EmployeeHandler {
	return &employeeHandlerImpl{employeeRepo: employeeRepo, attendanceRepo: attendanceRepo}
}

func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepo.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.ToResponse(e))
	}
	response.Success(w, result)
}

func (h *employeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	e, err := h.employeeRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(e))
}

func (h *employeeHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	period := r.URL.Query().Get("period")
	if _, err := attendance.ParsePeriod(period); err != nil {
		response.HandleError(w, err)
		return
	}

	att, err := h.attendanceRepo.GetByEmployeePeriod(r.Context(), employeeID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, att)
}
