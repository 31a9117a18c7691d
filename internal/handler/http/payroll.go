package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/payroll"
	"github.com/schoolsuite/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ProcessPeriod(w http.ResponseWriter, r *http.Request)
	ProcessEmployee(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
	GeneratePayStub(w http.ResponseWriter, r *http.Request)
	AcknowledgeNegativeNet(w http.ResponseWriter, r *http.Request)
	Reprocess(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ========== PROCESSING ==========

func (h *payrollHandlerImpl) ProcessPeriod(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.ProcessPeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed", result)
}

func (h *payrollHandlerImpl) ProcessEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	period := r.URL.Query().Get("period")
	if period == "" {
		response.BadRequest(w, "period is required", nil)
		return
	}

	result, err := h.payrollService.ProcessEmployee(r.Context(), employeeID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll record created", result)
}

// ========== RECORDS ==========

func (h *payrollHandlerImpl) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	result, err := h.payrollService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		response.BadRequest(w, "period is required", nil)
		return
	}

	var filter payroll.RecordFilter
	if status := r.URL.Query().Get("status"); status != "" {
		s := payroll.RecordStatus(status)
		filter.Status = &s
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	result, err := h.payrollService.ListRecords(r.Context(), period, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== LIFECYCLE ACTIONS ==========

func (h *payrollHandlerImpl) GeneratePayStub(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	result, err := h.payrollService.GeneratePayStub(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay stub generated", result)
}

func (h *payrollHandlerImpl) AcknowledgeNegativeNet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	if err := h.payrollService.AcknowledgeNegativeNet(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Negative net pay acknowledged", nil)
}

func (h *payrollHandlerImpl) Reprocess(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req payroll.ReprocessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Reprocess(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record reprocessed", result)
}
