package http

import (
	"net/http"

	"github.com/schoolsuite/payroll-backend-go/internal/domain/report"
	"github.com/schoolsuite/payroll-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetPeriodSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) GetPeriodSummary(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		response.BadRequest(w, "period is required", nil)
		return
	}

	result, err := h.reportService.PeriodSummary(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
