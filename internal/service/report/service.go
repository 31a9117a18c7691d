package report

import (
	"context"

	"github.com/schoolsuite/payroll-backend-go/internal/domain/attendance"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/payroll"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	payrollRepo payroll.PayrollRepository
}

func NewReportService(payrollRepo payroll.PayrollRepository) report.ReportService {
	return &ReportServiceImpl{payrollRepo: payrollRepo}
}

func (s *ReportServiceImpl) PeriodSummary(ctx context.Context, period string) (report.PeriodSummary, error) {
	if _, err := attendance.ParsePeriod(period); err != nil {
		return report.PeriodSummary{}, err
	}

	records, err := s.payrollRepo.ListByPeriod(ctx, period, payroll.RecordFilter{})
	if err != nil {
		return report.PeriodSummary{}, err
	}

	summary := Summarize(records)
	summary.Period = period
	return summary, nil
}

// Summarize aggregates a set of payroll records into a period view. It
// is a pure function of its input: deterministic, idempotent, and safe
// on an empty slice.
func Summarize(records []payroll.PayrollRecord) report.PeriodSummary {
	var summary report.PeriodSummary

	staff := make(map[string]struct{}, len(records))
	for _, r := range records {
		staff[r.EmployeeID] = struct{}{}

		switch r.Status {
		case payroll.RecordStatusProcessed:
			summary.ProcessedCount++
			summary.TotalNetPay += r.NetPay
			summary.TotalTaxes += r.Deductions.IncomeTax
			summary.TotalBenefits += r.BenefitsTotal
		case payroll.RecordStatusPending:
			summary.PendingCount++
		case payroll.RecordStatusFailed:
			summary.FailedCount++
		}
	}

	summary.TotalStaff = len(staff)
	if summary.ProcessedCount > 0 {
		summary.AverageSalary = summary.TotalNetPay / int64(summary.ProcessedCount)
	}
	return summary
}
