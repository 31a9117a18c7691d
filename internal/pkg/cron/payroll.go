package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/schoolsuite/payroll-backend-go/internal/domain/attendance"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/payroll"
)

// PayrollJobs contains payroll-related cron jobs
type PayrollJobs struct {
	payrollService payroll.PayrollService
}

// NewPayrollJobs creates payroll cron jobs
func NewPayrollJobs(payrollService payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
	}
}

// RegisterJobs registers all payroll-related cron jobs
func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(
		"auto_process_current_period",
		interval,
		j.ProcessCurrentPeriod,
	)
}

// ProcessCurrentPeriod runs batch processing for the current month.
// Safe to re-run: employees whose record already exists are skipped, and
// one employee's failure never aborts the rest.
func (j *PayrollJobs) ProcessCurrentPeriod(ctx context.Context) error {
	period := attendance.CurrentPeriod(time.Now())

	result, err := j.payrollService.ProcessPeriod(ctx, payroll.ProcessPayrollRequest{Period: period})
	if err != nil {
		return err
	}

	slog.Info("Payroll auto-processing finished",
		"period", period,
		"processed", result.ProcessedCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
	)
	return nil
}
