package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/attendance"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/employee"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// ========== PROCESSING ==========

func (s *PayrollServiceImpl) ProcessEmployee(ctx context.Context, employeeID, period string) (payroll.PayrollRecordResponse, error) {
	if _, err := attendance.ParsePeriod(period); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.processOne(ctx, employeeID, period)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(record), nil
}

// processOne creates the pending record and runs the calculation.
// Calculation failures end up on the record as status=failed, not in the
// returned error; the error is reserved for lifecycle conflicts and
// collaborator failures.
func (s *PayrollServiceImpl) processOne(ctx context.Context, employeeID, period string) (payroll.PayrollRecord, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	att, err := s.attendanceRepo.GetByEmployeePeriod(ctx, employeeID, period)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	pending := payroll.PayrollRecord{
		ID:              uuid.NewString(),
		EmployeeID:      employeeID,
		Period:          period,
		AttendanceHours: att.AttendanceHours,
		ExpectedHours:   att.ExpectedHours,
		Status:          payroll.RecordStatusPending,
		RawLogs:         att.RawLogs,
	}

	created, err := s.payrollRepo.Create(ctx, pending)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	calculated := calculate(created, emp)
	return s.payrollRepo.Update(ctx, calculated)
}

// calculate runs the pure calculator over a pending record and fills in
// the terminal status. It never returns an error: validation failures
// become status=failed with a reason so the operator can fix the
// configuration and retry explicitly.
func calculate(record payroll.PayrollRecord, emp employee.Employee) payroll.PayrollRecord {
	now := time.Now()

	gross, err := ComputeGrossPay(emp, record.AttendanceHours, record.ExpectedHours)
	if err != nil {
		return markFailed(record, err)
	}

	deductions, err := ComputeDeductions(emp, gross.Total)
	if err != nil {
		return markFailed(record, err)
	}

	rate, err := AttendanceRate(record.AttendanceHours, record.ExpectedHours)
	if err != nil {
		return markFailed(record, err)
	}

	net, negative := ComputeNetPay(gross.Total, deductions.Total)

	record.AttendanceRate = rate
	record.GrossPay = gross
	record.Deductions = deductions
	record.NetPay = net
	record.BenefitsTotal = emp.Benefits.Total()
	record.NegativeNet = negative
	record.Status = payroll.RecordStatusProcessed
	record.ProcessedAt = &now
	record.FailureReason = nil
	return record
}

func markFailed(record payroll.PayrollRecord, err error) payroll.PayrollRecord {
	reason := err.Error()
	record.Status = payroll.RecordStatusFailed
	record.FailureReason = &reason
	return record
}

func (s *PayrollServiceImpl) ProcessPeriod(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.BatchResult, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchResult{}, err
	}

	var employees []employee.Employee
	var err error
	if len(req.EmployeeIDs) > 0 {
		for _, id := range req.EmployeeIDs {
			emp, err := s.employeeRepo.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, employee.ErrEmployeeNotFound) {
					// Collected as a failed outcome below via a placeholder
					employees = append(employees, employee.Employee{ID: id})
					continue
				}
				return payroll.BatchResult{}, fmt.Errorf("failed to load employees: %w", err)
			}
			employees = append(employees, emp)
		}
	} else {
		employees, err = s.employeeRepo.ListActive(ctx)
		if err != nil {
			return payroll.BatchResult{}, fmt.Errorf("failed to load employees: %w", err)
		}
	}

	result := payroll.BatchResult{Period: req.Period}
	for _, emp := range employees {
		// Cancellation point between independent employee iterations.
		if err := ctx.Err(); err != nil {
			return result, err
		}

		outcome := s.processForBatch(ctx, emp.ID, req.Period)
		switch outcome.Status {
		case payroll.BatchOutcomeProcessed:
			result.ProcessedCount++
		case payroll.BatchOutcomeFailed:
			result.FailedCount++
		case payroll.BatchOutcomeSkipped:
			result.SkippedCount++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result, nil
}

// processForBatch maps every per-employee condition onto a batch outcome
// so a single employee can never abort the run.
func (s *PayrollServiceImpl) processForBatch(ctx context.Context, employeeID, period string) payroll.BatchOutcome {
	record, err := s.processOne(ctx, employeeID, period)
	if err != nil {
		if errors.Is(err, payroll.ErrDuplicateRecord) {
			return payroll.BatchOutcome{
				EmployeeID: employeeID,
				Status:     payroll.BatchOutcomeSkipped,
				Reason:     "record already exists for this period",
			}
		}
		return payroll.BatchOutcome{
			EmployeeID: employeeID,
			Status:     payroll.BatchOutcomeFailed,
			Reason:     err.Error(),
		}
	}

	outcome := payroll.BatchOutcome{
		EmployeeID: employeeID,
		RecordID:   record.ID,
		Status:     payroll.BatchOutcomeProcessed,
	}
	if record.Status == payroll.RecordStatusFailed {
		outcome.Status = payroll.BatchOutcomeFailed
		if record.FailureReason != nil {
			outcome.Reason = *record.FailureReason
		}
	}
	return outcome
}

// ========== QUERIES ==========

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListRecords(ctx context.Context, period string, filter payroll.RecordFilter) ([]payroll.PayrollRecordResponse, error) {
	if _, err := attendance.ParsePeriod(period); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByPeriod(ctx, period, filter)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result, nil
}

// ========== LIFECYCLE ACTIONS ==========

func (s *PayrollServiceImpl) GeneratePayStub(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	if record.Status != payroll.RecordStatusProcessed {
		return payroll.PayrollRecordResponse{}, payroll.ErrInvalidState
	}
	if record.NegativeNet && !record.NegativeNetAck {
		return payroll.PayrollRecordResponse{}, payroll.ErrNegativeNetNotAcked
	}

	if err := s.payrollRepo.MarkPayStubGenerated(ctx, id); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record.PayStubGenerated = true
	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) AcknowledgeNegativeNet(ctx context.Context, id string) error {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if record.Status != payroll.RecordStatusProcessed || !record.NegativeNet {
		return payroll.ErrInvalidState
	}

	return s.payrollRepo.AcknowledgeNegativeNet(ctx, id)
}

// Reprocess recomputes a terminal record from the current employee
// configuration and the originally recorded attendance. Never a silent
// overwrite: the reason is mandatory and lands in the audit note, and
// the pay stub and negative-net acknowledgment are invalidated.
func (s *PayrollServiceImpl) Reprocess(ctx context.Context, id string, req payroll.ReprocessRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	if !record.Status.Terminal() {
		return payroll.PayrollRecordResponse{}, payroll.ErrInvalidState
	}

	emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record.Status = payroll.RecordStatusPending
	record.PayStubGenerated = false
	record.NegativeNetAck = false
	note := fmt.Sprintf("reprocessed at %s: %s", time.Now().Format(time.RFC3339), req.Reason)
	if record.AuditNote != nil {
		note = *record.AuditNote + "\n" + note
	}
	record.AuditNote = &note

	updated, err := s.payrollRepo.Update(ctx, calculate(record, emp))
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return mapToRecordResponse(updated), nil
}

// ========== HELPERS ==========

func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var processedAtStr *string
	if r.ProcessedAt != nil {
		str := r.ProcessedAt.Format(time.RFC3339)
		processedAtStr = &str
	}

	return payroll.PayrollRecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		Period:          r.Period,
		AttendanceHours: r.AttendanceHours,
		ExpectedHours:   r.ExpectedHours,
		AttendanceRate:  r.AttendanceRate,
		GrossPay: payroll.GrossPayResponse{
			RegularPay:  r.GrossPay.RegularPay,
			OvertimePay: r.GrossPay.OvertimePay,
			Total:       r.GrossPay.Total,
		},
		Deductions: payroll.DeductionsResponse{
			IncomeTax:       r.Deductions.IncomeTax,
			SocialSecurity:  r.Deductions.SocialSecurity,
			OtherDeductions: r.Deductions.OtherDeductions,
			Total:           r.Deductions.Total,
		},
		NetPay:           r.NetPay,
		BenefitsTotal:    r.BenefitsTotal,
		Status:           string(r.Status),
		FailureReason:    r.FailureReason,
		NegativeNet:      r.NegativeNet,
		NegativeNetAck:   r.NegativeNetAck,
		ProcessedAt:      processedAtStr,
		PayStubGenerated: r.PayStubGenerated,
		AuditNote:        r.AuditNote,
		RawLogs:          r.RawLogs,
	}
}
