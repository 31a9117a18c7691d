package memory

import (
	"context"
	"sync"
	"time"

	"github.com/schoolsuite/payroll-backend-go/internal/domain/payroll"
)

// PayrollRepository is an in-memory record store. All operations run
// under one mutex, which gives Create the same insert-if-absent
// atomicity the PostgreSQL unique index provides: of two racing writers
// for the same (employee, period), exactly one wins.
type PayrollRepository struct {
	mu    sync.Mutex
	byID  map[string]*payroll.PayrollRecord
	byKey map[recordKey]string // (employee, period) -> record ID
}

type recordKey struct {
	employeeID string
	period     string
}

func NewPayrollRepository() *PayrollRepository {
	return &PayrollRepository{
		byID:  make(map[string]*payroll.PayrollRecord),
		byKey: make(map[recordKey]string),
	}
}

func clone(rec payroll.PayrollRecord) payroll.PayrollRecord {
	out := rec
	if rec.FailureReason != nil {
		reason := *rec.FailureReason
		out.FailureReason = &reason
	}
	if rec.AuditNote != nil {
		note := *rec.AuditNote
		out.AuditNote = &note
	}
	if rec.ProcessedAt != nil {
		at := *rec.ProcessedAt
		out.ProcessedAt = &at
	}
	if rec.RawLogs != nil {
		out.RawLogs = append(out.RawLogs[:0:0], rec.RawLogs...)
	}
	return out
}

func (r *PayrollRepository) Create(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := recordKey{employeeID: record.EmployeeID, period: record.Period}
	if _, exists := r.byKey[key]; exists {
		return payroll.PayrollRecord{}, payroll.ErrDuplicateRecord
	}

	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	stored := clone(record)
	r.byID[record.ID] = &stored
	r.byKey[key] = record.ID
	return clone(stored), nil
}

func (r *PayrollRepository) GetByID(_ context.Context, id string) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
	}
	return clone(*rec), nil
}

func (r *PayrollRepository) GetByEmployeePeriod(_ context.Context, employeeID, period string) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byKey[recordKey{employeeID: employeeID, period: period}]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
	}
	return clone(*r.byID[id]), nil
}

func (r *PayrollRepository) ListByPeriod(_ context.Context, period string, filter payroll.RecordFilter) ([]payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []payroll.PayrollRecord
	for _, rec := range r.byID {
		if rec.Period != period {
			continue
		}
		if filter.Status != nil && rec.Status != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		records = append(records, clone(*rec))
	}
	return records, nil
}

func (r *PayrollRepository) Update(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[record.ID]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
	}

	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = time.Now()

	stored := clone(record)
	r.byID[record.ID] = &stored
	return clone(stored), nil
}

func (r *PayrollRepository) MarkPayStubGenerated(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok || rec.Status != payroll.RecordStatusProcessed {
		return payroll.ErrRecordNotFound
	}
	rec.PayStubGenerated = true
	rec.UpdatedAt = time.Now()
	return nil
}

func (r *PayrollRepository) AcknowledgeNegativeNet(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok || !rec.NegativeNet {
		return payroll.ErrRecordNotFound
	}
	rec.NegativeNetAck = true
	rec.UpdatedAt = time.Now()
	return nil
}
