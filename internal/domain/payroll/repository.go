package payroll

import "context"

// PayrollRepository is the record store. Create must be atomic
// insert-if-absent on (employee_id, period): when two callers race for
// the same key, exactly one wins and the loser gets ErrDuplicateRecord.
type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID, period string) (PayrollRecord, error)
	ListByPeriod(ctx context.Context, period string, filter RecordFilter) ([]PayrollRecord, error)
	Update(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	MarkPayStubGenerated(ctx context.Context, id string) error
	AcknowledgeNegativeNet(ctx context.Context, id string) error
}

// RecordFilter narrows ListByPeriod results.
type RecordFilter struct {
	Status     *RecordStatus
	EmployeeID *string
}
