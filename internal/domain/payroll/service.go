package payroll

import "context"

type PayrollService interface {
	ProcessEmployee(ctx context.Context, employeeID, period string) (PayrollRecordResponse, error)
	ProcessPeriod(ctx context.Context, req ProcessPayrollRequest) (BatchResult, error)
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListRecords(ctx context.Context, period string, filter RecordFilter) ([]PayrollRecordResponse, error)
	GeneratePayStub(ctx context.Context, id string) (PayrollRecordResponse, error)
	AcknowledgeNegativeNet(ctx context.Context, id string) error
	Reprocess(ctx context.Context, id string, req ReprocessRequest) (PayrollRecordResponse, error)
}
