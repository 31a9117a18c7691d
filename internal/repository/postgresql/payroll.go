package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/payroll"
	"github.com/schoolsuite/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, employee_id, period, attendance_hours, expected_hours, attendance_rate,
	regular_pay, overtime_pay, gross_total,
	income_tax, social_security, other_deductions, deductions_total,
	net_pay, benefits_total, status, failure_reason,
	negative_net, negative_net_ack, processed_at, pay_stub_generated,
	audit_note, raw_logs, created_at, updated_at
`

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	var rawLogs []byte
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Period, &rec.AttendanceHours, &rec.ExpectedHours, &rec.AttendanceRate,
		&rec.GrossPay.RegularPay, &rec.GrossPay.OvertimePay, &rec.GrossPay.Total,
		&rec.Deductions.IncomeTax, &rec.Deductions.SocialSecurity, &rec.Deductions.OtherDeductions, &rec.Deductions.Total,
		&rec.NetPay, &rec.BenefitsTotal, &rec.Status, &rec.FailureReason,
		&rec.NegativeNet, &rec.NegativeNetAck, &rec.ProcessedAt, &rec.PayStubGenerated,
		&rec.AuditNote, &rawLogs, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	if len(rawLogs) > 0 {
		if err := json.Unmarshal(rawLogs, &rec.RawLogs); err != nil {
			return payroll.PayrollRecord{}, fmt.Errorf("failed to decode raw logs: %w", err)
		}
	}
	return rec, nil
}

// Create relies on the unique index on (employee_id, period):
// ON CONFLICT DO NOTHING makes this an atomic insert-if-absent, so a
// racing second writer for the same key loses with ErrDuplicateRecord
// instead of silently creating a second record.
func (r *payrollRepository) Create(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	rawLogs, err := json.Marshal(record.RawLogs)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to encode raw logs: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, period, attendance_hours, expected_hours, attendance_rate,
			regular_pay, overtime_pay, gross_total,
			income_tax, social_security, other_deductions, deductions_total,
			net_pay, benefits_total, status, failure_reason,
			negative_net, negative_net_ack, processed_at, pay_stub_generated,
			audit_note, raw_logs
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
		ON CONFLICT (employee_id, period) DO NOTHING
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Period, record.AttendanceHours, record.ExpectedHours, record.AttendanceRate,
		record.GrossPay.RegularPay, record.GrossPay.OvertimePay, record.GrossPay.Total,
		record.Deductions.IncomeTax, record.Deductions.SocialSecurity, record.Deductions.OtherDeductions, record.Deductions.Total,
		record.NetPay, record.BenefitsTotal, record.Status, record.FailureReason,
		record.NegativeNet, record.NegativeNetAck, record.ProcessedAt, record.PayStubGenerated,
		record.AuditNote, rawLogs,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrDuplicateRecord
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE id = $1`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID, period string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE employee_id = $1 AND period = $2`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, period))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, period string, filter payroll.RecordFilter) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE period = $1`
	args := []interface{}{period}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	query += " ORDER BY employee_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *payrollRepository) Update(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	rawLogs, err := json.Marshal(record.RawLogs)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to encode raw logs: %w", err)
	}

	query := `
		UPDATE payroll_records SET
			attendance_rate = $2,
			regular_pay = $3, overtime_pay = $4, gross_total = $5,
			income_tax = $6, social_security = $7, other_deductions = $8, deductions_total = $9,
			net_pay = $10, benefits_total = $11, status = $12, failure_reason = $13,
			negative_net = $14, negative_net_ack = $15, processed_at = $16,
			pay_stub_generated = $17, audit_note = $18, raw_logs = $19,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query,
		record.ID, record.AttendanceRate,
		record.GrossPay.RegularPay, record.GrossPay.OvertimePay, record.GrossPay.Total,
		record.Deductions.IncomeTax, record.Deductions.SocialSecurity, record.Deductions.OtherDeductions, record.Deductions.Total,
		record.NetPay, record.BenefitsTotal, record.Status, record.FailureReason,
		record.NegativeNet, record.NegativeNetAck, record.ProcessedAt,
		record.PayStubGenerated, record.AuditNote, rawLogs,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) MarkPayStubGenerated(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_records SET pay_stub_generated = true, updated_at = NOW()
		WHERE id = $1 AND status = 'processed'
	`, id)
	if err != nil {
		return fmt.Errorf("failed to mark pay stub generated: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}
	return nil
}

func (r *payrollRepository) AcknowledgeNegativeNet(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payroll_records SET negative_net_ack = true, updated_at = NOW()
		WHERE id = $1 AND negative_net
	`, id)
	if err != nil {
		return fmt.Errorf("failed to acknowledge negative net pay: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}
	return nil
}
