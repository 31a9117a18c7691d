package payroll

import (
	"github.com/schoolsuite/payroll-backend-go/internal/domain/employee"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// Overtime is paid at a fixed premium over the hourly rate; this is a
// policy constant, not per-employee configuration.
var overtimeMultiplier = decimal.NewFromFloat(1.5)

var hundred = decimal.NewFromInt(100)

// HourlyRate derives the rate from the per-period salary. expectedHours
// must be positive; the guard exists so a misconfigured period can never
// divide by zero.
func HourlyRate(basicSalary int64, expectedHours decimal.Decimal) (decimal.Decimal, error) {
	if expectedHours.Sign() <= 0 {
		return decimal.Zero, payroll.ErrInvalidPeriod
	}
	return decimal.NewFromInt(basicSalary).Div(expectedHours), nil
}

// ComputeGrossPay splits attendance into regular and overtime hours and
// prices each at the employee's hourly rate. Line items are rounded
// half-up to whole minor units individually so that the returned Total
// is their exact sum.
func ComputeGrossPay(emp employee.Employee, attendanceHours, expectedHours decimal.Decimal) (payroll.GrossPay, error) {
	if attendanceHours.Sign() < 0 {
		return payroll.GrossPay{}, payroll.ErrInvalidAttendance
	}

	rate, err := HourlyRate(emp.BasicSalary, expectedHours)
	if err != nil {
		return payroll.GrossPay{}, err
	}

	regularHours := decimal.Min(attendanceHours, expectedHours)
	overtimeHours := decimal.Max(decimal.Zero, attendanceHours.Sub(expectedHours))

	regularPay := regularHours.Mul(rate).Round(0).IntPart()
	overtimePay := overtimeHours.Mul(rate).Mul(overtimeMultiplier).Round(0).IntPart()

	return payroll.GrossPay{
		RegularPay:  regularPay,
		OvertimePay: overtimePay,
		Total:       regularPay + overtimePay,
	}, nil
}

// ComputeDeductions applies the employee's percentage and fixed-amount
// deductions to the gross total. Each percentage line is rounded half-up
// on its own; Total is the exact sum of the line items.
func ComputeDeductions(emp employee.Employee, grossTotal int64) (payroll.Deductions, error) {
	cfg := emp.Deductions
	if cfg.IncomeTaxPct.IsNegative() || cfg.IncomeTaxPct.GreaterThan(hundred) ||
		cfg.SocialSecurityPct.IsNegative() || cfg.SocialSecurityPct.GreaterThan(hundred) ||
		cfg.OtherDeductions < 0 {
		return payroll.Deductions{}, payroll.ErrInvalidDeductionConfig
	}

	gross := decimal.NewFromInt(grossTotal)
	incomeTax := gross.Mul(cfg.IncomeTaxPct).Div(hundred).Round(0).IntPart()
	socialSecurity := gross.Mul(cfg.SocialSecurityPct).Div(hundred).Round(0).IntPart()

	return payroll.Deductions{
		IncomeTax:       incomeTax,
		SocialSecurity:  socialSecurity,
		OtherDeductions: cfg.OtherDeductions,
		Total:           incomeTax + socialSecurity + cfg.OtherDeductions,
	}, nil
}

// ComputeNetPay returns the payable amount. A negative result does not
// fail the calculation; it is surfaced to the operator as a warning on
// the record because it signals a configuration problem.
func ComputeNetPay(grossTotal, deductionsTotal int64) (net int64, negative bool) {
	net = grossTotal - deductionsTotal
	return net, net < 0
}

// AttendanceRate is attendance relative to expectation, for reporting.
func AttendanceRate(attendanceHours, expectedHours decimal.Decimal) (decimal.Decimal, error) {
	if expectedHours.Sign() <= 0 {
		return decimal.Zero, payroll.ErrInvalidPeriod
	}
	return attendanceHours.Div(expectedHours).Round(4), nil
}
