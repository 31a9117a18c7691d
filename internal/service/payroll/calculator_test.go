package payroll

import (
	"testing"

	"github.com/schoolsuite/payroll-backend-go/internal/domain/employee"
	"github.com/schoolsuite/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:          "emp-1",
		FullName:    "Asha Nansubuga",
		BasicSalary: 1_000_000,
		Benefits: employee.Benefits{
			HealthInsurance: 50_000,
			RetirementPlan:  30_000,
		},
		Deductions: employee.DeductionConfig{
			IncomeTaxPct:      decimal.NewFromInt(10),
			SocialSecurityPct: decimal.NewFromInt(5),
			OtherDeductions:   10_000,
		},
		IsActive: true,
	}
}

func TestHourlyRate(t *testing.T) {
	t.Parallel()

	rate, err := HourlyRate(1_000_000, decimal.NewFromInt(160))
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(6250)), "rate = %s", rate)
}

func TestHourlyRate_InvalidExpectedHours(t *testing.T) {
	t.Parallel()

	for _, hours := range []int64{0, -10} {
		_, err := HourlyRate(1_000_000, decimal.NewFromInt(hours))
		assert.ErrorIs(t, err, payroll.ErrInvalidPeriod, "expectedHours = %d", hours)
	}
}

func TestComputeGrossPay_WithOvertime(t *testing.T) {
	t.Parallel()

	gross, err := ComputeGrossPay(testEmployee(), decimal.NewFromInt(170), decimal.NewFromInt(160))
	require.NoError(t, err)

	assert.Equal(t, int64(1_000_000), gross.RegularPay)
	assert.Equal(t, int64(93_750), gross.OvertimePay) // 10h * 6250 * 1.5
	assert.Equal(t, int64(1_093_750), gross.Total)
}

func TestComputeGrossPay_NoOvertimeAtOrBelowExpected(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name            string
		attendanceHours int64
		wantRegular     int64
	}{
		{"full attendance", 160, 1_000_000},
		{"partial attendance", 120, 750_000},
		{"zero attendance", 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gross, err := ComputeGrossPay(testEmployee(), decimal.NewFromInt(c.attendanceHours), decimal.NewFromInt(160))
			require.NoError(t, err)

			assert.Equal(t, int64(0), gross.OvertimePay)
			assert.Equal(t, c.wantRegular, gross.RegularPay)
			assert.Equal(t, gross.RegularPay, gross.Total)
		})
	}
}

func TestComputeGrossPay_TotalIsExactSumOfLineItems(t *testing.T) {
	t.Parallel()

	// Fractional hours force rounding on both line items.
	hours := []string{"0", "37.5", "100.25", "159.99", "160", "170.5", "200.333"}
	for _, h := range hours {
		attendance := decimal.RequireFromString(h)
		gross, err := ComputeGrossPay(testEmployee(), attendance, decimal.NewFromInt(160))
		require.NoError(t, err, "attendance = %s", h)
		assert.Equal(t, gross.Total, gross.RegularPay+gross.OvertimePay, "attendance = %s", h)
	}
}

func TestComputeGrossPay_NegativeAttendance(t *testing.T) {
	t.Parallel()

	_, err := ComputeGrossPay(testEmployee(), decimal.NewFromInt(-1), decimal.NewFromInt(160))
	assert.ErrorIs(t, err, payroll.ErrInvalidAttendance)
}

func TestComputeDeductions_RoundsHalfUpPerLineItem(t *testing.T) {
	t.Parallel()

	deductions, err := ComputeDeductions(testEmployee(), 1_093_750)
	require.NoError(t, err)

	assert.Equal(t, int64(109_375), deductions.IncomeTax)
	assert.Equal(t, int64(54_688), deductions.SocialSecurity) // 54687.5 rounded half-up
	assert.Equal(t, int64(10_000), deductions.OtherDeductions)
	assert.Equal(t, int64(174_063), deductions.Total)
	assert.Equal(t, deductions.Total, deductions.IncomeTax+deductions.SocialSecurity+deductions.OtherDeductions)
}

func TestComputeDeductions_InvalidConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*employee.Employee)
	}{
		{"income tax above 100", func(e *employee.Employee) {
			e.Deductions.IncomeTaxPct = decimal.NewFromInt(150)
		}},
		{"negative income tax", func(e *employee.Employee) {
			e.Deductions.IncomeTaxPct = decimal.NewFromInt(-1)
		}},
		{"social security above 100", func(e *employee.Employee) {
			e.Deductions.SocialSecurityPct = decimal.NewFromInt(101)
		}},
		{"negative fixed deductions", func(e *employee.Employee) {
			e.Deductions.OtherDeductions = -500
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			emp := testEmployee()
			c.mutate(&emp)
			_, err := ComputeDeductions(emp, 1_000_000)
			assert.ErrorIs(t, err, payroll.ErrInvalidDeductionConfig)
		})
	}
}

func TestComputeNetPay(t *testing.T) {
	t.Parallel()

	net, negative := ComputeNetPay(1_093_750, 174_063)
	assert.Equal(t, int64(919_687), net)
	assert.False(t, negative)

	net, negative = ComputeNetPay(100_000, 150_000)
	assert.Equal(t, int64(-50_000), net)
	assert.True(t, negative)
}

func TestNetGrossDeductionsIdentity(t *testing.T) {
	t.Parallel()

	// net + deductions == gross must hold exactly for any attendance.
	for _, h := range []string{"0", "80.5", "160", "170", "212.75"} {
		emp := testEmployee()
		gross, err := ComputeGrossPay(emp, decimal.RequireFromString(h), decimal.NewFromInt(160))
		require.NoError(t, err)

		deductions, err := ComputeDeductions(emp, gross.Total)
		require.NoError(t, err)

		net, _ := ComputeNetPay(gross.Total, deductions.Total)
		assert.Equal(t, gross.Total, net+deductions.Total, "attendance = %s", h)
	}
}

func TestAttendanceRate(t *testing.T) {
	t.Parallel()

	rate, err := AttendanceRate(decimal.NewFromInt(120), decimal.NewFromInt(160))
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.75")), "rate = %s", rate)

	_, err = AttendanceRate(decimal.NewFromInt(120), decimal.Zero)
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}
