package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the compensation configuration for one staff member.
// The registry is the sole owner of this data; the payroll core only
// reads it.
type Employee struct {
	ID          string
	FullName    string
	BasicSalary int64 // minor currency units per period
	Benefits    Benefits
	Deductions  DeductionConfig
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Benefits are fixed per-period amounts, in minor currency units.
type Benefits struct {
	HealthInsurance int64
	RetirementPlan  int64
	LifeInsurance   int64
	OtherBenefits   int64
}

func (b Benefits) Total() int64 {
	return b.HealthInsurance + b.RetirementPlan + b.LifeInsurance + b.OtherBenefits
}

// DeductionConfig holds the percentage and fixed-amount deductions
// applied to gross pay. Percentages are expressed in [0, 100].
type DeductionConfig struct {
	IncomeTaxPct      decimal.Decimal
	SocialSecurityPct decimal.Decimal
	OtherDeductions   int64 // fixed amount, minor currency units
}
