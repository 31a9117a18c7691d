package employee

import "github.com/shopspring/decimal"

type BenefitsResponse struct {
	HealthInsurance int64 `json:"health_insurance"`
	RetirementPlan  int64 `json:"retirement_plan"`
	LifeInsurance   int64 `json:"life_insurance"`
	OtherBenefits   int64 `json:"other_benefits"`
	Total           int64 `json:"total"`
}

type DeductionConfigResponse struct {
	IncomeTaxPct      decimal.Decimal `json:"income_tax_pct"`
	SocialSecurityPct decimal.Decimal `json:"social_security_pct"`
	OtherDeductions   int64           `json:"other_deductions"`
}

type EmployeeResponse struct {
	ID          string                  `json:"id"`
	FullName    string                  `json:"full_name"`
	BasicSalary int64                   `json:"basic_salary"`
	Benefits    BenefitsResponse        `json:"benefits"`
	Deductions  DeductionConfigResponse `json:"deductions"`
	IsActive    bool                    `json:"is_active"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		FullName:    e.FullName,
		BasicSalary: e.BasicSalary,
		Benefits: BenefitsResponse{
			HealthInsurance: e.Benefits.HealthInsurance,
			RetirementPlan:  e.Benefits.RetirementPlan,
			LifeInsurance:   e.Benefits.LifeInsurance,
			OtherBenefits:   e.Benefits.OtherBenefits,
			Total:           e.Benefits.Total(),
		},
		Deductions: DeductionConfigResponse{
			IncomeTaxPct:      e.Deductions.IncomeTaxPct,
			SocialSecurityPct: e.Deductions.SocialSecurityPct,
			OtherDeductions:   e.Deductions.OtherDeductions,
		},
		IsActive: e.IsActive,
	}
}
