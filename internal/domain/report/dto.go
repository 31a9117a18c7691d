package report

// PeriodSummary is a derived view over one period's payroll records.
// It is recomputed on demand and never persisted as source of truth.
type PeriodSummary struct {
	Period         string `json:"period"`
	TotalStaff     int    `json:"total_staff"`
	ProcessedCount int    `json:"processed_count"`
	PendingCount   int    `json:"pending_count"`
	FailedCount    int    `json:"failed_count"`
	TotalNetPay    int64  `json:"total_net_pay"`
	AverageSalary  int64  `json:"average_salary"`
	TotalTaxes     int64  `json:"total_taxes"`
	TotalBenefits  int64  `json:"total_benefits"`
}
