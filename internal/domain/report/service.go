package report

import "context"

type ReportService interface {
	PeriodSummary(ctx context.Context, period string) (PeriodSummary, error)
}
