package reports

import "context"

// Repo defines persistence operations for generated reports.
type Repo interface {
	Create(ctx context.Context, report GeneratedReport) error
	GetByID(ctx context.Context, reportID string) (GeneratedReport, error)
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]GeneratedReport, error)
}
