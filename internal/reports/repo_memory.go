package reports

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores reports in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu         sync.RWMutex
	byID       map[string]GeneratedReport
	byBusiness map[string][]GeneratedReport
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:       make(map[string]GeneratedReport),
		byBusiness: make(map[string][]GeneratedReport),
	}
}

// Create stores the report.
func (r *MemoryRepo) Create(ctx context.Context, report GeneratedReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[report.ID] = report
	r.byBusiness[report.BusinessID] = append(r.byBusiness[report.BusinessID], report)
	return nil
}

// GetByID returns a report by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, reportID string) (GeneratedReport, error) {
	if err := ctx.Err(); err != nil {
		return GeneratedReport{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.byID[reportID]
	if !ok {
		return GeneratedReport{}, ErrNotFound
	}
	return report, nil
}

// ListByBusiness returns reports for a business, newest first, with limit/offset.
func (r *MemoryRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]GeneratedReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	stored := r.byBusiness[businessID]
	r.mu.RUnlock()

	if len(stored) == 0 || offset >= len(stored) {
		return []GeneratedReport{}, nil
	}

	reports := make([]GeneratedReport, len(stored))
	copy(reports, stored)
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].GeneratedAt.After(reports[j].GeneratedAt)
	})

	end := len(reports)
	if offset+limit < end {
		end = offset + limit
	}
	return reports[offset:end], nil
}
