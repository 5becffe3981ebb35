package reports

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"
)

func seedMemoryRepo(t *testing.T, repo *MemoryRepo, n int) {
	t.Helper()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		report := GeneratedReport{
			ID:          "report-" + strconv.Itoa(i),
			BusinessID:  "biz-1",
			ReportType:  ReportTypeOwner,
			GeneratedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := repo.Create(context.Background(), report); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
}

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	seedMemoryRepo(t, repo, 3)

	reports, err := repo.ListByBusiness(context.Background(), "biz-1", 0, 0)
	if err != nil {
		t.Fatalf("ListByBusiness: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("len = %d", len(reports))
	}
	for i := 1; i < len(reports); i++ {
		if reports[i].GeneratedAt.After(reports[i-1].GeneratedAt) {
			t.Fatalf("reports not newest first: %v before %v", reports[i-1].GeneratedAt, reports[i].GeneratedAt)
		}
	}
}

func TestMemoryRepoListLimitOffset(t *testing.T) {
	repo := NewMemoryRepo()
	seedMemoryRepo(t, repo, 5)

	reports, err := repo.ListByBusiness(context.Background(), "biz-1", 2, 1)
	if err != nil {
		t.Fatalf("ListByBusiness: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("len = %d, want 2", len(reports))
	}

	// Offset past the end yields an empty, non-nil slice.
	reports, err = repo.ListByBusiness(context.Background(), "biz-1", 2, 10)
	if err != nil {
		t.Fatalf("ListByBusiness: %v", err)
	}
	if reports == nil || len(reports) != 0 {
		t.Fatalf("reports = %v, want empty slice", reports)
	}
}

func TestMemoryRepoListClampsLimitLikePG(t *testing.T) {
	repo := NewMemoryRepo()
	seedMemoryRepo(t, repo, 25)

	for _, limit := range []int{0, -5, 999} {
		reports, err := repo.ListByBusiness(context.Background(), "biz-1", limit, 0)
		if err != nil {
			t.Fatalf("ListByBusiness(limit=%d): %v", limit, err)
		}
		if len(reports) != 20 {
			t.Fatalf("limit %d returned %d reports, want default page of 20", limit, len(reports))
		}
	}
}

func TestMemoryRepoGetByIDNotFound(t *testing.T) {
	repo := NewMemoryRepo()

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
