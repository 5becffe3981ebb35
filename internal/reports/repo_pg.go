package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new report.
func (r *PGRepo) Create(ctx context.Context, report GeneratedReport) error {
	const query = `
INSERT INTO reports (
	id, business_id, report_type, title, html, page_estimate, sections,
	narrative_tokens, generated_at, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	sectionsPayload, err := marshalSections(report.Sections)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		report.ID,
		report.BusinessID,
		report.ReportType,
		report.Title,
		report.HTML,
		report.PageEstimate,
		sectionsPayload,
		report.NarrativeTokens,
		report.GeneratedAt,
		time.Now().UTC(),
	)
	return err
}

// GetByID returns a report by ID.
func (r *PGRepo) GetByID(ctx context.Context, reportID string) (GeneratedReport, error) {
	const query = `
SELECT id, business_id, report_type, title, html, page_estimate, sections,
       narrative_tokens, generated_at
FROM reports
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, reportID)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GeneratedReport{}, ErrNotFound
	}
	return report, err
}

// ListByBusiness returns reports for a business, newest first, with limit/offset.
func (r *PGRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]GeneratedReport, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, business_id, report_type, title, html, page_estimate, sections,
       narrative_tokens, generated_at
FROM reports
WHERE business_id = $1
ORDER BY generated_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []GeneratedReport{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (GeneratedReport, error) {
	var report GeneratedReport
	var sectionsRaw []byte
	err := row.Scan(
		&report.ID,
		&report.BusinessID,
		&report.ReportType,
		&report.Title,
		&report.HTML,
		&report.PageEstimate,
		&sectionsRaw,
		&report.NarrativeTokens,
		&report.GeneratedAt,
	)
	if err != nil {
		return GeneratedReport{}, err
	}
	if len(sectionsRaw) > 0 {
		if err := json.Unmarshal(sectionsRaw, &report.Sections); err != nil {
			return GeneratedReport{}, err
		}
	}
	return report, nil
}

func marshalSections(sections []string) ([]byte, error) {
	if sections == nil {
		sections = []string{}
	}
	return json.Marshal(sections)
}
