package reports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bizhealth-backend/internal/llm"
	"bizhealth-backend/internal/shared/metrics"
	"bizhealth-backend/internal/shared/telemetry"
)

const defaultNarrativeTimeout = 30 * time.Second

// Service builds owner reports. It holds no state across builds; the one
// suspension point in a build is the narrative call, which is bounded by
// NarrativeTimeout and recovered locally on any failure.
type Service struct {
	Repo             Repo
	LLM              llm.Client
	Provider         string
	Model            string
	Tone             llm.Tone
	NarrativeTimeout time.Duration
}

// Generate runs one report build: deterministic pipeline, a single narrative
// attempt with fallback, assembly, then persistence.
func (s *Service) Generate(ctx context.Context, in BuildInput) (GeneratedReport, error) {
	startedAt := time.Now()
	primary := OwnerPrimaryCategories
	decisions := SynthesizeDecisions(in.Analyses, in.Scores, primary)
	narrative, tokens := s.generateNarrative(ctx, in, primary, decisions)

	report := assembleReport(assembleInput{
		Profile:         in.Profile,
		Scores:          in.Scores,
		Analyses:        in.Analyses,
		Roadmap:         in.Roadmap,
		BottomLine:      in.BottomLine,
		Decisions:       decisions,
		Narrative:       narrative,
		NarrativeTokens: tokens,
		Primary:         primary,
	}, time.Now().UTC())

	report.ID = uuid.NewString()
	report.BusinessID = in.Profile.BusinessID

	if s.Repo != nil {
		if err := s.Repo.Create(ctx, report); err != nil {
			metrics.IncReportFailed()
			return GeneratedReport{}, err
		}
	}

	metrics.IncReportGenerated()
	metrics.ObserveReportBuildDurationMs(float64(time.Since(startedAt).Microseconds()) / 1000.0)
	telemetry.Info("report.generated", map[string]any{
		"report_id":        report.ID,
		"business_id":      report.BusinessID,
		"report_type":      report.ReportType,
		"sections":         len(report.Sections),
		"page_estimate":    report.PageEstimate,
		"narrative_tokens": report.NarrativeTokens,
	})
	return report, nil
}

// Get returns a stored report by ID.
func (s *Service) Get(ctx context.Context, reportID string) (GeneratedReport, error) {
	return s.Repo.GetByID(ctx, reportID)
}

// List returns stored reports for a business, newest first.
func (s *Service) List(ctx context.Context, businessID string, limit, offset int) ([]GeneratedReport, error) {
	return s.Repo.ListByBusiness(ctx, businessID, limit, offset)
}

// generateNarrative makes the single narrative attempt. Timeout, provider
// errors, and caller cancellation all resolve to the deterministic fallback;
// a build never fails because the collaborator is unavailable.
func (s *Service) generateNarrative(ctx context.Context, in BuildInput, primary []string, decisions []Decision) ([]string, int) {
	if s.LLM == nil {
		return fallbackNarrative(in.Profile, in.Scores, primary), 0
	}

	timeout := s.NarrativeTimeout
	if timeout <= 0 {
		timeout = defaultNarrativeTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	input := buildNarrativeInput(in.Profile, in.Scores, in.Analyses, primary, decisions, s.Tone)
	result, err := s.LLM.GenerateNarrative(callCtx, input)
	if err != nil || len(result.Paragraphs) == 0 {
		metrics.IncNarrativeFallback()
		telemetry.Warn("report.narrative_fallback", map[string]any{
			"business_id": in.Profile.BusinessID,
			"provider":    s.Provider,
			"model":       s.Model,
			"error":       errString(err),
		})
		return fallbackNarrative(in.Profile, in.Scores, primary), 0
	}
	return result.Paragraphs, result.TokensUsed
}

func errString(err error) string {
	if err == nil {
		return "empty narrative"
	}
	return err.Error()
}
