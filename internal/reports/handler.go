package reports

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bizhealth-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the reports service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports", h.generateReport)
	rg.GET("/reports", h.listReports)
	rg.GET("/reports/:id", h.getReport)
}

func (h *Handler) generateReport(c *gin.Context) {
	var in BuildInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body is invalid", nil)
		return
	}
	if strings.TrimSpace(in.Profile.BusinessID) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "profile.businessId is required", nil)
		return
	}
	c.Set("businessId", in.Profile.BusinessID)

	report, err := h.Svc.Generate(c.Request.Context(), in)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate report", nil)
		return
	}
	c.Set("reportId", report.ID)

	respond.JSON(c, http.StatusCreated, report)
}

func (h *Handler) getReport(c *gin.Context) {
	reportID := c.Param("id")
	if reportID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "report id is required", nil)
		return
	}

	report, err := h.Svc.Get(c.Request.Context(), reportID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch report", nil)
		}
		return
	}

	respond.OK(c, report)
}

func (h *Handler) listReports(c *gin.Context) {
	businessID := c.Query("businessId")
	if businessID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "businessId is required", nil)
		return
	}
	c.Set("businessId", businessID)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	reports, err := h.Svc.List(c.Request.Context(), businessID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list reports", nil)
		return
	}

	// The list view omits the rendered document body.
	summaries := make([]gin.H, 0, len(reports))
	for _, report := range reports {
		summaries = append(summaries, gin.H{
			"id":              report.ID,
			"businessId":      report.BusinessID,
			"reportType":      report.ReportType,
			"title":           report.Title,
			"pageEstimate":    report.PageEstimate,
			"sections":        report.Sections,
			"narrativeTokens": report.NarrativeTokens,
			"generatedAt":     report.GeneratedAt,
		})
	}
	respond.OK(c, gin.H{"reports": summaries})
}
