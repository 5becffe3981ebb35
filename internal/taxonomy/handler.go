package taxonomy

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizhealth-backend/internal/shared/server/respond"
)

// Handler serves the read-only assessment catalog.
type Handler struct {
	Registry *Registry
}

// NewHandler constructs a Handler.
func NewHandler(registry *Registry) *Handler {
	return &Handler{Registry: registry}
}

// RegisterRoutes attaches assessment catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/assessment/questions", h.listQuestions)
	rg.GET("/assessment/categories", h.listCategories)
}

func (h *Handler) listQuestions(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		if !IsCategory(category) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown category code", nil)
			return
		}
		respond.OK(c, gin.H{"questions": h.Registry.ByCategory(category)})
		return
	}
	if chapter := c.Query("chapter"); chapter != "" {
		if !IsChapter(chapter) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown chapter code", nil)
			return
		}
		respond.OK(c, gin.H{"questions": h.Registry.ByChapter(chapter)})
		return
	}
	respond.OK(c, gin.H{"questions": h.Registry.All()})
}

func (h *Handler) listCategories(c *gin.Context) {
	type categoryView struct {
		Code      string  `json:"code"`
		Name      string  `json:"name"`
		Chapter   string  `json:"chapter"`
		Questions int     `json:"questions"`
		Weight    float64 `json:"weight"`
	}

	categories := make([]categoryView, 0, len(CategoryCodes()))
	for _, chapter := range ChapterCodes() {
		for _, code := range ChapterCategories(chapter) {
			weight, err := h.Registry.CategoryWeight(code)
			if err != nil {
				respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to resolve category weight", nil)
				return
			}
			categories = append(categories, categoryView{
				Code:      code,
				Name:      CategoryName(code),
				Chapter:   chapter,
				Questions: len(h.Registry.ByCategory(code)),
				Weight:    weight,
			})
		}
	}
	respond.OK(c, gin.H{"categories": categories})
}
