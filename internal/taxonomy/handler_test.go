package taxonomy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r := gin.New()
	NewHandler(registry).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func getCatalog(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListQuestionsEndpoint(t *testing.T) {
	router := setupCatalogRouter(t)

	rec := getCatalog(t, router, "/api/v1/assessment/questions")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Questions) != QuestionCount {
		t.Fatalf("questions = %d, want %d", len(resp.Questions), QuestionCount)
	}
}

func TestListQuestionsByCategory(t *testing.T) {
	router := setupCatalogRouter(t)

	rec := getCatalog(t, router, "/api/v1/assessment/questions?category=FIN")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, q := range resp.Questions {
		if q.Category != "FIN" {
			t.Fatalf("question %s has category %s", q.ID, q.Category)
		}
	}
	if len(resp.Questions) == 0 {
		t.Fatalf("expected FIN questions")
	}

	if rec := getCatalog(t, router, "/api/v1/assessment/questions?category=XXX"); rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown category status = %d, want 400", rec.Code)
	}
}

func TestListCategoriesEndpoint(t *testing.T) {
	router := setupCatalogRouter(t)

	rec := getCatalog(t, router, "/api/v1/assessment/categories")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Categories []struct {
			Code      string  `json:"code"`
			Chapter   string  `json:"chapter"`
			Questions int     `json:"questions"`
			Weight    float64 `json:"weight"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Categories) != len(CategoryCodes()) {
		t.Fatalf("categories = %d, want %d", len(resp.Categories), len(CategoryCodes()))
	}
	total := 0
	for _, cat := range resp.Categories {
		if !IsChapter(cat.Chapter) {
			t.Fatalf("category %s has unknown chapter %s", cat.Code, cat.Chapter)
		}
		if cat.Weight <= 0 {
			t.Fatalf("category %s weight = %f", cat.Code, cat.Weight)
		}
		total += cat.Questions
	}
	if total != QuestionCount {
		t.Fatalf("question total = %d, want %d", total, QuestionCount)
	}
}
