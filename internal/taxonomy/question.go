package taxonomy

import (
	"errors"
	"strings"
)

// ResponseType defines the supported question response formats.
type ResponseType string

const (
	ResponseScale       ResponseType = "scale"
	ResponsePercentage  ResponseType = "percentage"
	ResponseCurrency    ResponseType = "currency"
	ResponseCount       ResponseType = "count"
	ResponseText        ResponseType = "text"
	ResponseMultiSelect ResponseType = "multiselect"
	ResponseBoolean     ResponseType = "boolean"
	ResponseDerived     ResponseType = "derived"
)

// ParseResponseType normalizes and validates a response type string.
func ParseResponseType(raw string) (ResponseType, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch ResponseType(normalized) {
	case ResponseScale, ResponsePercentage, ResponseCurrency, ResponseCount,
		ResponseText, ResponseMultiSelect, ResponseBoolean, ResponseDerived:
		return ResponseType(normalized), nil
	default:
		return "", errors.New("response type is invalid")
	}
}

// Question is one scored item of the assessment. The catalog of questions is
// fixed at build time and validated once at startup.
type Question struct {
	ID            string       `json:"id"`
	Number        int          `json:"number"`
	Text          string       `json:"text"`
	Category      string       `json:"category"`
	Chapter       string       `json:"chapter"`
	ResponseType  ResponseType `json:"responseType"`
	Weight        float64      `json:"weight"`
	Benchmarkable bool         `json:"benchmarkable"`
	FollowUp      string       `json:"followUp,omitempty"`
	ScaleLabels   []string     `json:"scaleLabels,omitempty"`
}

// Category codes. Every question belongs to exactly one of these twelve.
const (
	CategoryStrategy   = "STR"
	CategoryLeadership = "LDG"
	CategoryInnovation = "INO"
	CategoryMarketing  = "MKT"
	CategorySales      = "SLS"
	CategoryCustomer   = "CUS"
	CategoryOperations = "OPS"
	CategoryTechnology = "TEC"
	CategoryPeople     = "PPL"
	CategoryFinancials = "FIN"
	CategoryRisk       = "RMS"
	CategoryCompliance = "CMP"
)

// Chapter codes. Each chapter owns a fixed, disjoint subset of categories.
const (
	ChapterDirection  = "DIR"
	ChapterGoToMarket = "GTM"
	ChapterEngine     = "ENG"
	ChapterResilience = "RES"
)

var categoryNames = map[string]string{
	CategoryStrategy:   "Strategy & Planning",
	CategoryLeadership: "Leadership & Governance",
	CategoryInnovation: "Innovation",
	CategoryMarketing:  "Marketing",
	CategorySales:      "Sales",
	CategoryCustomer:   "Customer Experience",
	CategoryOperations: "Operations",
	CategoryTechnology: "Technology & Systems",
	CategoryPeople:     "People & Culture",
	CategoryFinancials: "Financials",
	CategoryRisk:       "Risk Management",
	CategoryCompliance: "Compliance & Legal",
}

var chapterNames = map[string]string{
	ChapterDirection:  "Direction",
	ChapterGoToMarket: "Go To Market",
	ChapterEngine:     "Engine Room",
	ChapterResilience: "Resilience",
}

// chapterCategories partitions the twelve categories across the four chapters.
var chapterCategories = map[string][]string{
	ChapterDirection:  {CategoryStrategy, CategoryLeadership, CategoryInnovation},
	ChapterGoToMarket: {CategoryMarketing, CategorySales, CategoryCustomer},
	ChapterEngine:     {CategoryOperations, CategoryTechnology, CategoryPeople},
	ChapterResilience: {CategoryFinancials, CategoryRisk, CategoryCompliance},
}

// chapterOrder fixes the presentation order of chapters and, transitively,
// of categories.
var chapterOrder = []string{ChapterDirection, ChapterGoToMarket, ChapterEngine, ChapterResilience}

// CategoryName returns the display name for a category code, or the code
// itself when unknown.
func CategoryName(code string) string {
	if name, ok := categoryNames[code]; ok {
		return name
	}
	return code
}

// ChapterName returns the display name for a chapter code, or the code itself
// when unknown.
func ChapterName(code string) string {
	if name, ok := chapterNames[code]; ok {
		return name
	}
	return code
}

// CategoryCodes returns all category codes in chapter presentation order.
func CategoryCodes() []string {
	out := make([]string, 0, len(categoryNames))
	for _, chapter := range chapterOrder {
		out = append(out, chapterCategories[chapter]...)
	}
	return out
}

// ChapterCodes returns all chapter codes in presentation order.
func ChapterCodes() []string {
	out := make([]string, len(chapterOrder))
	copy(out, chapterOrder)
	return out
}

// ChapterCategories returns the ordered category codes owned by a chapter.
func ChapterCategories(code string) []string {
	categories := chapterCategories[code]
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// IsCategory reports whether code is one of the twelve category codes.
func IsCategory(code string) bool {
	_, ok := categoryNames[code]
	return ok
}

// IsChapter reports whether code is one of the four chapter codes.
func IsChapter(code string) bool {
	_, ok := chapterNames[code]
	return ok
}
