package taxonomy

import (
	"errors"
	"fmt"
	"regexp"
)

// QuestionCount is the fixed size of the assessment catalog. Load refuses to
// serve a catalog of any other size.
const QuestionCount = 45

const (
	// MinWeight and MaxWeight bound per-question weights.
	MinWeight = 0.5
	MaxWeight = 2.0
)

var questionIDPattern = regexp.MustCompile(`^LQ\d{3}$`)

// Registry is the validated, read-only view of the question catalog. It is
// built once at startup and safe for concurrent use.
type Registry struct {
	questions  []Question
	byID       map[string]Question
	byCategory map[string][]Question
}

// Load validates the static catalog and returns a Registry. Any malformed
// record or a wrong total count is an error; callers must treat it as fatal.
func Load() (*Registry, error) {
	return newRegistry(catalog)
}

func newRegistry(questions []Question) (*Registry, error) {
	if len(questions) != QuestionCount {
		return nil, fmt.Errorf("catalog has %d questions, expected %d", len(questions), QuestionCount)
	}

	r := &Registry{
		questions:  make([]Question, len(questions)),
		byID:       make(map[string]Question, len(questions)),
		byCategory: make(map[string][]Question),
	}
	copy(r.questions, questions)

	for i, q := range r.questions {
		if err := validateQuestion(q, i+1); err != nil {
			return nil, err
		}
		if _, exists := r.byID[q.ID]; exists {
			return nil, fmt.Errorf("question %s: duplicate id", q.ID)
		}
		r.byID[q.ID] = q
		r.byCategory[q.Category] = append(r.byCategory[q.Category], q)
	}

	for _, code := range CategoryCodes() {
		if len(r.byCategory[code]) == 0 {
			return nil, fmt.Errorf("category %s has no questions", code)
		}
	}

	return r, nil
}

func validateQuestion(q Question, expectedNumber int) error {
	if !questionIDPattern.MatchString(q.ID) {
		return fmt.Errorf("question %q: id does not match LQ pattern", q.ID)
	}
	if q.Number != expectedNumber {
		return fmt.Errorf("question %s: number %d out of sequence, expected %d", q.ID, q.Number, expectedNumber)
	}
	if q.Text == "" {
		return fmt.Errorf("question %s: text is empty", q.ID)
	}
	if !IsCategory(q.Category) {
		return fmt.Errorf("question %s: unknown category %q", q.ID, q.Category)
	}
	if !IsChapter(q.Chapter) {
		return fmt.Errorf("question %s: unknown chapter %q", q.ID, q.Chapter)
	}
	if !chapterContains(q.Chapter, q.Category) {
		return fmt.Errorf("question %s: category %s does not belong to chapter %s", q.ID, q.Category, q.Chapter)
	}
	if _, err := ParseResponseType(string(q.ResponseType)); err != nil {
		return fmt.Errorf("question %s: %w", q.ID, err)
	}
	if q.Weight < MinWeight || q.Weight > MaxWeight {
		return fmt.Errorf("question %s: weight %.2f outside [%.1f, %.1f]", q.ID, q.Weight, MinWeight, MaxWeight)
	}
	if q.ResponseType == ResponseScale && len(q.ScaleLabels) == 0 {
		return fmt.Errorf("question %s: scale question is missing labels", q.ID)
	}
	return nil
}

func chapterContains(chapter, category string) bool {
	for _, code := range chapterCategories[chapter] {
		if code == category {
			return true
		}
	}
	return false
}

// All returns every question in catalog order.
func (r *Registry) All() []Question {
	out := make([]Question, len(r.questions))
	copy(out, r.questions)
	return out
}

// ByCategory returns the questions assigned to a category, in catalog order.
func (r *Registry) ByCategory(code string) []Question {
	questions := r.byCategory[code]
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// ByChapter resolves a chapter through its categories to their questions, in
// catalog order.
func (r *Registry) ByChapter(code string) []Question {
	var out []Question
	for _, category := range chapterCategories[code] {
		out = append(out, r.byCategory[category]...)
	}
	return out
}

// ByID returns a single question by its identifier.
func (r *Registry) ByID(id string) (Question, bool) {
	q, ok := r.byID[id]
	return q, ok
}

// CategoryWeight returns the arithmetic mean of a category's question
// weights. Load guarantees every category has at least one question.
func (r *Registry) CategoryWeight(code string) (float64, error) {
	questions := r.byCategory[code]
	if len(questions) == 0 {
		return 0, errors.New("unknown category")
	}
	var sum float64
	for _, q := range questions {
		sum += q.Weight
	}
	return sum / float64(len(questions)), nil
}
