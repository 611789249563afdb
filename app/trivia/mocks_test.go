package trivia

import (
	"slices"
	"strings"

	"github.com/triviahq/trivia-api/models"
)

// --- Mock Repos ---

type MockCategoryRepo struct {
	Categories []models.Category
	Err        error
}

func (m *MockCategoryRepo) GetAllCategories() ([]models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Categories, nil
}

func (m *MockCategoryRepo) GetByID(id uint) (*models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.Categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

type MockQuestionRepo struct {
	Questions []models.Question
	Err       error
	DeleteErr error
	CreateErr error

	// Fields to capture call arguments
	lastCalledOffset  int
	lastCalledLimit   int
	lastCalledTerm    string
	lastCalledFilters models.QuestionFilters
	created           *models.Question
	deleted           []uint
}

func window(questions []models.Question, offset, limit int) []models.Question {
	start := min(offset, len(questions))
	end := min(offset+limit, len(questions))
	return questions[start:end]
}

func (m *MockQuestionRepo) GetPage(offset, limit int) ([]models.Question, int64, error) {
	m.lastCalledOffset = offset
	m.lastCalledLimit = limit
	if m.Err != nil {
		return nil, 0, m.Err
	}
	return window(m.Questions, offset, limit), int64(len(m.Questions)), nil
}

func (m *MockQuestionRepo) Search(term string, offset, limit int) ([]models.Question, int64, error) {
	m.lastCalledTerm = term
	m.lastCalledOffset = offset
	m.lastCalledLimit = limit
	if m.Err != nil {
		return nil, 0, m.Err
	}

	var matches []models.Question
	for _, q := range m.Questions {
		if strings.Contains(strings.ToLower(q.Question), strings.ToLower(term)) {
			matches = append(matches, q)
		}
	}
	return window(matches, offset, limit), int64(len(matches)), nil
}

func (m *MockQuestionRepo) GetByCategory(categoryID uint) ([]models.Question, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	questions := []models.Question{}
	for _, q := range m.Questions {
		if q.Category == categoryID {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func (m *MockQuestionRepo) GetByID(id uint) (*models.Question, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, q := range m.Questions {
		if q.ID == id {
			question := q
			return &question, nil
		}
	}
	return nil, models.ErrQuestionNotFound
}

func (m *MockQuestionRepo) CreateQuestion(question *models.Question) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	var maxID uint
	for _, q := range m.Questions {
		maxID = max(maxID, q.ID)
	}
	question.ID = maxID + 1
	m.created = question
	m.Questions = append(m.Questions, *question)
	return nil
}

func (m *MockQuestionRepo) DeleteQuestion(id uint) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, q := range m.Questions {
		if q.ID == id {
			m.Questions = slices.Delete(m.Questions, i, i+1)
			m.deleted = append(m.deleted, id)
			return nil
		}
	}
	return models.ErrQuestionNotFound
}

func (m *MockQuestionRepo) RandomQuestion(filters models.QuestionFilters) (*models.Question, error) {
	m.lastCalledFilters = filters
	if m.Err != nil {
		return nil, m.Err
	}
	for _, q := range m.Questions {
		if filters.CategoryID != nil && q.Category != *filters.CategoryID {
			continue
		}
		if slices.Contains(filters.ExcludeIDs, q.ID) {
			continue
		}
		question := q
		return &question, nil
	}
	return nil, models.ErrQuestionNotFound
}

// --- Helpers ---

var testCategories = []models.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 5, Type: "Entertainment"},
}

func newTestQuestions(n int, category uint) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			ID:         uint(i + 1),
			Question:   "What is question " + string(rune('A'+i%26)) + "?",
			Answer:     "Answer",
			Category:   category,
			Difficulty: 1 + i%5,
		}
	}
	return questions
}
