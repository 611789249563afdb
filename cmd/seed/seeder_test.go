package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triviahq/trivia-api/models"
)

// --- Mock Stores ---

type MockCategoryStore struct {
	Categories []models.Category
	CreateErr  error
}

func (m *MockCategoryStore) GetByType(categoryType string) (*models.Category, error) {
	for _, c := range m.Categories {
		if c.Type == categoryType {
			category := c
			return &category, nil
		}
	}
	return nil, models.ErrCategoryNotFound
}

func (m *MockCategoryStore) CreateCategory(category *models.Category) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	category.ID = uint(len(m.Categories) + 1)
	m.Categories = append(m.Categories, *category)
	return nil
}

type MockQuestionStore struct {
	Questions []models.Question
	updated   []models.Question
}

func (m *MockQuestionStore) GetByText(text string) (*models.Question, error) {
	for _, q := range m.Questions {
		if q.Question == text {
			question := q
			return &question, nil
		}
	}
	return nil, models.ErrQuestionNotFound
}

func (m *MockQuestionStore) CreateQuestion(question *models.Question) error {
	question.ID = uint(len(m.Questions) + 1)
	m.Questions = append(m.Questions, *question)
	return nil
}

func (m *MockQuestionStore) UpdateQuestion(question *models.Question) error {
	m.updated = append(m.updated, *question)
	return nil
}

// --- Tests ---

func TestSeed(t *testing.T) {
	testBank := []seedCategory{
		{Type: "Science", Questions: []seedQuestion{{"Who discovered penicillin?", "Alexander Fleming", 3}}},
		{Type: "Art", Questions: []seedQuestion{{"La Giaconda is better known as what?", "Mona Lisa", 3}}},
	}

	cats := &MockCategoryStore{}
	qs := &MockQuestionStore{}
	s := &seeder{categories: cats, questions: qs}

	created, updated, err := s.seed(testBank)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, updated)
	assert.Len(t, cats.Categories, 2)
	assert.Equal(t, uint(2), qs.Questions[1].Category)

	// Reseeding updates in place.
	created, updated, err = s.seed(testBank)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 2, updated)
	assert.Len(t, cats.Categories, 2)
	assert.Len(t, qs.Questions, 2)
	assert.Equal(t, uint(1), qs.updated[0].ID)
}

func TestSeed_CategoryFailure(t *testing.T) {
	s := &seeder{
		categories: &MockCategoryStore{CreateErr: errors.New("insert failed")},
		questions:  &MockQuestionStore{},
	}

	_, _, err := s.seed(bank)

	assert.ErrorContains(t, err, "insert failed")
}

func TestBank(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range bank {
		assert.NotEmpty(t, c.Type)
		for _, q := range c.Questions {
			assert.False(t, seen[q.Question], "duplicate question %q", q.Question)
			seen[q.Question] = true
			assert.NotEmpty(t, q.Answer)
			assert.GreaterOrEqual(t, q.Difficulty, 1)
			assert.LessOrEqual(t, q.Difficulty, 5)
		}
	}
}
