package main

import (
	"errors"
	"fmt"

	"github.com/triviahq/trivia-api/models"
)

type categoryStore interface {
	GetByType(categoryType string) (*models.Category, error)
	CreateCategory(category *models.Category) error
}

type questionStore interface {
	GetByText(text string) (*models.Question, error)
	CreateQuestion(question *models.Question) error
	UpdateQuestion(question *models.Question) error
}

type seedQuestion struct {
	Question   string
	Answer     string
	Difficulty int
}

type seedCategory struct {
	Type      string
	Questions []seedQuestion
}

// seeder upserts the demo bank. Categories match on type, questions on text.
type seeder struct {
	categories categoryStore
	questions  questionStore
}

func (s *seeder) seed(bank []seedCategory) (created, updated int, err error) {
	for _, sc := range bank {
		category, err := s.category(sc.Type)
		if err != nil {
			return created, updated, err
		}

		for _, sq := range sc.Questions {
			q := &models.Question{
				Question:   sq.Question,
				Answer:     sq.Answer,
				Category:   category.ID,
				Difficulty: sq.Difficulty,
			}

			existing, err := s.questions.GetByText(sq.Question)
			switch {
			case errors.Is(err, models.ErrQuestionNotFound):
				if err := s.questions.CreateQuestion(q); err != nil {
					return created, updated, fmt.Errorf("create question %q: %w", sq.Question, err)
				}
				created++
			case err != nil:
				return created, updated, fmt.Errorf("lookup question %q: %w", sq.Question, err)
			default:
				q.ID = existing.ID
				if err := s.questions.UpdateQuestion(q); err != nil {
					return created, updated, fmt.Errorf("update question %q: %w", sq.Question, err)
				}
				updated++
			}
		}
	}
	return created, updated, nil
}

func (s *seeder) category(categoryType string) (*models.Category, error) {
	category, err := s.categories.GetByType(categoryType)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, models.ErrCategoryNotFound) {
		return nil, fmt.Errorf("lookup category %q: %w", categoryType, err)
	}

	category = &models.Category{Type: categoryType}
	if err := s.categories.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("create category %q: %w", categoryType, err)
	}
	return category, nil
}
