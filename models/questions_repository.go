package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type QuestionsRepository struct {
	db *gorm.DB
}

// QuestionFilters narrows the candidate pool of a random draw.
type QuestionFilters struct {
	CategoryID *uint
	ExcludeIDs []uint
}

func NewQuestionsRepository(db *gorm.DB) *QuestionsRepository {
	return &QuestionsRepository{
		db: db,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func textContains(term string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("question ILIKE ?", "%"+likeEscaper.Replace(term)+"%")
	}
}

func (r *QuestionsRepository) paginate(offset, limit int, scopes ...func(*gorm.DB) *gorm.DB) ([]Question, int64, error) {
	var questions []Question
	var total int64

	if err := r.db.Model(&Question{}).Scopes(scopes...).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Scopes(scopes...).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error; err != nil {
		return nil, 0, err
	}

	return questions, total, nil
}

// GetPage returns one window of all questions ordered by id plus the table count.
func (r *QuestionsRepository) GetPage(offset, limit int) ([]Question, int64, error) {
	return r.paginate(offset, limit)
}

// Search matches term case-insensitively against the question text.
// The returned total counts matches only.
func (r *QuestionsRepository) Search(term string, offset, limit int) ([]Question, int64, error) {
	return r.paginate(offset, limit, textContains(term))
}

func (r *QuestionsRepository) GetByCategory(categoryID uint) ([]Question, error) {
	var questions []Question
	if err := r.db.
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionsRepository) GetByID(id uint) (*Question, error) {
	var question Question
	if err := r.db.Where("id = ?", id).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *QuestionsRepository) GetByText(text string) (*Question, error) {
	var question Question
	if err := r.db.Where("question = ?", text).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *QuestionsRepository) CreateQuestion(question *Question) error {
	return r.db.Create(question).Error
}

// UpdateQuestion persists in-place changes to an existing question.
func (r *QuestionsRepository) UpdateQuestion(question *Question) error {
	res := r.db.Model(&Question{}).
		Where("id = ?", question.ID).
		Updates(map[string]any{
			"question":   question.Question,
			"answer":     question.Answer,
			"category":   question.Category,
			"difficulty": question.Difficulty,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// DeleteQuestion hard-deletes a question. A concurrent delete of the same id
// makes the loser see ErrQuestionNotFound.
func (r *QuestionsRepository) DeleteQuestion(id uint) error {
	res := r.db.Where("id = ?", id).Delete(&Question{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// RandomQuestion draws one question uniformly at random from the filtered pool.
func (r *QuestionsRepository) RandomQuestion(filters QuestionFilters) (*Question, error) {
	var question Question

	query := r.db.Model(&Question{})
	if filters.CategoryID != nil {
		query = query.Where("category = ?", *filters.CategoryID)
	}
	if len(filters.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filters.ExcludeIDs)
	}

	if err := query.Order("RANDOM()").Take(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}
