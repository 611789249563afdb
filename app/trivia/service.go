package trivia

import (
	"errors"
	"math"
	"strings"

	"github.com/triviahq/trivia-api/internal/logger"
	"github.com/triviahq/trivia-api/models"
	"go.uber.org/zap"
)

const (
	DefaultPageSize = 10
	MinDifficulty   = 1
	MaxDifficulty   = 5
)

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
}

type QuestionProvider interface {
	GetPage(offset, limit int) ([]models.Question, int64, error)
	Search(term string, offset, limit int) ([]models.Question, int64, error)
	GetByCategory(categoryID uint) ([]models.Question, error)
	GetByID(id uint) (*models.Question, error)
	CreateQuestion(question *models.Question) error
	DeleteQuestion(id uint) error
	RandomQuestion(filters models.QuestionFilters) (*models.Question, error)
}

// Service implements the trivia queries on top of the repositories.
type Service struct {
	categories       CategoryProvider
	questions        QuestionProvider
	pageSize         int
	allCategoryTypes []string
}

type Option func(*Service)

func WithPageSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithAllCategoryTypes sets the quiz category types that mean "every category".
func WithAllCategoryTypes(types ...string) Option {
	return func(s *Service) {
		s.allCategoryTypes = types
	}
}

func NewService(c CategoryProvider, q QuestionProvider, opts ...Option) *Service {
	s := &Service{
		categories:       c,
		questions:        q,
		pageSize:         DefaultPageSize,
		allCategoryTypes: []string{"click"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CategoryList struct {
	Categories map[uint]string
	Total      int
}

type QuestionPage struct {
	Questions       []models.Question
	Total           int64
	Categories      map[uint]string
	CurrentCategory string
}

type CategoryQuestions struct {
	Questions       []models.Question
	Total           int
	CurrentCategory string
}

// NewQuestion is the create payload after transport decoding.
type NewQuestion struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

func (n NewQuestion) validate() error {
	switch {
	case strings.TrimSpace(n.Question) == "":
		return models.NewUnprocessableError("question is required")
	case strings.TrimSpace(n.Answer) == "":
		return models.NewUnprocessableError("answer is required")
	case n.Category <= 0:
		return models.NewUnprocessableError("category must be positive")
	case n.Difficulty < MinDifficulty || n.Difficulty > MaxDifficulty:
		return models.NewUnprocessableError("difficulty must be between 1 and 5")
	}
	return nil
}

func (s *Service) ListCategories() (*CategoryList, error) {
	categories, err := s.categoryMap()
	if err != nil {
		return nil, err
	}
	return &CategoryList{Categories: categories, Total: len(categories)}, nil
}

// ListQuestions returns the 1-based page of all questions. An empty page is not found.
func (s *Service) ListQuestions(page int) (*QuestionPage, error) {
	p, err := s.questionPage(page)
	if err != nil {
		return nil, err
	}
	if len(p.Questions) == 0 {
		return nil, models.NewNotFoundError("no questions on page")
	}
	return p, nil
}

// DeleteQuestion removes a question and returns the requested page of the remainder.
func (s *Service) DeleteQuestion(id uint, page int) (*QuestionPage, error) {
	if _, err := s.questions.GetByID(id); err != nil {
		return nil, unprocessableIfMissing(err, "question does not exist")
	}

	if err := s.questions.DeleteQuestion(id); err != nil {
		return nil, unprocessableIfMissing(err, "question does not exist")
	}
	logger.Get().Info("question deleted", zap.Uint("question_id", id))

	return s.questionPage(page)
}

// CreateQuestion inserts a question and returns its id with the requested page.
func (s *Service) CreateQuestion(in NewQuestion, page int) (uint, *QuestionPage, error) {
	if err := in.validate(); err != nil {
		return 0, nil, err
	}

	question := &models.Question{
		Question:   strings.TrimSpace(in.Question),
		Answer:     strings.TrimSpace(in.Answer),
		Category:   uint(in.Category),
		Difficulty: in.Difficulty,
	}
	if err := s.questions.CreateQuestion(question); err != nil {
		return 0, nil, models.NewStorageError("failed to create question", err)
	}
	logger.Get().Info("question created", zap.Uint("question_id", question.ID))

	p, err := s.questionPage(page)
	if err != nil {
		return 0, nil, err
	}
	return question.ID, p, nil
}

// SearchQuestions pages through questions whose text contains term, ignoring case.
// No matches is an empty page, not an error.
func (s *Service) SearchQuestions(term string, page int) (*QuestionPage, error) {
	offset, err := s.offset(page)
	if err != nil {
		return nil, err
	}

	questions, total, err := s.questions.Search(term, offset, s.pageSize)
	if err != nil {
		return nil, models.NewStorageError("failed to search questions", err)
	}
	return s.withCategories(questions, total)
}

// QuestionsByCategory lists every question of an existing category.
func (s *Service) QuestionsByCategory(categoryID uint) (*CategoryQuestions, error) {
	category, err := s.categories.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			return nil, models.NewNotFoundError("category does not exist")
		}
		return nil, models.NewStorageError("failed to get category", err)
	}

	questions, err := s.questions.GetByCategory(category.ID)
	if err != nil {
		return nil, models.NewStorageError("failed to get questions", err)
	}
	return &CategoryQuestions{
		Questions:       questions,
		Total:           len(questions),
		CurrentCategory: category.Type,
	}, nil
}

// DrawQuiz picks a random question outside previous from the selected pool.
// A nil category selects every category. An exhausted pool returns nil, nil.
func (s *Service) DrawQuiz(previous []uint, category *QuizCategory) (*models.Question, error) {
	filter := s.categoryFilter(category)

	filters := models.QuestionFilters{ExcludeIDs: previous}
	if !filter.All {
		id := filter.ID
		filters.CategoryID = &id
	}

	question, err := s.questions.RandomQuestion(filters)
	if err != nil {
		if errors.Is(err, models.ErrQuestionNotFound) {
			logger.Get().Debug("quiz pool exhausted",
				zap.String("category_filter", filter.String()),
				zap.Int("previous_count", len(previous)),
			)
			return nil, nil
		}
		return nil, models.NewStorageError("failed to draw question", err)
	}
	return question, nil
}

func (s *Service) categoryFilter(category *QuizCategory) CategoryFilter {
	if category == nil {
		return AllCategories
	}
	for _, t := range s.allCategoryTypes {
		if category.Type == t {
			return AllCategories
		}
	}
	return ByCategory(category.ID)
}

func (s *Service) offset(page int) (int, error) {
	if page < 1 || page-1 > math.MaxInt/s.pageSize {
		return 0, models.NewNotFoundError("page out of range")
	}
	return (page - 1) * s.pageSize, nil
}

func (s *Service) questionPage(page int) (*QuestionPage, error) {
	offset, err := s.offset(page)
	if err != nil {
		return nil, err
	}

	questions, total, err := s.questions.GetPage(offset, s.pageSize)
	if err != nil {
		return nil, models.NewStorageError("failed to get questions", err)
	}
	return s.withCategories(questions, total)
}

func (s *Service) withCategories(questions []models.Question, total int64) (*QuestionPage, error) {
	categories, err := s.categoryMap()
	if err != nil {
		return nil, err
	}

	p := &QuestionPage{
		Questions:  questions,
		Total:      total,
		Categories: categories,
	}
	if len(questions) > 0 {
		p.CurrentCategory = categories[questions[0].Category]
	}
	return p, nil
}

func (s *Service) categoryMap() (map[uint]string, error) {
	categories, err := s.categories.GetAllCategories()
	if err != nil {
		return nil, models.NewStorageError("failed to get categories", err)
	}

	m := make(map[uint]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m, nil
}

func unprocessableIfMissing(err error, message string) error {
	if errors.Is(err, models.ErrQuestionNotFound) {
		return models.NewUnprocessableError(message)
	}
	return models.NewStorageError("failed to delete question", err)
}
