package categories

import (
	"net/http"

	"github.com/triviahq/trivia-api/app/api"
	"github.com/triviahq/trivia-api/app/trivia"
)

type CategoryProvider interface {
	ListCategories() (*trivia.CategoryList, error)
	QuestionsByCategory(categoryID uint) (*trivia.CategoryQuestions, error)
}

type CategoryHandler struct {
	svc CategoryProvider
}

func NewCategoryHandler(s CategoryProvider) *CategoryHandler {
	return &CategoryHandler{svc: s}
}

// HandleGetAll serves GET /categories.
func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCategories()
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteSuccess(w, map[string]any{
		"categories":       list.Categories,
		"total_categories": list.Total,
	})
}

// HandleGetQuestions serves GET /categories/{id}/questions.
func (h *CategoryHandler) HandleGetQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	res, err := h.svc.QuestionsByCategory(id)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteSuccess(w, map[string]any{
		"questions":        api.QuestionMaps(res.Questions),
		"total_questions":  res.Total,
		"current_category": res.CurrentCategory,
	})
}
