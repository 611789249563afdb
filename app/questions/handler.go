package questions

import (
	"encoding/json"
	"net/http"

	"github.com/triviahq/trivia-api/app/api"
	"github.com/triviahq/trivia-api/app/trivia"
)

type QuestionProvider interface {
	ListQuestions(page int) (*trivia.QuestionPage, error)
	DeleteQuestion(id uint, page int) (*trivia.QuestionPage, error)
	CreateQuestion(in trivia.NewQuestion, page int) (uint, *trivia.QuestionPage, error)
	SearchQuestions(term string, page int) (*trivia.QuestionPage, error)
}

type QuestionHandler struct {
	svc QuestionProvider
}

func NewQuestionHandler(s QuestionProvider) *QuestionHandler {
	return &QuestionHandler{svc: s}
}

// HandleGet serves GET /questions?page=N.
func (h *QuestionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.ListQuestions(api.PageParam(r))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteSuccess(w, map[string]any{
		"questions":        api.QuestionMaps(p.Questions),
		"total_questions":  p.Total,
		"categories":       p.Categories,
		"current_category": p.CurrentCategory,
	})
}

// HandleDelete serves DELETE /questions/{id}.
func (h *QuestionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	p, err := h.svc.DeleteQuestion(id, api.PageParam(r))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteSuccess(w, map[string]any{
		"deleted":         id,
		"questions":       api.QuestionMaps(p.Questions),
		"total_questions": p.Total,
	})
}

// HandlePost serves POST /questions. A body carrying "searchTerm" searches,
// any other body creates a question.
func (h *QuestionHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	fields, err := api.DecodeObject(r)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	if _, ok := fields["searchTerm"]; ok {
		h.search(w, r, fields)
		return
	}
	h.create(w, r, fields)
}

func (h *QuestionHandler) search(w http.ResponseWriter, r *http.Request, fields map[string]json.RawMessage) {
	var term *string
	if _, err := api.Field(fields, "searchTerm", &term); err != nil {
		api.WriteError(w, r, err)
		return
	}
	if term == nil {
		empty := ""
		term = &empty
	}

	p, err := h.svc.SearchQuestions(*term, api.PageParam(r))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteSuccess(w, map[string]any{
		"questions":        api.QuestionMaps(p.Questions),
		"total_questions":  p.Total,
		"current_category": p.CurrentCategory,
	})
}

func (h *QuestionHandler) create(w http.ResponseWriter, r *http.Request, fields map[string]json.RawMessage) {
	var (
		question   string
		answer     string
		category   api.Int
		difficulty api.Int
	)
	for key, dst := range map[string]any{
		"question":   &question,
		"answer":     &answer,
		"category":   &category,
		"difficulty": &difficulty,
	} {
		if _, err := api.Field(fields, key, dst); err != nil {
			api.WriteError(w, r, err)
			return
		}
	}

	id, p, err := h.svc.CreateQuestion(trivia.NewQuestion{
		Question:   question,
		Answer:     answer,
		Category:   int(category),
		Difficulty: int(difficulty),
	}, api.PageParam(r))
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	api.WriteSuccess(w, map[string]any{
		"created":         id,
		"questions":       api.QuestionMaps(p.Questions),
		"total_questions": p.Total,
	})
}
