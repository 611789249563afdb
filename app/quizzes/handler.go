package quizzes

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/triviahq/trivia-api/app/api"
	"github.com/triviahq/trivia-api/app/trivia"
	"github.com/triviahq/trivia-api/models"
)

type QuizProvider interface {
	DrawQuiz(previous []uint, category *trivia.QuizCategory) (*models.Question, error)
}

type QuizHandler struct {
	svc QuizProvider
}

func NewQuizHandler(s QuizProvider) *QuizHandler {
	return &QuizHandler{svc: s}
}

// HandlePost serves POST /quizzes.
func (h *QuizHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	fields, err := api.DecodeObject(r)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	var previous []uint
	hasPrevious, err := api.Field(fields, "previous_questions", &previous)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	category, hasCategory, err := quizCategory(fields)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	if !hasPrevious && !hasCategory {
		api.WriteError(w, r, models.NewUnprocessableError("previous_questions or quiz_category is required"))
		return
	}

	question, err := h.svc.DrawQuiz(previous, category)
	if err != nil {
		api.WriteError(w, r, err)
		return
	}

	var body any
	if question != nil {
		body = question.ToMap()
	}
	api.WriteSuccess(w, map[string]any{
		"question": body,
	})
}

// quizCategory accepts {"id": .., "type": ..} or the text form "all" / "<id>".
func quizCategory(fields map[string]json.RawMessage) (*trivia.QuizCategory, bool, error) {
	raw, ok := fields["quiz_category"]
	if !ok {
		return nil, false, nil
	}

	raw = bytes.TrimSpace(raw)
	if bytes.HasPrefix(raw, []byte(`"`)) {
		var s string
		if _, err := api.Field(fields, "quiz_category", &s); err != nil {
			return nil, true, err
		}
		filter, err := trivia.ParseCategoryFilter(s)
		if err != nil {
			return nil, true, models.NewError(models.KindUnprocessable, "invalid quiz_category", err)
		}
		return &trivia.QuizCategory{ID: filter.ID}, true, nil
	}

	var in *struct {
		ID   api.Int `json:"id"`
		Type string  `json:"type"`
	}
	if _, err := api.Field(fields, "quiz_category", &in); err != nil {
		return nil, true, err
	}
	if in == nil {
		return nil, true, nil
	}
	if in.ID < 0 {
		return nil, true, models.NewUnprocessableError("quiz_category id must not be negative")
	}
	return &trivia.QuizCategory{ID: uint(in.ID), Type: in.Type}, true, nil
}
