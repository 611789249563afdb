package app

import (
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/triviahq/trivia-api/app/api"
	"github.com/triviahq/trivia-api/app/categories"
	"github.com/triviahq/trivia-api/app/questions"
	"github.com/triviahq/trivia-api/app/quizzes"
	"github.com/triviahq/trivia-api/internal/logger"
	"go.uber.org/zap"
)

// Service is everything the HTTP surface needs from the query service.
type Service interface {
	categories.CategoryProvider
	questions.QuestionProvider
	quizzes.QuizProvider
}

// NewRouter wires every route. Known paths answer unsupported verbs with 405,
// unknown paths with 404, both as JSON envelopes.
func NewRouter(svc Service, allowedOrigins []string) http.Handler {
	categoryHandler := categories.NewCategoryHandler(svc)
	questionHandler := questions.NewQuestionHandler(svc)
	quizHandler := quizzes.NewQuizHandler(svc)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /categories/{id}/questions", categoryHandler.HandleGetQuestions)
	mux.HandleFunc("GET /questions", questionHandler.HandleGet)
	mux.HandleFunc("POST /questions", questionHandler.HandlePost)
	mux.HandleFunc("DELETE /questions/{id}", questionHandler.HandleDelete)
	mux.HandleFunc("POST /quizzes", quizHandler.HandlePost)

	for _, path := range []string{
		"/categories",
		"/categories/{id}/questions",
		"/questions",
		"/questions/{id}",
		"/quizzes",
	} {
		mux.HandleFunc(path, api.MethodNotAllowed)
	}
	mux.HandleFunc("/", api.NotFound)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return requestLogger(c.Handler(mux))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.Get().Info("HTTP Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", r.RemoteAddr),
			zap.String("user_agent", r.UserAgent()),
		)
	})
}
