package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/goal-pulse/internal/config"
	_ "github.com/saulo-duarte/goal-pulse/internal/docs"
	"github.com/saulo-duarte/goal-pulse/internal/goal"
	"github.com/saulo-duarte/goal-pulse/internal/middlewares"
	"github.com/saulo-duarte/goal-pulse/internal/progress"
	"github.com/saulo-duarte/goal-pulse/internal/realtime"
)

type RouterConfig struct {
	GoalHandler     *goal.Handler
	ProgressHandler *progress.Handler
	RealtimeHandler *realtime.Handler
	Hub             *realtime.Hub
	AllowedOrigins  []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"message": "Goal Pulse API is running"})
	})
	r.Get("/health", health(cfg.Hub))

	r.Mount("/goals", goal.Routes(cfg.GoalHandler))
	r.Post("/goals/{id}/update", cfg.ProgressHandler.Update)
	r.Get("/dashboard", cfg.GoalHandler.Dashboard)

	if cfg.RealtimeHandler != nil {
		r.Get("/ws", cfg.RealtimeHandler.Serve)
	}
	return r
}

func health(hub *realtime.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		observers := 0
		if hub != nil {
			observers = hub.Count()
		}
		config.JSON(w, http.StatusOK, map[string]any{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"observers": observers,
		})
	}
}
