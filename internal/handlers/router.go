package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jeremyjsx/blogapi/internal/blog"
	"github.com/jeremyjsx/blogapi/internal/middleware"
)

const welcome = "Welcome! This is sym4api - Symfony 4 JSON REST API."

type RouterDeps struct {
	Categories *blog.CategoryService
	Posts      *blog.PostService
	Tags       *blog.TagService
	Options    Options
	// Health is optional; /health is not mounted without it.
	Health *HealthDeps
	Logger *slog.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	opts := deps.Options
	if opts.Logger == nil {
		opts.Logger = logger
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(welcome))
	})
	if deps.Health != nil {
		r.Get("/health", Health(deps.Health))
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		NewResourceHandler[blog.Category, blog.CreateCategoryRequest, blog.UpdateCategoryRequest]("category", "categories", deps.Categories, opts).Register(r)
		NewResourceHandler[blog.Post, blog.CreatePostRequest, blog.UpdatePostRequest]("post", "posts", deps.Posts, opts).Register(r)
		NewResourceHandler[blog.Tag, blog.CreateTagRequest, blog.UpdateTagRequest]("tag", "tags", deps.Tags, opts).Register(r)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})
	return r
}
