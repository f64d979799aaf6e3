// It defines the API server, sets up the routes (endpoints)
// using chi, and links them to the handler functions.

package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kien091/movie-system/internal/account"
	"github.com/kien091/movie-system/internal/core"
	"github.com/kien091/movie-system/internal/store"
)

// Server holds the dependencies for our API.
type Server struct {
	app      *core.App
	db       *sql.DB
	store    *store.Store
	accounts *account.Service
}

// Store returns the store instance.
func (s *Server) Store() *store.Store {
	return s.store
}

// NewServer creates a new Server instance.
func NewServer(app *core.App) *Server {
	storeInstance := store.New(app.DB)
	return &Server{
		app:      app,
		db:       app.DB,
		store:    storeInstance,
		accounts: account.NewService(storeInstance, app.Mailer, app.Config.Mail.From),
	}
}

// Router sets up and returns the main router for the application.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Logs requests to the console
	r.Use(middleware.Recoverer) // Recovers from panics
	r.Use(middleware.Timeout(60 * time.Second))

	r.Group(func(r chi.Router) {
		// Every catalog route sees the current user (possibly nil); no
		// handler reads session state directly.
		r.Use(s.SessionMiddleware)

		// Catalog views
		r.Get("/", s.handleHome)
		r.Get("/filter", s.handleFilterByCategory)
		r.Get("/search", s.handleSearch)
		r.Get("/filterBy", s.handleFilterByCriteria)

		// Movie detail and owned collections
		r.Get("/movies/{movieID}", s.handleGetMovie)

		// Account routes
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Post("/reset", s.handleReset)

		r.Group(func(r chi.Router) {
			r.Use(s.RequireUserMiddleware)

			r.Post("/movies/{movieID}/reviews", s.handleAddReview)
			r.Post("/movies/{movieID}/favorite", s.handleAddFavorite)
			r.Delete("/movies/{movieID}/favorite", s.handleRemoveFavorite)
			r.Post("/movies/{movieID}/episodes/{episodeNumber}/watch", s.handleRecordWatch)
		})
	})

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		if err := s.db.Ping(); err != nil {
			RespondWithError(w, http.StatusServiceUnavailable, "Database connection failed")
			return
		}
		RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
