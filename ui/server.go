package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"trekadmin/app"
	"trekadmin/internal"
	"trekadmin/ports"
)

// Server is the admin HTTP application
type Server struct {
	router    *chi.Mux
	treks     *app.TrekService
	dashboard *app.DashboardService
	analytics *app.AnalyticsService
	batches   ports.BatchRepository
	bookings  ports.BookingRepository
	users     ports.UserRepository
	posts     ports.PostRepository
	logger    *internal.Logger

	maxUploadBytes int64
}

// Config holds server wiring
type Config struct {
	TrekService      *app.TrekService
	DashboardService *app.DashboardService
	AnalyticsService *app.AnalyticsService
	BatchRepo        ports.BatchRepository
	BookingRepo      ports.BookingRepository
	UserRepo         ports.UserRepository
	PostRepo         ports.PostRepository
	Logger           *internal.Logger
	MaxUploadBytes   int64
}

// NewServer creates the admin API server
func NewServer(cfg Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		treks:          cfg.TrekService,
		dashboard:      cfg.DashboardService,
		analytics:      cfg.AnalyticsService,
		batches:        cfg.BatchRepo,
		bookings:       cfg.BookingRepo,
		users:          cfg.UserRepo,
		posts:          cfg.PostRepo,
		logger:         cfg.Logger,
		maxUploadBytes: cfg.MaxUploadBytes,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.router
}

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	// Treks and the spreadsheet import pipeline
	s.router.Get("/api/treks", s.handleListTreks)
	s.router.Post("/api/treks", s.handleCreateTrek)
	s.router.Get("/api/treks/template", s.handleTrekTemplate)
	s.router.Post("/api/treks/import", s.handleImportTrek)
	s.router.Get("/api/treks/{id}", s.handleGetTrek)
	s.router.Put("/api/treks/{id}", s.handleUpdateTrek)
	s.router.Delete("/api/treks/{id}", s.handleDeleteTrek)
	s.router.Get("/api/treks/{id}/batches", s.handleListBatches)
	s.router.Get("/api/categories", s.handleListCategories)

	// Batch management
	s.router.Patch("/api/batches/{id}/stop-booking", s.handleStopBooking)
	s.router.Patch("/api/batches/{id}/resume-booking", s.handleResumeBooking)
	s.router.Get("/api/batches/{id}/bookings", s.handleBatchBookings)
	s.router.Get("/api/batches/{id}/export-bookings", s.handleExportBookings)

	// Blog posts
	s.router.Get("/api/posts", s.handleListPosts)
	s.router.Post("/api/posts", s.handleCreatePost)
	s.router.Get("/api/posts/{id}", s.handleGetPost)
	s.router.Post("/api/posts/{id}", s.handleUpdatePost)
	s.router.Delete("/api/posts/{id}", s.handleDeletePost)

	// Admin views
	s.router.Get("/api/users", s.handleListUsers)
	s.router.Get("/api/bookings", s.handleRecentBookings)
	s.router.Get("/api/dashboard", s.handleDashboard)
	s.router.Get("/api/analytics/revenue", s.handleRevenueReport)
}
