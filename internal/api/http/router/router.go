package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/flarewebs/flarewebs-server/internal/api/http/handler"
	"github.com/flarewebs/flarewebs-server/internal/api/http/middleware"
	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
)

// Services groups the application services exposed over HTTP.
type Services struct {
	Auth          handler.AuthService
	Users         handler.UserService
	Store         handler.StoreService
	Authenticator middleware.Authenticator
	DB            handler.Pinger
}

// Options configures cross-cutting behaviour of the router.
type Options struct {
	AllowedHosts  []string
	AuthRateLimit int
}

// Observer is the metrics sink of the router.
type Observer interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// Router builds the HTTP handler of the service.
type Router struct {
	services       Services
	options        Options
	tasks          middleware.Flusher
	observer       Observer
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	services Services,
	options Options,
	tasks middleware.Flusher,
	observer Observer,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		options:        options,
		tasks:          tasks,
		observer:       observer,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register mounts all routes and middleware and returns the resulting handler.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	metrics := middleware.NewMetrics(r.observer)
	deferred := middleware.NewTasks(r.tasks)
	authenticate := middleware.NewAuthenticate(r.services.Authenticator, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(
		chimw.RequestID,
		chimw.RealIP,
		logging.Handle,
		metrics.Handle,
		chimw.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   r.options.AllowedHosts,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		deferred.Handle,
	)

	root := handler.NewRoot(r.services.DB, r.logger)
	mux.Get("/", root.Hello)
	mux.Get("/healthz", root.Health)
	mux.Method(http.MethodGet, "/metrics", r.observer.Handler())

	mux.Route("/auth", func(sub chi.Router) {
		r.registerAuthRoutes(sub)
	})
	mux.Route("/users", func(sub chi.Router) {
		r.registerUserRoutes(sub, authenticate)
	})
	mux.Route("/store", func(sub chi.Router) {
		r.registerStoreRoutes(sub, authenticate)
	})

	return mux
}

func (r *Router) registerAuthRoutes(sub chi.Router) {
	h := handler.NewAuth(r.services.Auth, r.logger)

	if r.options.AuthRateLimit > 0 {
		sub.Use(httprate.LimitByIP(r.options.AuthRateLimit, time.Minute))
	}
	sub.Post("/access-token", h.AccessToken)
	sub.Post("/reset_password", h.ResetPassword)
	sub.Post("/reset-password-complete/", h.ResetPasswordComplete)
}

func (r *Router) registerUserRoutes(sub chi.Router, authenticate *middleware.Authenticate) {
	h := handler.NewUsers(r.services.Users, r.contextManager, r.logger)

	sub.Post("/create-admin-complete", h.CreateAdminComplete)

	sub.Group(func(g chi.Router) {
		g.Use(authenticate.Handle, authenticate.RequireActive)
		g.Get("/me", h.Me)
		g.Put("/update_password", h.UpdatePassword)
	})

	sub.Group(func(g chi.Router) {
		g.Use(authenticate.Handle, authenticate.RequireActive, authenticate.RequireSuperuser)
		g.Get("/", h.List)
		g.Get("/test_email", h.TestEmail)
		g.Post("/create-admin", h.CreateAdmin)
		g.Get("/{id}", h.Get)
		g.Put("/{id}", h.Update)
		g.Get("/{id}/toggle_status", h.ToggleStatus)
	})
}

func (r *Router) registerStoreRoutes(sub chi.Router, authenticate *middleware.Authenticate) {
	h := handler.NewStore(r.services.Store, r.logger)

	sub.Use(authenticate.Handle, authenticate.RequireActive)
	sub.Post("/upload-image/", h.UploadImage)
	sub.Get("/", h.List)
	sub.Post("/", h.Create)
	sub.Get("/{id}", h.Get)
	sub.Put("/{id}", h.Update)
	sub.Delete("/{id}", h.Destroy)
}
