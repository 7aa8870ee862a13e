package http

import (
	"log/slog"
	"os"

	"github.com/congrega/attendance-backend/internal/handler/http/middleware"
	"github.com/congrega/attendance-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	memberHandler MemberHandler,
	visitorHandler VisitorHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	dashboardHandler DashboardHandler,
	cacheHandler CacheHandler,
	corsOrigins []string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/members", func(r chi.Router) {
				r.Get("/", memberHandler.List)
				r.Post("/", memberHandler.Create)
				r.Get("/{id}", memberHandler.Get)
				r.Put("/{id}", memberHandler.Update)
				r.Delete("/{id}", memberHandler.Delete)
			})

			r.Route("/visitors", func(r chi.Router) {
				r.Get("/", visitorHandler.List)
				r.Post("/", visitorHandler.Create)
				r.Get("/{id}", visitorHandler.Get)
				r.Put("/{id}", visitorHandler.Update)
				r.Delete("/{id}", visitorHandler.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Upsert)
				r.Get("/", attendanceHandler.ListByDate)
				r.Get("/person/{id}", attendanceHandler.ListByPerson)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/by-date-range", reportHandler.ByDateRange)
				r.Get("/individual/{id}", reportHandler.Individual)
				r.Get("/collective", reportHandler.Collective)
			})

			r.Get("/dashboard/stats", dashboardHandler.Stats)

			r.Route("/cache", func(r chi.Router) {
				r.Post("/invalidate/{collection}", cacheHandler.Invalidate)
				r.Post("/clear", cacheHandler.Clear)
			})
		})
	})
	return r
}
