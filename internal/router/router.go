package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lucasmoraes-dev/habitflow/internal/aitip"
	"github.com/lucasmoraes-dev/habitflow/internal/auth"
	"github.com/lucasmoraes-dev/habitflow/internal/dashboard"
	"github.com/lucasmoraes-dev/habitflow/internal/habit"
	"github.com/lucasmoraes-dev/habitflow/internal/middlewares"
	"github.com/lucasmoraes-dev/habitflow/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	HabitHandler     *habit.Handler
	DashboardHandler *dashboard.Handler
	AITipHandler     *aitip.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", cfg.UserHandler.Signup)
			r.Post("/login", cfg.UserHandler.Login)
			r.Post("/logout", auth.NewHandler().Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Mount("/habits", habit.Routes(cfg.HabitHandler))
			r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
			r.Mount("/ai-tips", aitip.Routes(cfg.AITipHandler))
			r.Mount("/users", user.Routes(cfg.UserHandler))
		})
	})

	// Page routes are rendered by the frontend; the gate only enforces the
	// redirect rules before handing off.
	r.With(auth.PageGate).Get("/*", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return r
}
