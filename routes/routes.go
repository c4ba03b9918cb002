package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/padeltour/tournament-server/handlers"
	"github.com/padeltour/tournament-server/metrics"
	"github.com/padeltour/tournament-server/middleware"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Team      *handlers.TeamHandler
	Group     *handlers.GroupHandler
	Match     *handlers.MatchHandler
	Bracket   *handlers.BracketHandler
	Overview  *handlers.OverviewHandler
	WebSocket *handlers.WebSocketHandler
}

func SetupRoutes(router *chi.Mux, h Handlers, jwtSecret []byte, loginLimiter *middleware.LoginRateLimiter) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(metrics.Middleware)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.With(loginLimiter.Middleware).Post("/auth/login", h.Auth.Login)

	router.Get("/ws", h.WebSocket.Serve)

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", h.Team.ListTeams)
		r.Get("/{teamID}", h.Team.GetTeamByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Team.CreateTeam)
			r.Put("/{teamID}", h.Team.UpdateTeam)
			r.Delete("/{teamID}", h.Team.DeleteTeam)
			r.Put("/{teamID}/logo", h.Team.UploadLogo)
		})
	})

	router.Route("/groups", func(r chi.Router) {
		r.Get("/", h.Group.ListGroups)
		r.Get("/{groupID}", h.Group.GetGroupByID)
		r.Get("/{groupID}/standings", h.Group.GetStandings)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Group.CreateGroup)
			r.Put("/{groupID}", h.Group.UpdateGroup)
			r.Delete("/{groupID}", h.Group.DeleteGroup)
			r.Post("/{groupID}/schedule", h.Group.GenerateSchedule)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", h.Match.ListMatches)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Match.CreateMatch)
			r.Put("/{matchID}", h.Match.UpdateMatch)
			r.Delete("/{matchID}", h.Match.DeleteMatch)
		})
	})

	router.Route("/bracket", func(r chi.Router) {
		r.Get("/", h.Bracket.GetBracket)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.RequireAdmin)

			r.Put("/{slotUID}", h.Bracket.UpdateSlot)
			r.Post("/reset", h.Bracket.ResetBracket)
		})
	})

	router.Get("/overview", h.Overview.GetOverview)
}
