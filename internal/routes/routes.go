package routes

import (
	"net/http"

	"lostfound/internal/handlers"
	"lostfound/internal/imaging"
	"lostfound/internal/middleware"
	"lostfound/internal/models"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Password *handlers.PasswordHandler
	Items    *handlers.ItemHandler
	Claims   *handlers.ClaimHandler
	Lost     *handlers.LostReportHandler
	Admin    *handlers.AdminHandler
	Health   *handlers.HealthHandler
}

type Options struct {
	Sessions middleware.SessionResolver
	// StaticDir is served at the root; UploadDir at /uploads/.
	StaticDir string
	UploadDir string
	// AuthLimit applies to login, registration and password endpoints.
	AuthLimit middleware.RateLimitConfig
}

func InitRoutes(router *mux.Router, h Handlers, opts Options) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.LoadSession(opts.Sessions), middleware.Logging)

	router.HandleFunc("/livez", h.Health.Live).Methods(http.MethodGet)
	router.HandleFunc("/readyz", h.Health.Ready).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	router.HandleFunc("/reset-password", h.Password.ResetPage).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// --- Public ---
	limited := api.PathPrefix("").Subrouter()
	limited.Use(middleware.RateLimit(opts.AuthLimit))
	limited.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	limited.HandleFunc("/registrar-usuario", h.Auth.RegisterUser).Methods(http.MethodPost)
	limited.HandleFunc("/registrar-master", h.Auth.RegisterMaster).Methods(http.MethodPost)
	limited.HandleFunc("/verificar-master", h.Auth.VerifyMaster).Methods(http.MethodPost)
	limited.HandleFunc("/forgot-password", h.Password.Forgot).Methods(http.MethodPost)
	limited.HandleFunc("/reset-password", h.Password.Reset).Methods(http.MethodPost)

	api.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/check-auth", h.Auth.CheckAuth).Methods(http.MethodGet)
	api.HandleFunc("/check-master", h.Auth.CheckMaster).Methods(http.MethodGet)
	api.HandleFunc("/itens-encontrados", h.Items.ListAll).Methods(http.MethodGet)
	api.HandleFunc("/buscar", h.Items.Search).Methods(http.MethodGet)

	// --- Session ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireAuth)
	protected.HandleFunc("/registrar-encontrado", h.Items.RegisterFound).Methods(http.MethodPost)
	protected.HandleFunc("/registrar-perdido", h.Lost.Report).Methods(http.MethodPost)
	protected.HandleFunc("/reivindicar/{itemId:[0-9]+}", h.Claims.Submit).Methods(http.MethodPost)

	// --- Master ---
	master := api.PathPrefix("").Subrouter()
	master.Use(middleware.OnlyRole(models.RoleMaster))
	master.HandleFunc("/list-users", h.Auth.ListUsers).Methods(http.MethodGet)
	master.HandleFunc("/perdidos", h.Lost.List).Methods(http.MethodGet)
	master.HandleFunc("/reivindicacoes", h.Claims.ListPending).Methods(http.MethodGet)
	master.HandleFunc("/itens-devolvidos", h.Items.ListReturned).Methods(http.MethodGet)
	master.HandleFunc("/remover-item/{itemId:[0-9]+}", h.Items.Remove).Methods(http.MethodDelete)
	master.HandleFunc("/admin/reivindicacao/{claimId:[0-9]+}", h.Claims.Resolve).Methods(http.MethodPost)
	master.HandleFunc("/admin/itens/{itemId:[0-9]+}/devolvido", h.Items.MarkReturned).Methods(http.MethodPost)
	master.HandleFunc("/admin/stats", h.Admin.Stats).Methods(http.MethodGet)
	master.HandleFunc("/admin/notificacoes-falhas", h.Admin.FailedNotifications).Methods(http.MethodGet)

	// --- Static ---
	if opts.UploadDir != "" {
		router.PathPrefix(imaging.PublicPrefix).Handler(
			http.StripPrefix(imaging.PublicPrefix, http.FileServer(http.Dir(opts.UploadDir))),
		).Methods(http.MethodGet, http.MethodHead)
	}
	if opts.StaticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(opts.StaticDir))).Methods(http.MethodGet, http.MethodHead)
	}
}
