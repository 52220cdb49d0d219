package http

import (
	"net/http"
	"time"

	"reelgear-backend/internal/domain"
	"reelgear-backend/internal/security"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// RouterConfig bundles the handlers and cross-cutting settings the router
// needs. Route paths follow the web client's API contract.
type RouterConfig struct {
	Auth          *AuthHandler
	KYC           *KYCHandler
	Equipment     *EquipmentHandler
	Booking       *BookingHandler
	Review        *ReviewHandler
	Notification  *NotificationHandler
	Tokens        security.TokenManager
	RequestTimeout time.Duration
	CORSOrigins    []string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)
	r.Use(TimeoutMiddleware(cfg.RequestTimeout))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Public routes.
	api.HandleFunc("/register/", cfg.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/token/", cfg.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/token/refresh/", cfg.Auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/equipment/{id:[0-9]+}/", cfg.Equipment.Get).Methods(http.MethodGet)
	api.Handle("/equipment/",
		OptionalAuthMiddleware(cfg.Tokens)(http.HandlerFunc(cfg.Equipment.Search))).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}/reviews/", cfg.Review.ListForUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}/rating/", cfg.Review.Rating).Methods(http.MethodGet)

	// Authenticated routes.
	auth := api.NewRoute().Subrouter()
	auth.Use(AuthMiddleware(cfg.Tokens))
	auth.HandleFunc("/me/", cfg.Auth.Me).Methods(http.MethodGet)
	auth.HandleFunc("/kyc/submit/", cfg.KYC.Submit).Methods(http.MethodPost)
	auth.HandleFunc("/kyc/", cfg.KYC.Get).Methods(http.MethodGet)

	auth.HandleFunc("/bookings/", cfg.Booking.List).Methods(http.MethodGet)
	auth.HandleFunc("/bookings/{id:[0-9]+}/", cfg.Booking.Get).Methods(http.MethodGet)
	auth.HandleFunc("/bookings/{id:[0-9]+}/status/", cfg.Booking.UpdateStatus).Methods(http.MethodPatch)
	auth.HandleFunc("/bookings/{id:[0-9]+}/review/", cfg.Review.Submit).Methods(http.MethodPost)
	auth.HandleFunc("/bookings/{id:[0-9]+}/reviews/", cfg.Review.ListForBooking).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/", cfg.Notification.List).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/{id:[0-9]+}/read/", cfg.Notification.MarkAsRead).Methods(http.MethodPost)

	// Vendor-only listing management.
	vendor := auth.NewRoute().Subrouter()
	vendor.Use(RequireRole(domain.UserRoleVendor))
	vendor.HandleFunc("/equipment/", cfg.Equipment.Create).Methods(http.MethodPost)
	vendor.HandleFunc("/equipment/{id:[0-9]+}/", cfg.Equipment.Update).Methods(http.MethodPatch)
	vendor.HandleFunc("/equipment/{id:[0-9]+}/", cfg.Equipment.Delete).Methods(http.MethodDelete)

	// Customer-only booking creation; vendors accept, they do not book.
	customer := auth.NewRoute().Subrouter()
	customer.Use(RequireRole(domain.UserRoleCustomer))
	customer.HandleFunc("/bookings/", cfg.Booking.Create).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Idempotency-Key"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}
