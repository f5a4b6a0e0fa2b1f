package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"cakeshop-api/internal/handlers"
	"cakeshop-api/internal/middleware"
	"cakeshop-api/internal/models"
	"cakeshop-api/internal/services"
	"cakeshop-api/internal/store"
)

// Deps carries everything the route table needs. main wires the mongodb
// stores here; tests wire the memory ones.
type Deps struct {
	Products    store.ProductStore
	Orders      store.OrderStore
	Settings    store.SettingsStore
	AuthService *services.AuthService

	AllowedOrigins []string
}

func SetupRouter(deps Deps, logger zerolog.Logger) *mux.Router {
	authHandler := handlers.NewAuthHandler(deps.AuthService, logger)
	productHandler := handlers.NewProductHandler(deps.Products, logger)
	orderHandler := handlers.NewOrderHandler(deps.Orders, logger)
	settingsHandler := handlers.NewSettingsHandler(deps.Settings, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(50), 100)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(deps.AllowedOrigins))
	r.Use(rateLimiter.Middleware())

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequestValidation())

	// Open surface: login, catalog reads, checkout, settings read.
	api.HandleFunc("/admin/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Get).Methods("GET")
	api.HandleFunc("/orders", orderHandler.Create).Methods("POST")
	api.HandleFunc("/settings", settingsHandler.Get).Methods("GET")

	// Admin surface: everything below requires a valid bearer token.
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Authentication(deps.AuthService, logger))
	admin.Use(middleware.RequireRole(string(models.RoleAdmin)))
	admin.HandleFunc("/products", productHandler.Create).Methods("POST")
	admin.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	admin.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/orders", orderHandler.List).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", orderHandler.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/orders/{id}", orderHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/settings", settingsHandler.Update).Methods("PUT")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
