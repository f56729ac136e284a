package routes

import (
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"gorm.io/gorm"

	"github.com/velleta/heritage/app/configs"
	"github.com/velleta/heritage/app/handlers"
	"github.com/velleta/heritage/app/helpers"
	"github.com/velleta/heritage/app/middlewares"
	"github.com/velleta/heritage/app/repositories"
	"github.com/velleta/heritage/app/services"
	"github.com/velleta/heritage/app/utils/sessions"
)

// NewRouter wires the full API surface: catalog, orders, auth, export
// and health. Everything under /api except auth and health requires a
// bearer token.
func NewRouter(db *gorm.DB, env configs.ENV, session sessions.SessionStore) *mux.Router {
	renderer := render.New()
	validate := helpers.NewValidator()

	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)

	orderService := services.NewOrderService(db, orderRepo, env.Limits)
	tokenService := services.NewTokenService(env.JWTSecret, env.TokenTTL)
	pdfService := services.NewPDFService("Velleta Heritage")

	productHandler := handlers.NewProductHandler(productRepo, renderer, validate)
	orderHandler := handlers.NewOrderHandler(orderRepo, orderService, renderer, validate)
	authHandler := handlers.NewAuthHandler(userRepo, tokenService, session, renderer, validate)
	exportHandler := handlers.NewExportHandler(orderRepo, pdfService, renderer)
	healthHandler := handlers.NewHealthHandler(db, renderer)

	router := mux.NewRouter()
	router.Use(middlewares.LoggingMiddleware)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", healthHandler.Health).Methods("GET")
	api.HandleFunc("/users/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/users/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/users/logout", authHandler.Logout).Methods("POST")

	protected := api.NewRoute().Subrouter()
	protected.Use(middlewares.AuthMiddleware(tokenService, session))

	protected.HandleFunc("/products", productHandler.Products).Methods("GET")
	protected.HandleFunc("/products", productHandler.CreateProduct).Methods("POST")
	protected.HandleFunc("/products/search", productHandler.SearchProducts).Methods("GET")
	protected.HandleFunc("/products/design/{designNo}", productHandler.ProductByDesignNo).Methods("GET")
	protected.HandleFunc("/products/{id}", productHandler.ProductDetail).Methods("GET")
	protected.HandleFunc("/products/{id}", productHandler.UpdateProduct).Methods("PUT")
	protected.HandleFunc("/products/{id}", productHandler.DeleteProduct).Methods("DELETE")

	protected.HandleFunc("/orders", orderHandler.Orders).Methods("GET")
	protected.HandleFunc("/orders", orderHandler.CreateOrder).Methods("POST")
	protected.HandleFunc("/orders/search", orderHandler.SearchOrders).Methods("GET")
	protected.HandleFunc("/orders/date-range", orderHandler.OrdersByDateRange).Methods("GET")
	protected.HandleFunc("/orders/order/{orderNo}", orderHandler.OrderByOrderNo).Methods("GET")
	protected.HandleFunc("/orders/{id}", orderHandler.OrderDetail).Methods("GET")
	protected.HandleFunc("/orders/{id}", orderHandler.UpdateOrder).Methods("PUT")
	protected.HandleFunc("/orders/{id}", orderHandler.DeleteOrder).Methods("DELETE")
	protected.HandleFunc("/export/invoice/{id}/pdf", exportHandler.OrderPDF).Methods("GET")

	return router
}
