// routes/routes.go
package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"venue-cart/controllers"
	"venue-cart/utils"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, cartController *controllers.CartController, orderController *controllers.OrderController, auth func(http.Handler) http.Handler) {
	// health check stays outside authentication
	router.HandleFunc("/health-check", healthCheck).Methods("GET")

	protected := router.PathPrefix("/").Subrouter()
	protected.Use(auth)

	// Cart routes
	protected.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.RemoveFromCart).Methods("DELETE")

	// Order routes
	protected.HandleFunc("/{id}", orderController.OrderDetail).Methods("GET")
}

// healthCheck echoes the request headers back to the caller
func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, "success", map[string]any{"headers": r.Header})
}
