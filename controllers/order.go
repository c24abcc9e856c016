package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"venue-cart/middleware"
	"venue-cart/utils"
)

// OrderController handles order read requests
type OrderController struct {
	Service CartAPI
	Logger  *zap.Logger
}

// NewOrderController creates a new OrderController
func NewOrderController(service CartAPI, logger *zap.Logger) *OrderController {
	return &OrderController{
		Service: service,
		Logger:  logger,
	}
}

// OrderDetail returns a single order owned by the caller
func (oc *OrderController) OrderDetail(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CallerClaims(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	params := mux.Vars(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	order, err := oc.Service.GetOrder(ctx, claims.Subject, claims.Email, params["id"])
	if err != nil {
		writeDomainError(w, oc.Logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, "success", order)
}
