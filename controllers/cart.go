package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"venue-cart/middleware"
	"venue-cart/models"
	"venue-cart/services"
	"venue-cart/utils"
)

// CartAPI is the slice of the cart service the HTTP layer depends on.
type CartAPI interface {
	AddProduct(ctx context.Context, sub, email, venueID, productID string) (*models.Order, error)
	RemoveProduct(ctx context.Context, sub, email, venueID, productID string) (*services.CartChange, error)
	GetCart(ctx context.Context, sub, email string) (*models.CartDetail, error)
	GetOrder(ctx context.Context, sub, email, orderID string) (*models.Order, error)
}

// CartController handles cart-related requests
type CartController struct {
	Service CartAPI
	Logger  *zap.Logger
}

// NewCartController creates a new CartController
func NewCartController(service CartAPI, logger *zap.Logger) *CartController {
	return &CartController{
		Service: service,
		Logger:  logger,
	}
}

type cartStoreRequest struct {
	VenueID   string `json:"venueId" validate:"required,uuid4"`
	ProductID string `json:"productId" validate:"required,uuid4"`
}

type cartDeleteRequest struct {
	VenueID   string `json:"venueId" validate:"omitempty,uuid4"`
	ProductID string `json:"productId" validate:"omitempty,uuid4"`
}

// AddToCart adds a product to the user's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CallerClaims(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req cartStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ValidationFailed(w, errs)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.Service.AddProduct(ctx, claims.Subject, claims.Email, req.VenueID, req.ProductID)
	if err != nil {
		writeDomainError(w, cc.Logger, err)
		return
	}

	cc.Logger.Info("product added to cart",
		zap.String("orderId", cart.ID),
		zap.String("venueId", cart.VenueID),
		zap.Float64("totalPrice", cart.TotalPrice),
	)
	utils.JSON(w, http.StatusOK, "success", cart)
}

// GetCart retrieves the user's cart with the venue's public details attached
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CallerClaims(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.Service.GetCart(ctx, claims.Subject, claims.Email)
	if err != nil {
		writeDomainError(w, cc.Logger, err)
		return
	}
	if cart == nil {
		utils.JSON(w, http.StatusOK, "Cart is Empty", nil)
		return
	}
	utils.JSON(w, http.StatusOK, "success", cart)
}

// RemoveFromCart removes a product from the user's cart, or the whole cart
// when the given venue differs from the cart's venue
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.CallerClaims(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// both fields are optional, so an empty body is allowed
	var req cartDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		utils.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		utils.ValidationFailed(w, errs)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	change, err := cc.Service.RemoveProduct(ctx, claims.Subject, claims.Email, req.VenueID, req.ProductID)
	if err != nil {
		writeDomainError(w, cc.Logger, err)
		return
	}
	if change.Deleted {
		utils.JSON(w, http.StatusOK, "Cart Deleted", nil)
		return
	}
	utils.JSON(w, http.StatusOK, "success", change.Cart)
}

// writeDomainError maps engine errors onto the response envelope. Domain rule
// violations are the caller's fault; everything else is a store failure and
// stays opaque.
func writeDomainError(w http.ResponseWriter, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrCartConflict):
		utils.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrVenueNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrProductInactive),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrZeroTotal),
		errors.Is(err, services.ErrProductIDRequired):
		utils.Error(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("cart request failed", zap.Error(err))
		utils.Error(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
