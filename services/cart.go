package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"venue-cart/events"
	"venue-cart/models"
	"venue-cart/store"
)

// Store table names.
const (
	usersTable    = "userProfile"
	venuesTable   = "venueProfile"
	productsTable = "products"
	ordersTable   = "orders"
)

// EventPublisher emits cart lifecycle events after successful mutations.
type EventPublisher interface {
	PublishCartEvent(ctx context.Context, eventType string, order *models.Order) error
}

// CartService resolves and mutates the user's single open cart. A user has at
// most one order with status "cart"; adding a product from a different venue
// abandons the old cart and starts a new one.
type CartService struct {
	store  store.Store
	events EventPublisher
	logger *zap.Logger
	tracer trace.Tracer
}

// NewCartService creates a new CartService. pub may be nil, in which case no
// events are published.
func NewCartService(st store.Store, pub EventPublisher, logger *zap.Logger) *CartService {
	return &CartService{
		store:  st,
		events: pub,
		logger: logger,
		tracer: otel.Tracer("services/cart"),
	}
}

// CartChange reports the outcome of a removal: either the updated cart, or
// Deleted when no cart remains.
type CartChange struct {
	Cart    *models.Order `json:"cart,omitempty"`
	Deleted bool          `json:"deleted"`
}

// FindOpenCart returns the user's open cart, or nil when the user has none.
// Absence is an expected state, not an error.
func (s *CartService) FindOpenCart(ctx context.Context, userID string) (*models.Order, error) {
	var orders []models.Order
	filter := bson.M{"userId": userID, "orderStatus": models.OrderStatusCart}
	if err := s.store.Query(ctx, ordersTable, filter, 1, &orders); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

// AddProduct applies the cart decision table for an incoming venue/product
// pair: create a cart when none exists, merge into a same-venue cart, or
// replace the cart when the venue differs.
func (s *CartService) AddProduct(ctx context.Context, sub, email, venueID, productID string) (*models.Order, error) {
	ctx, span := s.tracer.Start(ctx, "cart.add-product")
	defer span.End()

	user, err := s.lookupUser(ctx, sub, email)
	if err != nil {
		return nil, err
	}
	venue, err := s.lookupVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	product, err := s.lookupProduct(ctx, productID, venueID)
	if err != nil {
		return nil, err
	}

	cart, err := s.FindOpenCart(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if cart != nil && cart.VenueID == venueID {
		return s.mergeProduct(ctx, cart, product)
	}

	if cart != nil {
		// Venue changed: the old cart is abandoned before a fresh one starts.
		if err := s.deleteCart(ctx, cart); err != nil {
			return nil, err
		}
	}
	return s.createCart(ctx, user, venue, product)
}

// RemoveProduct removes one product from the cart, or wipes the whole cart
// when the given venue differs from the cart's venue. Removing from a user
// without an open cart succeeds: the cart is already empty.
func (s *CartService) RemoveProduct(ctx context.Context, sub, email, venueID, productID string) (*CartChange, error) {
	ctx, span := s.tracer.Start(ctx, "cart.remove-product")
	defer span.End()

	user, err := s.lookupUser(ctx, sub, email)
	if err != nil {
		return nil, err
	}
	cart, err := s.FindOpenCart(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return &CartChange{Deleted: true}, nil
	}

	if venueID != "" && venueID != cart.VenueID {
		if err := s.deleteCart(ctx, cart); err != nil {
			return nil, err
		}
		return &CartChange{Deleted: true}, nil
	}

	if productID == "" {
		return nil, ErrProductIDRequired
	}

	products := make([]models.Product, 0, len(cart.Products))
	for _, p := range cart.Products {
		if p.ID != productID {
			products = append(products, p)
		}
	}

	total := totalPrice(products)
	if len(products) == 0 || total == 0 {
		if err := s.deleteCart(ctx, cart); err != nil {
			return nil, err
		}
		return &CartChange{Deleted: true}, nil
	}

	updated, err := s.updateCart(ctx, cart, bson.M{
		"products":   products,
		"totalPrice": total,
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.CartUpdated, updated)
	return &CartChange{Cart: updated}, nil
}

// GetCart returns the user's cart enriched with the venue's public details,
// or nil when the user has no open cart.
func (s *CartService) GetCart(ctx context.Context, sub, email string) (*models.CartDetail, error) {
	ctx, span := s.tracer.Start(ctx, "cart.get")
	defer span.End()

	user, err := s.lookupUser(ctx, sub, email)
	if err != nil {
		return nil, err
	}
	cart, err := s.FindOpenCart(ctx, user.ID)
	if err != nil || cart == nil {
		return nil, err
	}

	venue, err := s.lookupVenue(ctx, cart.VenueID)
	if err != nil {
		return nil, err
	}
	return &models.CartDetail{Order: *cart, Venue: venue.Public()}, nil
}

// GetOrder returns a single order owned by the caller.
func (s *CartService) GetOrder(ctx context.Context, sub, email, orderID string) (*models.Order, error) {
	ctx, span := s.tracer.Start(ctx, "order.detail")
	defer span.End()

	user, err := s.lookupUser(ctx, sub, email)
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = s.store.GetItem(ctx, ordersTable, bson.M{"id": orderID, "userId": user.ID}, &order)
	if errors.Is(err, store.ErrItemNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *CartService) mergeProduct(ctx context.Context, cart *models.Order, product *models.Product) (*models.Order, error) {
	for _, p := range cart.Products {
		if p.ID == product.ID {
			// Duplicate add is a no-op merge; the total is already consistent.
			return cart, nil
		}
	}

	products := append(append([]models.Product{}, cart.Products...), *product)
	total := totalPrice(products)
	if total == 0 {
		return nil, ErrZeroTotal
	}

	updated, err := s.updateCart(ctx, cart, bson.M{
		"products":   products,
		"totalPrice": total,
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.CartUpdated, updated)
	return updated, nil
}

func (s *CartService) createCart(ctx context.Context, user *models.User, venue *models.Venue, product *models.Product) (*models.Order, error) {
	if product.Price == 0 {
		// A cart must never persist with a zero total.
		return nil, ErrZeroTotal
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		UserEmail:   user.Email,
		VenueID:     venue.ID,
		VenueEmail:  venue.VenueEmail,
		Products:    []models.Product{*product},
		TotalPrice:  product.Price,
		OrderStatus: models.OrderStatusCart,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.PutItem(ctx, ordersTable, order); err != nil {
		return nil, err
	}
	s.publish(ctx, events.CartCreated, &order)
	return &order, nil
}

// updateCart writes the given fields conditioned on the cart's current
// version. A version mismatch means a concurrent writer won; the caller gets
// ErrCartConflict instead of silently losing the other write.
func (s *CartService) updateCart(ctx context.Context, cart *models.Order, set bson.M) (*models.Order, error) {
	key := bson.M{"id": cart.ID, "userId": cart.UserID, "version": cart.Version}
	set["updatedAt"] = time.Now().UTC()
	set["version"] = cart.Version + 1

	var updated models.Order
	err := s.store.UpdateItem(ctx, ordersTable, key, set, &updated)
	if errors.Is(err, store.ErrConditionFailed) {
		return nil, ErrCartConflict
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *CartService) deleteCart(ctx context.Context, cart *models.Order) error {
	key := bson.M{"id": cart.ID, "userId": cart.UserID, "version": cart.Version}
	err := s.store.DeleteItem(ctx, ordersTable, key)
	if errors.Is(err, store.ErrConditionFailed) {
		return ErrCartConflict
	}
	if err != nil {
		return err
	}
	s.publish(ctx, events.CartDeleted, cart)
	return nil
}

func (s *CartService) lookupUser(ctx context.Context, sub, email string) (*models.User, error) {
	var user models.User
	err := s.store.GetItem(ctx, usersTable, bson.M{"cognitoId": sub, "email": email}, &user)
	if errors.Is(err, store.ErrItemNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *CartService) lookupVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	var venues []models.Venue
	if err := s.store.Query(ctx, venuesTable, bson.M{"id": venueID}, 1, &venues); err != nil {
		return nil, err
	}
	if len(venues) == 0 {
		return nil, ErrVenueNotFound
	}
	return &venues[0], nil
}

func (s *CartService) lookupProduct(ctx context.Context, productID, venueID string) (*models.Product, error) {
	var product models.Product
	err := s.store.GetItem(ctx, productsTable, bson.M{"id": productID, "venueId": venueID}, &product)
	if errors.Is(err, store.ErrItemNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}
	return &product, nil
}

func (s *CartService) publish(ctx context.Context, eventType string, order *models.Order) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCartEvent(ctx, eventType, order); err != nil {
		s.logger.Warn("publish cart event",
			zap.String("type", eventType),
			zap.String("orderId", order.ID),
			zap.Error(err),
		)
	}
}

func totalPrice(products []models.Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Price
	}
	return total
}
