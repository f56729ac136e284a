package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/velleta/heritage/app/configs"
	"github.com/velleta/heritage/app/models"
	"github.com/velleta/heritage/app/repositories"
	"github.com/velleta/heritage/app/utils/calc"
)

var (
	ErrNoOrderDetails    = errors.New("an order needs at least one line item")
	ErrTooManyDetails    = errors.New("too many line items")
	ErrDetailOutOfBounds = errors.New("line item field out of bounds")
	ErrOrderNotFound     = errors.New("order not found")
	ErrDuplicateOrderNo  = errors.New("order number already exists")
)

// OrderService owns the server side of order writes. Whatever totals a
// client sends along are discarded: every line total and the order
// total are re-derived here before anything is persisted.
type OrderService struct {
	db        *gorm.DB
	orderRepo repositories.OrderRepository
	limits    configs.OrderLimits
}

func NewOrderService(db *gorm.DB, orderRepo repositories.OrderRepository, limits configs.OrderLimits) *OrderService {
	return &OrderService{db: db, orderRepo: orderRepo, limits: limits}
}

func (s *OrderService) checkDetails(details []models.OrderDetail) error {
	if len(details) == 0 {
		return ErrNoOrderDetails
	}
	if len(details) > s.limits.MaxItems {
		return fmt.Errorf("%w: %d given, at most %d allowed", ErrTooManyDetails, len(details), s.limits.MaxItems)
	}

	maxUnitPrice := decimal.NewFromInt(s.limits.MaxUnitPrice)
	for i, detail := range details {
		switch {
		case detail.DesignNo == "":
			return fmt.Errorf("%w: line %d has no design number", ErrDetailOutOfBounds, i)
		case detail.Quantity < 1 || detail.Quantity > s.limits.MaxQuantity:
			return fmt.Errorf("%w: line %d quantity %d", ErrDetailOutOfBounds, i, detail.Quantity)
		case detail.UnitPrice.IsNegative() || detail.UnitPrice.GreaterThan(maxUnitPrice):
			return fmt.Errorf("%w: line %d unit price %s", ErrDetailOutOfBounds, i, detail.UnitPrice)
		}
	}
	return nil
}

// deriveTotals re-establishes the line and order totals. The submitted
// totalPrice/totalAmount values are never trusted.
func deriveTotals(order *models.Order) {
	for i := range order.OrderDetails {
		order.OrderDetails[i] = calc.SetQuantity(order.OrderDetails[i], order.OrderDetails[i].Quantity)
	}
	order.TotalAmount = calc.OrderTotal(order.OrderDetails)
}

// CreateOrder persists a new order and its line items atomically and
// returns the stored record with its assigned ids.
func (s *OrderService) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	if err := s.checkDetails(order.OrderDetails); err != nil {
		return nil, err
	}

	order.ID = ""
	if order.OrderNo == "" {
		order.OrderNo = models.NewOrderNo()
	} else {
		existing, err := s.orderRepo.FindByOrderNo(ctx, order.OrderNo)
		if err != nil {
			return nil, fmt.Errorf("failed to check order number: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOrderNo, order.OrderNo)
		}
	}

	deriveTotals(&order)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.Create(ctx, tx, &order)
	})
	if err != nil {
		log.Printf("CreateOrder: failed to persist order %s: %v", order.OrderNo, err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log.WithFields(log.Fields{"order_no": order.OrderNo, "items": len(order.OrderDetails), "total": order.TotalAmount.String()}).Info("Order created")
	return &order, nil
}

// UpdateOrder replaces an existing order wholesale: scalars, line items
// and derived totals. Line items are rewritten so dropped lines do not
// linger.
func (s *OrderService) UpdateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	if err := s.checkDetails(order.OrderDetails); err != nil {
		return nil, err
	}

	existing, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %s: %w", order.ID, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, order.ID)
	}

	// The order number is business identity; an update never changes it.
	order.OrderNo = existing.OrderNo
	order.CreatedAt = existing.CreatedAt
	deriveTotals(&order)

	for i := range order.OrderDetails {
		order.OrderDetails[i].ID = ""
		order.OrderDetails[i].OrderID = order.ID
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.DeleteDetails(ctx, tx, order.ID); err != nil {
			return err
		}
		return s.orderRepo.Update(ctx, tx, &order)
	})
	if err != nil {
		log.Printf("UpdateOrder: failed to persist order %s: %v", order.ID, err)
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	log.WithFields(log.Fields{"order_no": order.OrderNo, "items": len(order.OrderDetails), "total": order.TotalAmount.String()}).Info("Order updated")
	return &order, nil
}

// DeleteOrder removes the order and its line items.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	existing, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load order %s: %w", id, err)
	}
	if existing == nil {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	return s.orderRepo.Delete(ctx, id)
}
