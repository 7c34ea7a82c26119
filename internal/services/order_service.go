package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"stonevault-backend/internal/dto"
	"stonevault-backend/internal/models"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrIllegalTransition  = errors.New("illegal order status transition")
	ErrNegativeAmount     = errors.New("order amounts must not be negative")
	ErrInconsistentTotals = errors.New("line total does not match quantity times unit price")
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Create converts a checkout snapshot into an immutable order. Unit
// prices and totals are stored exactly as submitted — the caller is
// trusted to have computed them from the cart. The order row, its line
// items, and the cart clear share one transaction.
func (s *OrderService) Create(userID uint, req *dto.CreateOrderRequest) (*models.Order, error) {
	if req.Subtotal.IsNegative() || req.ShippingFee.IsNegative() || req.Total.IsNegative() {
		return nil, ErrNegativeAmount
	}
	for _, item := range req.Items {
		if item.UnitPrice.IsNegative() || item.LineTotal.IsNegative() {
			return nil, ErrNegativeAmount
		}
		if !itemTotalsConsistent(item) {
			return nil, ErrInconsistentTotals
		}
	}

	order := models.Order{
		UserID:      userID,
		Status:      models.OrderPending,
		Subtotal:    req.Subtotal,
		ShippingFee: req.ShippingFee,
		Total:       req.Total,
		PaymentRef:  req.PaymentRef,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		items := make([]models.OrderItem, len(req.Items))
		for i, in := range req.Items {
			items[i] = models.OrderItem{
				OrderID:   order.ID,
				StoneID:   in.StoneID,
				Quantity:  in.Quantity,
				UnitPrice: in.UnitPrice,
				LineTotal: in.LineTotal,
			}
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// ListByUser returns the user's orders newest first, without line items.
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetByID returns one order with its line items and each line's stone.
// With a non-nil userID, an ownership mismatch reads as not-found —
// enforced in the query, not by post-hoc filtering.
func (s *OrderService) GetByID(id uint, userID *uint) (*models.Order, error) {
	q := s.db.Preload("Items").Preload("Items.Stone")
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}

	var order models.Order
	if err := q.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}

// ListAll returns every order with purchaser identity, newest first
// (admin only).
func (s *OrderService) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("User").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list all orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus advances an order through the status state machine
// (admin only). Illegal transitions are rejected.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}

	if !models.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, status)
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return &order, nil
}

// itemTotalsConsistent verifies qty x unit price equals the submitted
// line total. Prices themselves stay client-trusted; the server never
// recomputes them from the catalog.
func itemTotalsConsistent(in dto.OrderItemInput) bool {
	return in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))).Equal(in.LineTotal)
}
