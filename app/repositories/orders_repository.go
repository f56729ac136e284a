package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/velleta/heritage/app/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	GetOrders(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	FindByOrderNo(ctx context.Context, orderNo string) (*models.Order, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error)
	Search(ctx context.Context, keyword string) ([]models.Order, error)
	Create(ctx context.Context, tx *gorm.DB, order *models.Order) error
	Update(ctx context.Context, tx *gorm.DB, order *models.Order) error
	Delete(ctx context.Context, id string) error
	DeleteDetails(ctx context.Context, tx *gorm.DB, orderID string) error
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

func (r *gormOrderRepository) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderDetails").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("OrderDetails").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("OrderDetails").First(&order, "order_no = ?", orderNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderDetails").
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *gormOrderRepository) Search(ctx context.Context, keyword string) ([]models.Order, error) {
	var orders []models.Order
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	err := r.db.WithContext(ctx).
		Preload("OrderDetails").
		Where("LOWER(order_no) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(phone_no) LIKE ? OR LOWER(agent) LIKE ?",
			searchKeyword, searchKeyword, searchKeyword, searchKeyword).
		Order("created_at DESC").
		Find(&orders).Error

	return orders, err
}

func (r *gormOrderRepository) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *gormOrderRepository) Update(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	order.UpdatedAt = time.Now()
	return tx.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error
}

func (r *gormOrderRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Order{}).Error
	})
}

// DeleteDetails hard-removes the line items of an order before an
// update rewrites them, so edits that drop a line don't leave orphans.
func (r *gormOrderRepository) DeleteDetails(ctx context.Context, tx *gorm.DB, orderID string) error {
	return tx.WithContext(ctx).Where("order_id = ?", orderID).Delete(&models.OrderDetail{}).Error
}
