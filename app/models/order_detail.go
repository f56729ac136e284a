package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDetail is one line item of an order. TotalPrice must equal
// Quantity x UnitPrice at all times; the calculator re-establishes the
// product synchronously after every edit.
type OrderDetail struct {
	ID         string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"-"`
	OrderID    string          `gorm:"size:36;not null;index" json:"-"`
	DesignNo   string          `gorm:"size:100;not null" json:"designNo"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"unitPrice"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"totalPrice"`
	CreatedAt  time.Time       `json:"-"`
	UpdatedAt  time.Time       `json:"-"`
}

func (d *OrderDetail) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return
}
