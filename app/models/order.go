package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a customer order with its line items. TotalAmount is always
// derived from the details and never taken from user input.
type Order struct {
	ID           string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderNo      string          `gorm:"type:varchar(255);unique;not null" json:"orderNo"`
	Date         time.Time       `gorm:"not null" json:"date"`
	CustomerName string          `gorm:"size:255;not null" json:"customerName"`
	Address      string          `gorm:"type:text" json:"address"`
	PhoneNo      string          `gorm:"size:50" json:"phoneNo"`
	Agent        string          `gorm:"size:255" json:"agent"`
	Transport    string          `gorm:"size:255" json:"transport"`
	PaymentTerms string          `gorm:"size:255" json:"paymentTerms"`
	Remark       string          `gorm:"type:text" json:"remark"`
	OrderDetails []OrderDetail   `json:"orderDetails"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"totalAmount"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.OrderNo == "" {
		o.OrderNo = NewOrderNo()
	}
	return
}

// NewOrderNo builds the business-visible order number used when the
// caller did not supply one.
func NewOrderNo() string {
	return fmt.Sprintf("ORD%d", time.Now().UnixMilli())
}
