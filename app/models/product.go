package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is one catalog entry: a garment design identified by its
// design number. The design number is business-visible and immutable
// once created; the ID is the system key.
type Product struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	DesignNo       string          `gorm:"size:100;not null;uniqueIndex" json:"designNo"`
	TypeOfGarment  string          `gorm:"size:255;not null" json:"typeOfGarment"`
	ColorOfGarment string          `gorm:"size:255;not null" json:"colorOfGarment"`
	BlouseColor    string          `gorm:"size:255" json:"blouseColor"`
	DupattaColor   string          `gorm:"size:255" json:"dupattaColor"`
	Rate           decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"rate"`
	FixCode        int             `gorm:"not null;default:0" json:"fixCode"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
