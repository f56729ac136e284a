package migrations

import (
	"github.com/velleta/heritage/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderDetail{})
}
