package seeders

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/velleta/heritage/app/db/fakers"
	"github.com/velleta/heritage/app/models"
	"github.com/velleta/heritage/app/utils/calc"
)

const seedProductCount = 30

// DBSeed fills an empty database with a demo account, a catalog and a
// couple of orders built from that catalog. Rows that already exist
// are left alone, so seeding is safe to run twice.
func DBSeed(db *gorm.DB) error {
	admin := fakers.UserFaker("admin", "velleta-admin")
	if err := db.FirstOrCreate(admin, "user_name = ?", admin.UserName).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	products := make([]models.Product, 0, seedProductCount)
	for i := 1; i <= seedProductCount; i++ {
		product := fakers.ProductFaker(i)
		if err := db.FirstOrCreate(product, "design_no = ?", product.DesignNo).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", product.DesignNo, err)
		}
		products = append(products, *product)
	}

	for i := 0; i < 3; i++ {
		order := seedOrder(products)
		if err := db.FirstOrCreate(order, "order_no = ?", order.OrderNo).Error; err != nil {
			return fmt.Errorf("failed to seed order %s: %w", order.OrderNo, err)
		}
	}

	return nil
}

var seedCustomers = []struct {
	name  string
	agent string
}{
	{"Priya Sharma", "R Mehta"},
	{"Anjali Desai", "S Kapoor"},
	{"Kavita Rao", "R Mehta"},
}

func seedOrder(products []models.Product) *models.Order {
	customer := seedCustomers[rand.Intn(len(seedCustomers))]

	lineCount := rand.Intn(3) + 1
	details := make([]models.OrderDetail, 0, lineCount)
	total := decimal.Zero
	for i := 0; i < lineCount; i++ {
		product := products[rand.Intn(len(products))]
		detail := models.OrderDetail{
			DesignNo:  product.DesignNo,
			UnitPrice: product.Rate,
		}
		detail = calc.SetQuantity(detail, rand.Intn(3)+1)
		details = append(details, detail)
		total = total.Add(detail.TotalPrice)
	}

	return &models.Order{
		OrderNo:      models.NewOrderNo(),
		Date:         time.Now().AddDate(0, 0, -rand.Intn(30)),
		CustomerName: customer.name,
		Agent:        customer.agent,
		PaymentTerms: "30 days",
		OrderDetails: details,
		TotalAmount:  total,
	}
}
