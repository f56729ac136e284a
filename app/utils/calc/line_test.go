package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/velleta/heritage/app/models"
)

func newCatalog() []models.Product {
	return []models.Product{
		{ID: "1", DesignNo: "DES001", TypeOfGarment: "Lehenga", Rate: decimal.NewFromInt(25000)},
		{ID: "2", DesignNo: "DES002", TypeOfGarment: "Saree", Rate: decimal.NewFromInt(1000)},
	}
}

func TestSetQuantityRecomputesLineTotal(t *testing.T) {
	detail := models.OrderDetail{DesignNo: "DES001", Quantity: 1, UnitPrice: decimal.NewFromInt(25000), TotalPrice: decimal.NewFromInt(25000)}

	detail = SetQuantity(detail, 3)

	assert.Equal(t, 3, detail.Quantity)
	assert.True(t, detail.TotalPrice.Equal(decimal.NewFromInt(75000)), "got %s", detail.TotalPrice)
	assert.True(t, detail.TotalPrice.Equal(detail.UnitPrice.Mul(decimal.NewFromInt(int64(detail.Quantity)))))
}

func TestSetUnitPriceRecomputesLineTotal(t *testing.T) {
	detail := models.OrderDetail{DesignNo: "DES001", Quantity: 4, UnitPrice: decimal.NewFromInt(25000), TotalPrice: decimal.NewFromInt(100000)}

	detail = SetUnitPrice(detail, decimal.NewFromFloat(1250.50))

	assert.True(t, detail.UnitPrice.Equal(decimal.NewFromFloat(1250.50)))
	assert.True(t, detail.TotalPrice.Equal(decimal.NewFromInt(5002)), "got %s", detail.TotalPrice)
}

func TestSetDesignNoAutoFillsUnitPrice(t *testing.T) {
	detail := models.OrderDetail{Quantity: 2}

	detail = SetDesignNo(detail, "DES001", newCatalog())

	assert.Equal(t, "DES001", detail.DesignNo)
	assert.True(t, detail.UnitPrice.Equal(decimal.NewFromInt(25000)))
	assert.True(t, detail.TotalPrice.Equal(decimal.NewFromInt(50000)))
}

func TestSetDesignNoUnknownDesignKeepsPriorPricing(t *testing.T) {
	detail := models.OrderDetail{DesignNo: "DES001", Quantity: 2, UnitPrice: decimal.NewFromInt(25000), TotalPrice: decimal.NewFromInt(50000)}

	detail = SetDesignNo(detail, "GONE999", newCatalog())

	assert.Equal(t, "GONE999", detail.DesignNo)
	assert.True(t, detail.UnitPrice.Equal(decimal.NewFromInt(25000)))
	assert.True(t, detail.TotalPrice.Equal(decimal.NewFromInt(50000)))
}

func TestOrderTotalSumsInSequence(t *testing.T) {
	details := []models.OrderDetail{
		{Quantity: 1, UnitPrice: decimal.NewFromInt(25000), TotalPrice: decimal.NewFromInt(25000)},
		{Quantity: 2, UnitPrice: decimal.NewFromInt(1000), TotalPrice: decimal.NewFromInt(2000)},
	}

	assert.True(t, OrderTotal(details).Equal(decimal.NewFromInt(27000)))
}

func TestOrderTotalEmptyIsZero(t *testing.T) {
	assert.True(t, OrderTotal(nil).Equal(decimal.Zero))
}
