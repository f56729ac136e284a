package calc

import (
	"github.com/shopspring/decimal"

	"github.com/velleta/heritage/app/models"
)

// Pure line-item arithmetic. Nothing in this package touches a store or
// returns an error; bounds checking belongs to the validation layer.

// SetQuantity assigns a new quantity and re-derives the line total.
func SetQuantity(detail models.OrderDetail, quantity int) models.OrderDetail {
	detail.Quantity = quantity
	detail.TotalPrice = lineTotal(quantity, detail.UnitPrice)
	return detail
}

// SetUnitPrice assigns a new unit price and re-derives the line total.
// The unit price stays independently editable even when it was auto
// filled from a catalog product.
func SetUnitPrice(detail models.OrderDetail, unitPrice decimal.Decimal) models.OrderDetail {
	detail.UnitPrice = unitPrice
	detail.TotalPrice = lineTotal(detail.Quantity, unitPrice)
	return detail
}

// SetDesignNo stores the product reference and, when the design number
// matches a product in the given catalog snapshot, auto-fills the unit
// price from the product rate. An unmatched design number keeps the
// prior pricing untouched: a product deleted after being referenced
// must not zero out a line that was already priced.
func SetDesignNo(detail models.OrderDetail, designNo string, catalog []models.Product) models.OrderDetail {
	detail.DesignNo = designNo
	for _, product := range catalog {
		if product.DesignNo == designNo {
			detail.UnitPrice = product.Rate
			detail.TotalPrice = lineTotal(detail.Quantity, product.Rate)
			break
		}
	}
	return detail
}

// OrderTotal sums the line totals left to right. An empty detail list
// totals to zero.
func OrderTotal(details []models.OrderDetail) decimal.Decimal {
	total := decimal.Zero
	for _, detail := range details {
		total = total.Add(detail.TotalPrice)
	}
	return total
}

func lineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
