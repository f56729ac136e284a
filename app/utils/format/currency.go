package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var inr = accounting.Accounting{Symbol: "Rs. ", Precision: 2, Thousand: ",", Decimal: "."}

// INR renders an amount the way it appears on invoices and order
// screens. Rounding to 2 decimals happens here only; stored amounts
// keep their full precision.
func INR(amount decimal.Decimal) string {
	return inr.FormatMoneyDecimal(amount)
}
