package draft

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/velleta/heritage/app/helpers"
)

var validate = helpers.NewValidator()

// ValidationError carries per-field messages for the caller to render
// next to the offending inputs. While it is non-nil no network call is
// made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// orderForm mirrors the constraints of the order entry form.
type orderForm struct {
	CustomerName string `validate:"required,min=2,max=100,customername"`
	Address      string `validate:"required,min=10,max=500"`
	PhoneNo      string `validate:"required,min=10,max=15,phoneno"`
	Agent        string `validate:"required,min=2,max=100"`
	Transport    string `validate:"required,min=2,max=100"`
	PaymentTerms string `validate:"required,min=2,max=200"`
	Remark       string `validate:"max=1000"`
}

// Validate checks the scalar fields and every line item against the
// configured limits. Out-of-bound values are rejected here, never
// clamped by the calculator.
func (d *Draft) Validate() error {
	fields := make(map[string]string)

	form := orderForm{
		CustomerName: d.CustomerName,
		Address:      d.Address,
		PhoneNo:      d.PhoneNo,
		Agent:        d.Agent,
		Transport:    d.Transport,
		PaymentTerms: d.PaymentTerms,
		Remark:       d.Remark,
	}
	if err := validate.Struct(&form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for field, message := range helpers.FormatValidationErrors(verrs) {
				fields[field] = message
			}
		}
	}

	if d.Date.IsZero() {
		fields["date"] = "Date is required."
	}

	if len(d.details) == 0 {
		fields["orderDetails"] = "At least one line item is required."
	}
	if len(d.details) > d.limits.MaxItems {
		fields["orderDetails"] = fmt.Sprintf("An order can hold at most %d line items.", d.limits.MaxItems)
	}

	maxUnitPrice := decimal.NewFromInt(d.limits.MaxUnitPrice)
	// Each field is checked on its own so a row with several bad
	// values gets every one of them marked, not just the first.
	for i, detail := range d.details {
		key := fmt.Sprintf("orderDetails[%d]", i)
		if detail.DesignNo == "" {
			fields[key+".designNo"] = "Design number is required."
		}
		if detail.Quantity < 1 {
			fields[key+".quantity"] = "Quantity must be at least 1."
		} else if detail.Quantity > d.limits.MaxQuantity {
			fields[key+".quantity"] = fmt.Sprintf("Quantity must be at most %d.", d.limits.MaxQuantity)
		}
		if detail.UnitPrice.IsNegative() {
			fields[key+".unitPrice"] = "Unit price must be a positive number."
		} else if detail.UnitPrice.GreaterThan(maxUnitPrice) {
			fields[key+".unitPrice"] = fmt.Sprintf("Unit price must be at most %d.", d.limits.MaxUnitPrice)
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
