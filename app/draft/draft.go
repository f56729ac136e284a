package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velleta/heritage/app/configs"
	"github.com/velleta/heritage/app/models"
	"github.com/velleta/heritage/app/utils/calc"
)

// State of the order being authored.
type State int

const (
	// StateEmpty is the initial create-mode state: one blank line item,
	// today's date, empty customer fields.
	StateEmpty State = iota
	// StateSeeded means the draft was populated from an existing order
	// and nothing has been touched yet.
	StateSeeded
	StateEditing
	StateSubmitting
	StateDiscarded
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// ErrOrderNotFound is returned when an edit workflow targets an id with
// no match in the loaded collection. Callers must surface this as its
// own condition; it is neither "still loading" nor a create fallback.
var ErrOrderNotFound = errors.New("order not found")

// ErrNotEditing is returned when Submit is called while a submit is
// already in flight or the draft was discarded.
var ErrNotEditing = errors.New("draft is not editable")

// Store is the slice of the order store the reconciler needs on submit.
type Store interface {
	Create(ctx context.Context, order models.Order) (*models.Order, error)
	Update(ctx context.Context, order models.Order) (*models.Order, error)
}

// Draft owns the mutable working copy of an order being created or
// edited, independent of the remote collection. Every line-item
// mutation goes through the calculator so the line and order totals
// hold at all times.
type Draft struct {
	mode   Mode
	state  State
	limits configs.OrderLimits

	orderID string
	orderNo string

	Date         time.Time
	CustomerName string
	Address      string
	PhoneNo      string
	Agent        string
	Transport    string
	PaymentTerms string
	Remark       string

	details []models.OrderDetail
}

func blankDetail() models.OrderDetail {
	return models.OrderDetail{DesignNo: "", Quantity: 1, UnitPrice: decimal.Zero, TotalPrice: decimal.Zero}
}

// New starts a create-mode draft.
func New(limits configs.OrderLimits) *Draft {
	return &Draft{
		mode:    ModeCreate,
		state:   StateEmpty,
		limits:  limits,
		Date:    time.Now().Truncate(24 * time.Hour),
		details: []models.OrderDetail{blankDetail()},
	}
}

// NewFromOrder starts an edit-mode draft seeded from an existing
// record. Details are copied by value: the parent order is patched on
// submit, never mutated in place.
func NewFromOrder(order models.Order, limits configs.OrderLimits) *Draft {
	details := make([]models.OrderDetail, len(order.OrderDetails))
	copy(details, order.OrderDetails)
	if len(details) == 0 {
		details = []models.OrderDetail{blankDetail()}
	}

	return &Draft{
		mode:         ModeEdit,
		state:        StateSeeded,
		limits:       limits,
		orderID:      order.ID,
		orderNo:      order.OrderNo,
		Date:         order.Date,
		CustomerName: order.CustomerName,
		Address:      order.Address,
		PhoneNo:      order.PhoneNo,
		Agent:        order.Agent,
		Transport:    order.Transport,
		PaymentTerms: order.PaymentTerms,
		Remark:       order.Remark,
		details:      details,
	}
}

// SeedFrom looks the target order up in an already loaded collection.
func SeedFrom(orders []models.Order, orderID string, limits configs.OrderLimits) (*Draft, error) {
	for _, order := range orders {
		if order.ID == orderID {
			return NewFromOrder(order, limits), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
}

func (d *Draft) State() State { return d.state }
func (d *Draft) Mode() Mode   { return d.mode }

// OrderNo is only set in edit mode; creates get theirs from the server.
func (d *Draft) OrderNo() string { return d.orderNo }

func (d *Draft) markEditing() {
	if d.state == StateEmpty || d.state == StateSeeded || d.state == StateEditing {
		d.state = StateEditing
	}
}

// Details returns the current line items as a defensive copy.
func (d *Draft) Details() []models.OrderDetail {
	details := make([]models.OrderDetail, len(d.details))
	copy(details, d.details)
	return details
}

func (d *Draft) DetailCount() int { return len(d.details) }

// TotalAmount is the running derived total. Read-only by design; there
// is no setter.
func (d *Draft) TotalAmount() decimal.Decimal {
	return calc.OrderTotal(d.details)
}

func (d *Draft) checkIndex(index int) error {
	if index < 0 || index >= len(d.details) {
		return fmt.Errorf("line item index %d out of range", index)
	}
	return nil
}

func (d *Draft) UpdateQuantity(index, quantity int) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.details[index] = calc.SetQuantity(d.details[index], quantity)
	d.markEditing()
	return nil
}

func (d *Draft) UpdateUnitPrice(index int, unitPrice decimal.Decimal) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.details[index] = calc.SetUnitPrice(d.details[index], unitPrice)
	d.markEditing()
	return nil
}

func (d *Draft) UpdateDesignNo(index int, designNo string, catalog []models.Product) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.details[index] = calc.SetDesignNo(d.details[index], designNo, catalog)
	d.markEditing()
	return nil
}

// AddDetail appends a blank line item. Returns false without change
// when the order already carries the configured maximum.
func (d *Draft) AddDetail() bool {
	if len(d.details) >= d.limits.MaxItems {
		return false
	}
	d.details = append(d.details, blankDetail())
	d.markEditing()
	return true
}

// RemoveDetail removes the line item at index. An order must always
// have at least one line item, so removing the last one is a no-op.
func (d *Draft) RemoveDetail(index int) bool {
	if len(d.details) <= 1 {
		return false
	}
	if err := d.checkIndex(index); err != nil {
		return false
	}
	d.details = append(d.details[:index], d.details[index+1:]...)
	d.markEditing()
	return true
}

// AvailableProducts lists catalog products choosable for the line item
// at index: everything except design numbers already selected by the
// other rows. The row's own current selection stays choosable.
func (d *Draft) AvailableProducts(index int, catalog []models.Product) []models.Product {
	selected := make(map[string]bool, len(d.details))
	for i, detail := range d.details {
		if i != index && detail.DesignNo != "" {
			selected[detail.DesignNo] = true
		}
	}

	available := make([]models.Product, 0, len(catalog))
	for _, product := range catalog {
		if !selected[product.DesignNo] {
			available = append(available, product)
		}
	}
	return available
}

// Package validates the draft and emits the record shape the order
// store submits. The total amount is recomputed here; whatever total a
// caller might have carried around is never trusted.
func (d *Draft) Package() (models.Order, error) {
	if err := d.Validate(); err != nil {
		return models.Order{}, err
	}

	return models.Order{
		ID:           d.orderID,
		OrderNo:      d.orderNo,
		Date:         d.Date,
		CustomerName: d.CustomerName,
		Address:      d.Address,
		PhoneNo:      d.PhoneNo,
		Agent:        d.Agent,
		Transport:    d.Transport,
		PaymentTerms: d.PaymentTerms,
		Remark:       d.Remark,
		OrderDetails: d.Details(),
		TotalAmount:  d.TotalAmount(),
	}, nil
}

// Submit packages the draft and hands it to the store. On success a
// create-mode draft resets to Empty for reuse; an edit-mode draft
// reseeds from the confirmed record. On failure the draft returns to
// Editing so the user can fix and resubmit.
func (d *Draft) Submit(ctx context.Context, store Store) (*models.Order, error) {
	if d.state == StateSubmitting || d.state == StateDiscarded {
		return nil, ErrNotEditing
	}

	order, err := d.Package()
	if err != nil {
		return nil, err
	}
	d.state = StateSubmitting

	var saved *models.Order
	if d.mode == ModeEdit {
		saved, err = store.Update(ctx, order)
	} else {
		saved, err = store.Create(ctx, order)
	}
	if err != nil {
		d.state = StateEditing
		return nil, err
	}

	if d.mode == ModeCreate {
		d.reset()
	} else {
		*d = *NewFromOrder(*saved, d.limits)
	}
	return saved, nil
}

// Discard drops the draft without side effects to any store.
func (d *Draft) Discard() {
	d.state = StateDiscarded
}

func (d *Draft) reset() {
	limits := d.limits
	*d = *New(limits)
}
