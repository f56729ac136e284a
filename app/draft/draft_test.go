package draft

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velleta/heritage/app/configs"
	"github.com/velleta/heritage/app/models"
)

func testLimits() configs.OrderLimits {
	return configs.OrderLimits{MaxItems: 50, MaxQuantity: 999, MaxUnitPrice: 999999}
}

func testCatalog() []models.Product {
	return []models.Product{
		{ID: "p1", DesignNo: "DES001", TypeOfGarment: "Lehenga", Rate: decimal.NewFromInt(25000)},
		{ID: "p2", DesignNo: "DES002", TypeOfGarment: "Saree", Rate: decimal.NewFromInt(1000)},
		{ID: "p3", DesignNo: "DES003", TypeOfGarment: "Gown", Rate: decimal.NewFromInt(4500)},
	}
}

func fillScalars(d *Draft) {
	d.CustomerName = "Priya Sharma"
	d.Address = "14 MG Road, Surat, Gujarat"
	d.PhoneNo = "+91 98765 4321"
	d.Agent = "Rakesh"
	d.Transport = "VRL Logistics"
	d.PaymentTerms = "30 days"
}

type fakeStore struct {
	created   *models.Order
	updated   *models.Order
	createErr error
	updateErr error
}

func (f *fakeStore) Create(ctx context.Context, order models.Order) (*models.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	order.ID = "server-id"
	if order.OrderNo == "" {
		order.OrderNo = "ORD1700000000000"
	}
	f.created = &order
	return &order, nil
}

func (f *fakeStore) Update(ctx context.Context, order models.Order) (*models.Order, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = &order
	return &order, nil
}

func TestNewStartsEmptyWithOneBlankDetail(t *testing.T) {
	d := New(testLimits())

	assert.Equal(t, StateEmpty, d.State())
	assert.Equal(t, ModeCreate, d.Mode())
	require.Equal(t, 1, d.DetailCount())

	detail := d.Details()[0]
	assert.Equal(t, "", detail.DesignNo)
	assert.Equal(t, 1, detail.Quantity)
	assert.True(t, detail.UnitPrice.IsZero())
	assert.True(t, detail.TotalPrice.IsZero())
	assert.True(t, d.TotalAmount().IsZero())
}

func TestRemoveLastRemainingDetailIsNoop(t *testing.T) {
	d := New(testLimits())

	assert.False(t, d.RemoveDetail(0))
	assert.Equal(t, 1, d.DetailCount())
}

func TestAddDetailStopsAtConfiguredMax(t *testing.T) {
	limits := testLimits()
	d := New(limits)

	for i := 1; i < limits.MaxItems; i++ {
		assert.True(t, d.AddDetail())
	}
	assert.Equal(t, limits.MaxItems, d.DetailCount())

	assert.False(t, d.AddDetail())
	assert.Equal(t, limits.MaxItems, d.DetailCount())
}

func TestOrderTotalTracksEveryMutation(t *testing.T) {
	d := New(testLimits())
	catalog := testCatalog()

	require.NoError(t, d.UpdateDesignNo(0, "DES001", catalog))
	assert.True(t, d.TotalAmount().Equal(decimal.NewFromInt(25000)))

	require.True(t, d.AddDetail())
	require.NoError(t, d.UpdateDesignNo(1, "DES002", catalog))
	require.NoError(t, d.UpdateQuantity(1, 2))
	assert.True(t, d.TotalAmount().Equal(decimal.NewFromInt(27000)))

	require.NoError(t, d.UpdateUnitPrice(0, decimal.NewFromInt(20000)))
	assert.True(t, d.TotalAmount().Equal(decimal.NewFromInt(22000)))

	require.True(t, d.RemoveDetail(0))
	assert.True(t, d.TotalAmount().Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, StateEditing, d.State())
}

func TestAvailableProductsExcludesOtherRowsSelections(t *testing.T) {
	d := New(testLimits())
	catalog := testCatalog()

	require.NoError(t, d.UpdateDesignNo(0, "DES001", catalog))
	require.True(t, d.AddDetail())
	require.NoError(t, d.UpdateDesignNo(1, "DES002", catalog))

	available := d.AvailableProducts(0, catalog)
	designNos := make([]string, 0, len(available))
	for _, p := range available {
		designNos = append(designNos, p.DesignNo)
	}

	assert.Contains(t, designNos, "DES001", "a row's own selection stays choosable")
	assert.NotContains(t, designNos, "DES002")
	assert.Contains(t, designNos, "DES003")
}

func TestSeedFromReproducesOrder(t *testing.T) {
	existing := models.Order{
		ID:           "o1",
		OrderNo:      "ORD1690000000000",
		Date:         time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		CustomerName: "Anita Desai",
		Address:      "22 Ring Road, Ahmedabad",
		PhoneNo:      "0791234567",
		Agent:        "Suresh",
		Transport:    "GATI",
		PaymentTerms: "Advance",
		OrderDetails: []models.OrderDetail{
			{DesignNo: "DES001", Quantity: 1, UnitPrice: decimal.NewFromInt(25000), TotalPrice: decimal.NewFromInt(25000)},
			{DesignNo: "DES003", Quantity: 4, UnitPrice: decimal.NewFromInt(4500), TotalPrice: decimal.NewFromInt(18000)},
		},
		TotalAmount: decimal.NewFromInt(43000),
	}

	d, err := SeedFrom([]models.Order{existing}, "o1", testLimits())
	require.NoError(t, err)

	assert.Equal(t, StateSeeded, d.State())
	assert.Equal(t, ModeEdit, d.Mode())
	assert.Equal(t, "ORD1690000000000", d.OrderNo())
	assert.Equal(t, existing.OrderDetails, d.Details())
	assert.True(t, d.TotalAmount().Equal(decimal.NewFromInt(43000)))
}

func TestSeedFromCopiesDetailsByValue(t *testing.T) {
	existing := models.Order{
		ID:   "o1",
		Date: time.Now(),
		OrderDetails: []models.OrderDetail{
			{DesignNo: "DES001", Quantity: 1, UnitPrice: decimal.NewFromInt(25000), TotalPrice: decimal.NewFromInt(25000)},
		},
	}

	d, err := SeedFrom([]models.Order{existing}, "o1", testLimits())
	require.NoError(t, err)

	require.NoError(t, d.UpdateQuantity(0, 5))
	assert.Equal(t, 1, existing.OrderDetails[0].Quantity, "parent order must not be mutated in place")
}

func TestSeedFromMissingIDIsDistinctNotFound(t *testing.T) {
	_, err := SeedFrom([]models.Order{{ID: "o1"}}, "missing", testLimits())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestPackageRejectsBlankDesignNo(t *testing.T) {
	d := New(testLimits())
	fillScalars(d)

	_, err := d.Package()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "orderDetails[0].designNo")
}

func TestPackageRejectsOutOfBoundQuantity(t *testing.T) {
	d := New(testLimits())
	fillScalars(d)
	require.NoError(t, d.UpdateDesignNo(0, "DES001", testCatalog()))
	require.NoError(t, d.UpdateQuantity(0, 1000))

	_, err := d.Package()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "orderDetails[0].quantity")
}

func TestPackageMarksEveryOffendingFieldOnOneRow(t *testing.T) {
	d := New(testLimits())
	fillScalars(d)
	require.NoError(t, d.UpdateQuantity(0, 0))
	require.NoError(t, d.UpdateUnitPrice(0, decimal.NewFromInt(-5)))

	_, err := d.Package()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "orderDetails[0].designNo")
	assert.Contains(t, verr.Fields, "orderDetails[0].quantity")
	assert.Contains(t, verr.Fields, "orderDetails[0].unitPrice")
}

func TestCreateRoundTripPackagesTotals(t *testing.T) {
	d := New(testLimits())
	fillScalars(d)
	catalog := testCatalog()

	require.NoError(t, d.UpdateDesignNo(0, "DES001", catalog))
	require.True(t, d.AddDetail())
	require.NoError(t, d.UpdateDesignNo(1, "DES002", catalog))
	require.NoError(t, d.UpdateQuantity(1, 2))

	order, err := d.Package()
	require.NoError(t, err)

	require.Len(t, order.OrderDetails, 2)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(27000)))
	assert.Empty(t, order.OrderNo, "order number is assigned by the server on create")
}

func TestSubmitCreateResetsToEmpty(t *testing.T) {
	d := New(testLimits())
	fillScalars(d)
	require.NoError(t, d.UpdateDesignNo(0, "DES001", testCatalog()))

	store := &fakeStore{}
	saved, err := d.Submit(context.Background(), store)
	require.NoError(t, err)

	assert.Equal(t, "server-id", saved.ID)
	require.NotNil(t, store.created)
	assert.Equal(t, StateEmpty, d.State())
	assert.Equal(t, 1, d.DetailCount())
	assert.Equal(t, "", d.CustomerName)
}

func TestSubmitFailureReturnsToEditing(t *testing.T) {
	d := New(testLimits())
	fillScalars(d)
	require.NoError(t, d.UpdateDesignNo(0, "DES001", testCatalog()))

	store := &fakeStore{createErr: errors.New("network unreachable")}
	_, err := d.Submit(context.Background(), store)

	require.Error(t, err)
	assert.Equal(t, StateEditing, d.State())
	assert.Equal(t, "Priya Sharma", d.CustomerName, "draft state survives a failed submit")
}

func TestSubmitEditUpdatesExistingOrder(t *testing.T) {
	existing := models.Order{
		ID:           "o1",
		OrderNo:      "ORD1690000000000",
		Date:         time.Now(),
		CustomerName: "Anita Desai",
		Address:      "22 Ring Road, Ahmedabad",
		PhoneNo:      "0791234567",
		Agent:        "Suresh",
		Transport:    "GATI",
		PaymentTerms: "Advance",
		OrderDetails: []models.OrderDetail{
			{DesignNo: "DES001", Quantity: 1, UnitPrice: decimal.NewFromInt(25000), TotalPrice: decimal.NewFromInt(25000)},
		},
		TotalAmount: decimal.NewFromInt(25000),
	}

	d, err := SeedFrom([]models.Order{existing}, "o1", testLimits())
	require.NoError(t, err)
	require.NoError(t, d.UpdateQuantity(0, 2))

	store := &fakeStore{}
	saved, err := d.Submit(context.Background(), store)
	require.NoError(t, err)

	require.NotNil(t, store.updated)
	assert.Equal(t, "o1", saved.ID)
	assert.Equal(t, "ORD1690000000000", saved.OrderNo)
	assert.True(t, saved.TotalAmount.Equal(decimal.NewFromInt(50000)))
}

func TestDiscardBlocksSubmit(t *testing.T) {
	d := New(testLimits())
	fillScalars(d)
	d.Discard()

	_, err := d.Submit(context.Background(), &fakeStore{})
	assert.ErrorIs(t, err, ErrNotEditing)
}
