package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"

	"github.com/velleta/heritage/app/helpers"
	"github.com/velleta/heritage/app/models"
)

type fakeProductRepo struct {
	products map[string]models.Product
	updated  *models.Product
}

func newFakeProductRepo(products ...models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]models.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) GetProducts(ctx context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if p, ok := f.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByDesignNo(ctx context.Context, designNo string) (*models.Product, error) {
	for _, p := range f.products {
		if p.DesignNo == designNo {
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Search(ctx context.Context, keyword string) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	product.ID = "generated-id"
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	f.updated = product
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(f.products, id)
	return nil
}

func storedLehenga() models.Product {
	return models.Product{
		ID:             "product-1",
		DesignNo:       "DES001",
		TypeOfGarment:  "Lehenga",
		ColorOfGarment: "Maroon",
		Rate:           decimal.NewFromInt(25000),
	}
}

func newProductHandlerWith(repo *fakeProductRepo) *ProductHandler {
	return NewProductHandler(repo, render.New(), helpers.NewValidator())
}

func TestCreateProductRejectsDuplicateDesignNo(t *testing.T) {
	repo := newFakeProductRepo(storedLehenga())
	h := newProductHandlerWith(repo)

	body := `{"designNo":"DES001","typeOfGarment":"Saree","colorOfGarment":"Gold","rate":12000}`
	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateProduct(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, repo.products, 1)
}

func TestCreateProductPersistsNewDesign(t *testing.T) {
	repo := newFakeProductRepo(storedLehenga())
	h := newProductHandlerWith(repo)

	body := `{"designNo":"DES002","typeOfGarment":"Saree","colorOfGarment":"Gold","rate":12000}`
	req := httptest.NewRequest("POST", "/api/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateProduct(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, repo.products, 2)
}

func TestUpdateProductPreservesDesignNo(t *testing.T) {
	repo := newFakeProductRepo(storedLehenga())
	h := newProductHandlerWith(repo)

	body := `{"designNo":"DES999","typeOfGarment":"Gown","colorOfGarment":"Ivory","rate":30000}`
	req := httptest.NewRequest("PUT", "/api/products/product-1", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "product-1"})
	rec := httptest.NewRecorder()
	h.UpdateProduct(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "DES001", repo.updated.DesignNo)
	assert.Equal(t, "Gown", repo.updated.TypeOfGarment)
	assert.True(t, repo.updated.Rate.Equal(decimal.NewFromInt(30000)))
	assert.Contains(t, rec.Body.String(), "DES001")
}

func TestUpdateProductUnknownIDIsNotFound(t *testing.T) {
	h := newProductHandlerWith(newFakeProductRepo())

	body := `{"designNo":"DES001","typeOfGarment":"Gown","colorOfGarment":"Ivory","rate":30000}`
	req := httptest.NewRequest("PUT", "/api/products/missing", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})
	rec := httptest.NewRecorder()
	h.UpdateProduct(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
