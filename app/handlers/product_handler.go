package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/unrolled/render"

	"github.com/velleta/heritage/app/models"
	"github.com/velleta/heritage/app/repositories"
)

type ProductHandler struct {
	repo      repositories.ProductRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewProductHandler(repo repositories.ProductRepositoryImpl, r *render.Render, v *validator.Validate) *ProductHandler {
	return &ProductHandler{repo: repo, render: r, validator: v}
}

type productRequest struct {
	DesignNo       string          `json:"designNo" validate:"required,max=100"`
	TypeOfGarment  string          `json:"typeOfGarment" validate:"required,max=255"`
	ColorOfGarment string          `json:"colorOfGarment" validate:"required,max=255"`
	BlouseColor    string          `json:"blouseColor" validate:"max=255"`
	DupattaColor   string          `json:"dupattaColor" validate:"max=255"`
	Rate           decimal.Decimal `json:"rate"`
	FixCode        int             `json:"fixCode" validate:"min=0"`
}

func (h *ProductHandler) bind(w http.ResponseWriter, r *http.Request) (*productRequest, bool) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.render, w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if err := h.validator.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			respondValidationErrors(h.render, w, errs)
		} else {
			respondError(h.render, w, http.StatusBadRequest, "validation failed")
		}
		return nil, false
	}
	if req.Rate.IsNegative() {
		respondError(h.render, w, http.StatusBadRequest, "rate must not be negative")
		return nil, false
	}
	return &req, true
}

func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetProducts(r.Context())
	if err != nil {
		log.Printf("Products: failed to list products: %v", err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to fetch products")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		_ = h.render.JSON(w, http.StatusOK, []models.Product{})
		return
	}

	products, err := h.repo.Search(r.Context(), keyword)
	if err != nil {
		log.Printf("SearchProducts: search %q failed: %v", keyword, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to search products")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ProductDetail: failed to fetch product %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to fetch product")
		return
	}
	if product == nil {
		respondError(h.render, w, http.StatusNotFound, "product not found")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) ProductByDesignNo(w http.ResponseWriter, r *http.Request) {
	designNo := mux.Vars(r)["designNo"]

	product, err := h.repo.GetByDesignNo(r.Context(), designNo)
	if err != nil {
		log.Printf("ProductByDesignNo: failed to fetch product %s: %v", designNo, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to fetch product")
		return
	}
	if product == nil {
		respondError(h.render, w, http.StatusNotFound, "product not found")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req, ok := h.bind(w, r)
	if !ok {
		return
	}

	existing, err := h.repo.GetByDesignNo(r.Context(), req.DesignNo)
	if err != nil {
		log.Printf("CreateProduct: design number check failed: %v", err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to create product")
		return
	}
	if existing != nil {
		respondError(h.render, w, http.StatusConflict, "design number already exists")
		return
	}

	product := models.Product{
		DesignNo:       req.DesignNo,
		TypeOfGarment:  req.TypeOfGarment,
		ColorOfGarment: req.ColorOfGarment,
		BlouseColor:    req.BlouseColor,
		DupattaColor:   req.DupattaColor,
		Rate:           req.Rate,
		FixCode:        req.FixCode,
	}
	if err := h.repo.Create(r.Context(), &product); err != nil {
		log.Printf("CreateProduct: failed to persist %s: %v", req.DesignNo, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to create product")
		return
	}

	log.WithFields(log.Fields{"design_no": product.DesignNo, "id": product.ID}).Info("Product created")
	_ = h.render.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	req, ok := h.bind(w, r)
	if !ok {
		return
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("UpdateProduct: failed to fetch product %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to update product")
		return
	}
	if product == nil {
		respondError(h.render, w, http.StatusNotFound, "product not found")
		return
	}

	// The design number is business identity; an edit never changes it,
	// whatever the request body carries.
	product.TypeOfGarment = req.TypeOfGarment
	product.ColorOfGarment = req.ColorOfGarment
	product.BlouseColor = req.BlouseColor
	product.DupattaColor = req.DupattaColor
	product.Rate = req.Rate
	product.FixCode = req.FixCode

	if err := h.repo.Update(r.Context(), product); err != nil {
		log.Printf("UpdateProduct: failed to persist %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to update product")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("DeleteProduct: failed to fetch product %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	if product == nil {
		respondError(h.render, w, http.StatusNotFound, "product not found")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		log.Printf("DeleteProduct: failed to delete %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
