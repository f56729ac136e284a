package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/unrolled/render"

	"github.com/velleta/heritage/app/models"
	"github.com/velleta/heritage/app/repositories"
	"github.com/velleta/heritage/app/services"
)

type OrderHandler struct {
	repo      repositories.OrderRepository
	service   *services.OrderService
	render    *render.Render
	validator *validator.Validate
}

func NewOrderHandler(repo repositories.OrderRepository, service *services.OrderService, r *render.Render, v *validator.Validate) *OrderHandler {
	return &OrderHandler{repo: repo, service: service, render: r, validator: v}
}

type orderDetailRequest struct {
	DesignNo  string          `json:"designNo" validate:"required,max=100"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type orderRequest struct {
	OrderNo      string               `json:"orderNo" validate:"max=255"`
	Date         string               `json:"date" validate:"required"`
	CustomerName string               `json:"customerName" validate:"required,min=2,max=100,customername"`
	Address      string               `json:"address" validate:"max=500"`
	PhoneNo      string               `json:"phoneNo" validate:"omitempty,max=50,phoneno"`
	Agent        string               `json:"agent" validate:"max=255"`
	Transport    string               `json:"transport" validate:"max=255"`
	PaymentTerms string               `json:"paymentTerms" validate:"max=255"`
	Remark       string               `json:"remark" validate:"max=500"`
	OrderDetails []orderDetailRequest `json:"orderDetails" validate:"required,min=1,dive"`
}

// parseOrderDate accepts the two formats clients actually send. Other
// shapes are rejected rather than guessed at.
func parseOrderDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (h *OrderHandler) bind(w http.ResponseWriter, r *http.Request) (*models.Order, bool) {
	var req orderRequest
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

	date, err := parseOrderDate(req.Date)
	if err != nil {
		respondError(h.render, w, http.StatusBadRequest, "date must be RFC3339 or YYYY-MM-DD")
		return nil, false
	}

	order := models.Order{
		OrderNo:      req.OrderNo,
		Date:         date,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		PhoneNo:      req.PhoneNo,
		Agent:        req.Agent,
		Transport:    req.Transport,
		PaymentTerms: req.PaymentTerms,
		Remark:       req.Remark,
	}
	for _, detail := range req.OrderDetails {
		order.OrderDetails = append(order.OrderDetails, models.OrderDetail{
			DesignNo:  detail.DesignNo,
			Quantity:  detail.Quantity,
			UnitPrice: detail.UnitPrice,
		})
	}
	return &order, true
}

func (h *OrderHandler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		respondError(h.render, w, http.StatusNotFound, "order not found")
	case errors.Is(err, services.ErrDuplicateOrderNo):
		respondError(h.render, w, http.StatusConflict, "order number already exists")
	case errors.Is(err, services.ErrNoOrderDetails),
		errors.Is(err, services.ErrTooManyDetails),
		errors.Is(err, services.ErrDetailOutOfBounds):
		respondError(h.render, w, http.StatusBadRequest, err.Error())
	default:
		respondError(h.render, w, http.StatusInternalServerError, "failed to process order")
	}
}

func (h *OrderHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.GetOrders(r.Context())
	if err != nil {
		log.Printf("Orders: failed to list orders: %v", err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to fetch orders")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) SearchOrders(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		_ = h.render.JSON(w, http.StatusOK, []models.Order{})
		return
	}

	orders, err := h.repo.Search(r.Context(), keyword)
	if err != nil {
		log.Printf("SearchOrders: search %q failed: %v", keyword, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to search orders")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) OrdersByDateRange(w http.ResponseWriter, r *http.Request) {
	start, err := parseOrderDate(r.URL.Query().Get("start"))
	if err != nil {
		respondError(h.render, w, http.StatusBadRequest, "start must be RFC3339 or YYYY-MM-DD")
		return
	}
	end, err := parseOrderDate(r.URL.Query().Get("end"))
	if err != nil {
		respondError(h.render, w, http.StatusBadRequest, "end must be RFC3339 or YYYY-MM-DD")
		return
	}

	// An end given as a bare date means "through that day".
	if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	orders, err := h.repo.FindByDateRange(r.Context(), start, end)
	if err != nil {
		log.Printf("OrdersByDateRange: query failed: %v", err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to fetch orders")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) OrderDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("OrderDetail: failed to fetch order %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to fetch order")
		return
	}
	if order == nil {
		respondError(h.render, w, http.StatusNotFound, "order not found")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) OrderByOrderNo(w http.ResponseWriter, r *http.Request) {
	orderNo := mux.Vars(r)["orderNo"]

	order, err := h.repo.FindByOrderNo(r.Context(), orderNo)
	if err != nil {
		log.Printf("OrderByOrderNo: failed to fetch order %s: %v", orderNo, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to fetch order")
		return
	}
	if order == nil {
		respondError(h.render, w, http.StatusNotFound, "order not found")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.bind(w, r)
	if !ok {
		return
	}

	created, err := h.service.CreateOrder(r.Context(), *order)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, ok := h.bind(w, r)
	if !ok {
		return
	}
	order.ID = id

	updated, err := h.service.UpdateOrder(r.Context(), *order)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, updated)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
