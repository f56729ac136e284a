package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"

	"github.com/velleta/heritage/app/helpers"
)

func newOrderHandlerForBinding() *OrderHandler {
	return NewOrderHandler(nil, nil, render.New(), helpers.NewValidator())
}

func postOrder(h *OrderHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateOrder(rec, req)
	return rec
}

func TestParseOrderDateAcceptsBothFormats(t *testing.T) {
	got, err := parseOrderDate("2026-08-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = parseOrderDate("2026-08-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC), got)
}

func TestParseOrderDateFailsClosed(t *testing.T) {
	for _, value := range []string{"", "15-08-2026", "08/15/2026", "yesterday"} {
		_, err := parseOrderDate(value)
		assert.Error(t, err, value)
	}
}

func TestCreateOrderRejectsMalformedBody(t *testing.T) {
	rec := postOrder(newOrderHandlerForBinding(), "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderRejectsMissingDetails(t *testing.T) {
	body := `{"date":"2026-08-15","customerName":"Priya Sharma","orderDetails":[]}`
	rec := postOrder(newOrderHandlerForBinding(), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderRejectsBadCustomerName(t *testing.T) {
	body := `{"date":"2026-08-15","customerName":"x1!","orderDetails":[{"designNo":"DES001","quantity":1,"unitPrice":100}]}`
	rec := postOrder(newOrderHandlerForBinding(), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "fields")
}

func TestCreateOrderRejectsUnparseableDate(t *testing.T) {
	body := `{"date":"15-08-2026","customerName":"Priya Sharma","orderDetails":[{"designNo":"DES001","quantity":1,"unitPrice":100}]}`
	rec := postOrder(newOrderHandlerForBinding(), body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "date")
}
