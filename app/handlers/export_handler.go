package handlers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/unrolled/render"

	"github.com/velleta/heritage/app/repositories"
	"github.com/velleta/heritage/app/services"
)

type ExportHandler struct {
	orderRepo repositories.OrderRepository
	pdf       *services.PDFService
	render    *render.Render
}

func NewExportHandler(orderRepo repositories.OrderRepository, pdf *services.PDFService, r *render.Render) *ExportHandler {
	return &ExportHandler{orderRepo: orderRepo, pdf: pdf, render: r}
}

// OrderPDF streams an order confirmation document as a download.
func (h *ExportHandler) OrderPDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("OrderPDF: failed to fetch order %s: %v", id, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to fetch order")
		return
	}
	if order == nil {
		respondError(h.render, w, http.StatusNotFound, "order not found")
		return
	}

	data, err := h.pdf.Render(order)
	if err != nil {
		log.Printf("OrderPDF: failed to render order %s: %v", order.OrderNo, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to render order pdf")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.pdf.FileName(order)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
