package handlers

import (
	"net/http"

	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db     *gorm.DB
	render *render.Render
}

func NewHealthHandler(db *gorm.DB, r *render.Render) *HealthHandler {
	return &HealthHandler{db: db, render: r}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(r.Context())
	}
	if err != nil {
		_ = h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
