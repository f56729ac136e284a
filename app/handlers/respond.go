package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"

	"github.com/velleta/heritage/app/helpers"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func respondError(r *render.Render, w http.ResponseWriter, status int, message string) {
	_ = r.JSON(w, status, errorResponse{Error: message})
}

func respondValidationErrors(r *render.Render, w http.ResponseWriter, errs validator.ValidationErrors) {
	_ = r.JSON(w, http.StatusBadRequest, validationResponse{
		Error:  "validation failed",
		Fields: helpers.FormatValidationErrors(errs),
	})
}
