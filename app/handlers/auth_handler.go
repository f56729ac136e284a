package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"

	"github.com/velleta/heritage/app/models"
	"github.com/velleta/heritage/app/repositories"
	"github.com/velleta/heritage/app/services"
	"github.com/velleta/heritage/app/utils/sessions"
)

type AuthHandler struct {
	userRepo  repositories.UserRepositoryImpl
	tokens    *services.TokenService
	session   sessions.SessionStore
	render    *render.Render
	validator *validator.Validate
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, tokens *services.TokenService, session sessions.SessionStore, r *render.Render, v *validator.Validate) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, tokens: tokens, session: session, render: r, validator: v}
}

type credentialsRequest struct {
	UserName string `json:"userName" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type authResponse struct {
	Token    string `json:"token"`
	UserName string `json:"userName"`
}

func (h *AuthHandler) bindCredentials(w http.ResponseWriter, r *http.Request) (*credentialsRequest, bool) {
	var req credentialsRequest
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
	return &req, true
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	req, ok := h.bindCredentials(w, r)
	if !ok {
		return
	}

	existing, err := h.userRepo.FindByUserName(r.Context(), req.UserName)
	if err != nil {
		log.Printf("Signup: user lookup failed: %v", err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to create account")
		return
	}
	if existing != nil {
		respondError(h.render, w, http.StatusConflict, "user name already taken")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Signup: failed to hash password: %v", err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to create account")
		return
	}

	user := models.User{UserName: req.UserName, Password: string(hashed)}
	if err := h.userRepo.Create(r.Context(), &user); err != nil {
		log.Printf("Signup: failed to persist user %s: %v", req.UserName, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to create account")
		return
	}

	h.issueToken(w, r, &user, http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.bindCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.userRepo.FindByUserName(r.Context(), req.UserName)
	if err != nil {
		log.Printf("Login: user lookup failed: %v", err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to sign in")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		respondError(h.render, w, http.StatusUnauthorized, "invalid user name or password")
		return
	}

	h.issueToken(w, r, user, http.StatusOK)
}

func (h *AuthHandler) issueToken(w http.ResponseWriter, r *http.Request, user *models.User, status int) {
	token, err := h.tokens.Issue(user.ID, user.UserName)
	if err != nil {
		log.Printf("issueToken: failed for user %s: %v", user.UserName, err)
		respondError(h.render, w, http.StatusInternalServerError, "failed to sign in")
		return
	}

	if err := h.session.SetAuthToken(w, r, token, user.UserName); err != nil {
		log.Printf("issueToken: failed to save session for %s: %v", user.UserName, err)
	}

	_ = h.render.JSON(w, status, authResponse{Token: token, UserName: user.UserName})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.ClearSession(w, r); err != nil {
		log.Printf("Logout: failed to clear session: %v", err)
	}
	w.WriteHeader(http.StatusNoContent)
}
