package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/dashapp/internal/common"
	"github.com/dmitrijs2005/dashapp/internal/server/services"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LoginAccessToken handles POST /api/v1/auth/login/access-token. The body is
// form-encoded with username/password fields; the username carries the email.
func (h *Handler) LoginAccessToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, detailBadCredentials)
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		writeDetail(w, http.StatusBadRequest, detailBadCredentials)
		return
	}

	token, err := h.users.Login(r.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			writeDetail(w, http.StatusBadRequest, detailBadCredentials)
		case errors.Is(err, services.ErrInactiveUser):
			writeDetail(w, http.StatusBadRequest, detailInactiveUser)
		default:
			h.logger.Error(r.Context(), "login failed", "error", err)
			writeDetail(w, http.StatusInternalServerError, detailInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/v1/auth/signup and returns the created user
// with a 201.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			writeDetail(w, http.StatusBadRequest, detailUserExists)
		case errors.Is(err, services.ErrPasswordTooLong):
			writeDetail(w, http.StatusBadRequest, "Password is too long")
		default:
			h.logger.Error(r.Context(), "signup failed", "error", err)
			writeDetail(w, http.StatusInternalServerError, detailInternal)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}
