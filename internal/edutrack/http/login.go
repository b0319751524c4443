package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/opencampus/edutrack/internal/edutrack/service"
	"github.com/opencampus/edutrack/pkg/edusdk"
	"github.com/opencampus/edutrack/pkg/httpx"
	"github.com/opencampus/edutrack/pkg/slogx"
)

type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange an email and password for a signed bearer token
//	@Description	Unknown emails and wrong passwords produce the same response so accounts cannot be enumerated
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		edusdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	edusdk.TokenResponse	"token"
//	@Failure		400		{object}	edusdk.ErrorResponse	"error"
//	@Failure		500		{object}	edusdk.ErrorResponse	"error"
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req edusdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.UserService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusBadRequest, "invalid credentials")
			return
		}
		log.Error("failed to log in user", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "login failed")
		return
	}

	token, err := h.TokenService.Mint(user)
	if err != nil {
		log.Error("failed to mint token", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "login failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, edusdk.TokenResponse{Token: token})
}
