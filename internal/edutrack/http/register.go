package http

import (
	"encoding/json"
	"net/http"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
	"github.com/opencampus/edutrack/internal/edutrack/service"
	"github.com/opencampus/edutrack/pkg/edusdk"
	"github.com/opencampus/edutrack/pkg/httpx"
	"github.com/opencampus/edutrack/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register Account Endpoint
//	@Description	Create a new account with a display name, unique email, password, and role
//	@Description	Passwords are hashed server-side and never stored in plaintext
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		edusdk.RegisterRequest	true	"Account details"
//	@Success		200		{object}	edusdk.MessageResponse	"message"
//	@Failure		400		{object}	edusdk.ErrorResponse	"error"
//	@Failure		500		{object}	edusdk.ErrorResponse	"error"
//	@Router			/api/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req edusdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	// Creation failures, duplicate email included, are reported with a
	// generic body so the endpoint cannot be used to probe for accounts.
	_, err := h.UserService.Register(ctx, req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		log.Error("failed to register user", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "registration failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, edusdk.MessageResponse{Message: "user registered"})
}
