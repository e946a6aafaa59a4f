package http

import (
	"net/http"

	"github.com/balco/tracker/internal/tracker/service"
	"github.com/balco/tracker/pkg/httpx"
	"github.com/balco/tracker/pkg/trackersdk"
)

// RegisterHandler serves public self-registration. Any role, admin included,
// may be requested without a session; this is intended.
type RegisterHandler struct {
	Registration *service.RegistrationService
}

// ServeHTTP handles account registration.
//
//	@Summary		Register a user
//	@Description	Creates an account. Role defaults to "user" and department to "Genel". When the database is unreachable the account is kept in memory until restart and the response is the same.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.RegisterRequest	true	"Account details"
//	@Success		200		{object}	trackersdk.RegisterResponse	"Account created"
//	@Failure		400		{object}	trackersdk.ErrorResponse	"Missing fields, invalid role or email already in use"
//	@Failure		429		{object}	trackersdk.ErrorResponse	"Too many requests"
//	@Failure		500		{object}	trackersdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req trackersdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	user, err := h.Registration.Register(r.Context(), service.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		Department: req.Department,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, trackersdk.RegisterResponse{
		Message: "user created",
		User: trackersdk.User{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	})
}
