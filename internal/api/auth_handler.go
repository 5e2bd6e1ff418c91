package api

import (
	"errors"
	"net/http"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FCMToken string `json:"fcmToken"`
}

// LoginResponse carries the token next to success, where existing clients read it.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Login godoc
// @Summary      Log in
// @Description  Checks the credentials of an active user and returns a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	if req.Username == "" || req.Password == "" {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrValidation, "Username and password are required", h.exposeErrors)
		return
	}

	token, err := h.s.Login(ctx, req.Username, req.Password, req.FCMToken)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, LoginResponse{Success: true, Token: token})
}

type ChangePasswordRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Users change their own password, ADMIN and SUPER may change anyone's
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangePasswordRequest true "New password"
// @Success      200 {object} Response{data=MessageResponse}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /password-change [put]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	var req ChangePasswordRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	err = h.s.ChangePassword(ctx, caller, req.Username, req.Password)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}

type SetupPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// SetupPassword godoc
// @Summary      Set password from a mailed link
// @Description  Consumes an account setup or password reset token. Each token works once
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SetupPasswordRequest true "Token and new password"
// @Success      200 {object} Response{data=MessageResponse}
// @Failure      400 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /setup-password [post]
func (h *Handler) SetupPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SetupPasswordRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	if req.Token == "" {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrInvalidToken, "Token is required", h.exposeErrors)
		return
	}

	err = h.s.SetupPassword(ctx, req.Token, req.Password)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Password set successfully"})
}

type ForgotPasswordRequest struct {
	Username string `json:"username"`
}

// ForgotPassword godoc
// @Summary      Request a password reset link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ForgotPasswordRequest true "Username"
// @Success      200 {object} Response{data=MessageResponse}
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /forgot-password [post]
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ForgotPasswordRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	email, err := h.s.ForgotPassword(ctx, req.Username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "User not found", h.exposeErrors)
			return
		}

		h.fail(ctx, w, err)

		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Password reset link sent to " + email})
}

// Me godoc
// @Summary      Current identity
// @Description  Identity of the caller with the station ids of their unit
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response{data=entity.Me}
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	me, err := h.s.Me(ctx, caller)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, me)
}

// UserLog godoc
// @Summary      Record a client audit event
// @Tags         audit
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.AuditEvent true "Event"
// @Success      200 {object} Response{data=MessageResponse}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /userlog [post]
func (h *Handler) UserLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	var e entity.AuditEvent

	err := decodeBody(r, &e)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	err = h.s.RecordUserLog(ctx, caller, e)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{Message: "Log saved"})
}
