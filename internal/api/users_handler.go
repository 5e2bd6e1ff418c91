package api

import (
	"net/http"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

// Users godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response{data=[]entity.UserView}
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /users [get]
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.s.Users(ctx)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, users)
}

// CreateUser godoc
// @Summary      Create a user
// @Description  Creates the account and mails a password setup link. A mail failure is reported in setupEmail
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.UserInput true "User"
// @Success      200 {object} Response{data=entity.UserCreated}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	var in entity.UserInput

	err := decodeBody(r, &in)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	res, err := h.s.CreateUser(ctx, caller, in)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User id"
// @Param        request body entity.UserInput true "User"
// @Success      200 {object} Response{data=entity.WriteResult}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	var in entity.UserInput

	err = decodeBody(r, &in)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	res, err := h.s.UpdateUser(ctx, caller, id, in)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

type UserStatusRequest struct {
	Status int `json:"status"`
}

// SetUserStatus godoc
// @Summary      Activate or deactivate a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User id"
// @Param        request body UserStatusRequest true "1 active, 0 inactive"
// @Success      200 {object} Response{data=entity.WriteResult}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /users-status/{id} [put]
func (h *Handler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	var req UserStatusRequest

	err = decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	res, err := h.s.SetUserStatus(ctx, caller, id, req.Status)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}
