package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

// Devices godoc
// @Summary      List devices
// @Description  Non-deleted devices, newest first
// @Tags         devices
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response{data=[]entity.DeviceView}
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /devices/device-list [get]
func (h *Handler) Devices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	devices, err := h.s.Devices(ctx, caller)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, devices)
}

// CreateDevice godoc
// @Summary      Register a device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.DeviceInput true "Device"
// @Success      200 {object} Response{data=entity.DeviceCreated}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /devices/device [post]
func (h *Handler) CreateDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	var in entity.DeviceInput

	err := decodeBody(r, &in)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	res, err := h.s.CreateDevice(ctx, caller, in)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// UpdateDevice godoc
// @Summary      Update a device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Device id"
// @Param        request body entity.DeviceInput true "Device"
// @Success      200 {object} Response{data=entity.WriteResult}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /devices/device/{id} [put]
func (h *Handler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
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

	var in entity.DeviceInput

	err = decodeBody(r, &in)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	res, err := h.s.UpdateDevice(ctx, caller, id, in)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// DeleteDevice godoc
// @Summary      Soft delete a device
// @Description  Repeating the delete succeeds with affectedRows 0
// @Tags         devices
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Device id"
// @Success      200 {object} Response{data=entity.WriteResult}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /devices/device/{id} [delete]
func (h *Handler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
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

	res, err := h.s.DeleteDevice(ctx, caller, id)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// LastDeviceID godoc
// @Summary      Highest device id
// @Description  data is null when no device exists
// @Tags         devices
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response{data=entity.DeviceRef}
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /devices/device-last-id [get]
func (h *Handler) LastDeviceID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ref, err := h.s.LastDeviceID(ctx)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, ref)
}

// DeviceQRCode godoc
// @Summary      Device QR label
// @Tags         devices
// @Produce      png
// @Security     BearerAuth
// @Param        id path int true "Device id"
// @Param        size query int false "Image size in pixels" default(256)
// @Success      200 {file} binary
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /devices/device/{id}/qr [get]
func (h *Handler) DeviceQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := idParam(r, "id")
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	size, err := intQuery(r, "size")
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	png, err := h.s.DeviceQRCode(ctx, id, size)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "Device not found", h.exposeErrors)
			return
		}

		h.fail(ctx, w, err)

		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(png)
	if err != nil {
		h.fail(ctx, w, err)
	}
}

// SendNotification godoc
// @Summary      Send a push notification
// @Description  Pushes to fcmToken, or to the token stored for userId
// @Tags         devices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.PushRequest true "Notification"
// @Success      200 {object} Response{data=entity.PushResult}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /devices/send [post]
func (h *Handler) SendNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.PushRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	res, err := h.s.SendNotification(ctx, req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// Computers godoc
// @Summary      List computers with their specs
// @Tags         computers
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response{data=[]entity.ComputerView}
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /computers/computer [get]
func (h *Handler) Computers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	computers, err := h.s.Computers(ctx, caller)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, computers)
}

// CreateComputerSpec godoc
// @Summary      Add computer specs to a device
// @Tags         computers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.ComputerSpec true "Specs"
// @Success      200 {object} Response{data=entity.WriteResult}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /computers/computer-specs [post]
func (h *Handler) CreateComputerSpec(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	var spec entity.ComputerSpec

	err := decodeBody(r, &spec)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	res, err := h.s.CreateComputerSpec(ctx, caller, spec)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// UpdateComputerSpec godoc
// @Summary      Update computer specs
// @Tags         computers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Spec id"
// @Param        request body entity.ComputerSpec true "Specs"
// @Success      200 {object} Response{data=entity.WriteResult}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /computers/computer-specs/{id} [put]
func (h *Handler) UpdateComputerSpec(w http.ResponseWriter, r *http.Request) {
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

	var spec entity.ComputerSpec

	err = decodeBody(r, &spec)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	res, err := h.s.UpdateComputerSpec(ctx, caller, id, spec)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}
