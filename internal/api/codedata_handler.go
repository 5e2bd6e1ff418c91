package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

// CodeData godoc
// @Summary      Rows of a code table
// @Description  resolve=true adds a <column>_label entry for every lookup column
// @Tags         codedata
// @Produce      json
// @Security     BearerAuth
// @Param        table query string true "Table name"
// @Param        resolve query bool false "Resolve lookup labels"
// @Success      200 {object} Response{data=[]map[string]any}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /codedata/code-data [get]
func (h *Handler) CodeData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		table   = r.URL.Query().Get("table")
		resolve bool
		err     error
	)

	if v := r.URL.Query().Get("resolve"); v != "" {
		resolve, err = strconv.ParseBool(v)
		if err != nil {
			h.fail(ctx, w, fmt.Errorf("resolve must be a boolean: %w", entity.ErrValidation))
			return
		}
	}

	rows, err := h.s.CodeTableRows(ctx, table, resolve)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, rows)
}

// Stations godoc
// @Summary      Stations ordered by name
// @Tags         codedata
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response{data=[]entity.Station}
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /codedata/code-station [get]
func (h *Handler) Stations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stations, err := h.s.Stations(ctx)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, stations)
}

// DeviceTypes godoc
// @Summary      Device types of a category
// @Tags         codedata
// @Produce      json
// @Security     BearerAuth
// @Param        cat_id path int true "Category id"
// @Success      200 {object} Response{data=[]entity.DeviceType}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /codedata/code-device-types/{cat_id} [get]
func (h *Handler) DeviceTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categoryID, err := idParam(r, "cat_id")
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	types, err := h.s.DeviceTypes(ctx, categoryID)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, types)
}

type ModelsRequest struct {
	TypeID  int64 `json:"type_id"`
	BrandID int64 `json:"brand_id"`
}

// Models godoc
// @Summary      Models of a device type and brand
// @Tags         codedata
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ModelsRequest true "Type and brand"
// @Success      200 {object} Response{data=[]entity.Model}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /codedata/code-models [post]
func (h *Handler) Models(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ModelsRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	models, err := h.s.Models(ctx, req.TypeID, req.BrandID)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, models)
}

type CodeTableKeysRequest struct {
	CodeTable string `json:"code_table"`
}

// CodeTableKeys godoc
// @Summary      Editing metadata of a code table
// @Tags         codedata
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CodeTableKeysRequest true "Table"
// @Success      200 {object} Response{data=[]entity.EditingColumn}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /codedata/code-table-keys [post]
func (h *Handler) CodeTableKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CodeTableKeysRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	cols, err := h.s.EditingColumns(ctx, req.CodeTable)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, cols)
}

type CodeTableDataRequest struct {
	CodeID        string `json:"code_id"`
	CodeName      string `json:"code_name"`
	CodeTableName string `json:"codetable_name"`
}

// CodeTableData godoc
// @Summary      Id and label pairs of a code table
// @Tags         codedata
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CodeTableDataRequest true "Columns"
// @Success      200 {object} Response{data=[]map[string]any}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /codedata/code-table-data [post]
func (h *Handler) CodeTableData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CodeTableDataRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	rows, err := h.s.LookupEntries(ctx, req.CodeTableName, req.CodeID, req.CodeName)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, rows)
}

// CodeLookups godoc
// @Summary      Resolved lookup maps of a code table
// @Tags         codedata
// @Produce      json
// @Security     BearerAuth
// @Param        table query string true "Table name"
// @Success      200 {object} Response{data=map[string]entity.Lookup}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /codedata/code-lookups [get]
func (h *Handler) CodeLookups(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	set, err := h.s.ResolveLookups(ctx, r.URL.Query().Get("table"))
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, set)
}

type DynamicRequest struct {
	Table string        `json:"table"`
	ID    any           `json:"id,omitempty" swaggertype:"integer"`
	Data  entity.Record `json:"data,omitempty"`
}

// DynamicInsert godoc
// @Summary      Insert a code table row
// @Tags         codedata
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body DynamicRequest true "Table and data"
// @Success      200 {object} Response{data=entity.WriteResult}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /codedata/dynamic-insert [post]
func (h *Handler) DynamicInsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	var req DynamicRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	res, err := h.s.DynamicInsert(ctx, caller, req.Table, req.Data)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// DynamicUpdate godoc
// @Summary      Update a code table row
// @Tags         codedata
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body DynamicRequest true "Table, id and data"
// @Success      200 {object} Response{data=entity.WriteResult}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /codedata/dynamic-update [put]
func (h *Handler) DynamicUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	var req DynamicRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	res, err := h.s.DynamicUpdate(ctx, caller, req.Table, req.ID, req.Data)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}

// DynamicDelete godoc
// @Summary      Delete a code table row
// @Tags         codedata
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body DynamicRequest true "Table and id"
// @Success      200 {object} Response{data=entity.WriteResult}
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /codedata/dynamic-delete [delete]
func (h *Handler) DynamicDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	var req DynamicRequest

	err := decodeBody(r, &req)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	res, err := h.s.DynamicDelete(ctx, caller, req.Table, req.ID)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, res)
}
