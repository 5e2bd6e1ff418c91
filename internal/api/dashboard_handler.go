package api

import (
	"context"
	"net/http"
)

// dashboard serves an aggregate that takes no arguments.
func dashboard[T any](h *Handler, load func(ctx context.Context) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		res, err := load(ctx)
		if err != nil {
			h.fail(ctx, w, err)
			return
		}

		SendJSON(ctx, w, http.StatusOK, res)
	}
}

// dashboardN serves an aggregate that takes one integer query parameter.
func dashboardN[T any](h *Handler, param string, load func(ctx context.Context, n int) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		n, err := intQuery(r, param)
		if err != nil {
			h.fail(ctx, w, err)
			return
		}

		res, err := load(ctx, n)
		if err != nil {
			h.fail(ctx, w, err)
			return
		}

		SendJSON(ctx, w, http.StatusOK, res)
	}
}

// DashboardStats godoc
// @Summary      Device totals
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} Response{data=entity.DashboardStats}
// @Failure      500 {object} ResponseError
// @Router       /dashboard/stats [get]
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	dashboard(h, h.s.DashboardStats)(w, r)
}

// DevicesByCategory godoc
// @Summary      Device count per category
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} Response{data=[]entity.CategoryCount}
// @Failure      500 {object} ResponseError
// @Router       /dashboard/devices-by-category [get]
func (h *Handler) DevicesByCategory(w http.ResponseWriter, r *http.Request) {
	dashboard(h, h.s.DevicesByCategory)(w, r)
}

// DevicesByStation godoc
// @Summary      Stations with the most devices
// @Tags         dashboard
// @Produce      json
// @Param        limit query int false "Number of stations" default(10)
// @Success      200 {object} Response{data=[]entity.StationCount}
// @Failure      400 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /dashboard/devices-by-station [get]
func (h *Handler) DevicesByStation(w http.ResponseWriter, r *http.Request) {
	dashboardN(h, "limit", h.s.DevicesByStation)(w, r)
}

// TopBrands godoc
// @Summary      Brands with the most devices
// @Tags         dashboard
// @Produce      json
// @Param        limit query int false "Number of brands" default(5)
// @Success      200 {object} Response{data=[]entity.BrandCount}
// @Failure      400 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /dashboard/top-brands [get]
func (h *Handler) TopBrands(w http.ResponseWriter, r *http.Request) {
	dashboardN(h, "limit", h.s.TopBrands)(w, r)
}

// StatusDistribution godoc
// @Summary      Device count per status
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} Response{data=[]entity.StatusCount}
// @Failure      500 {object} ResponseError
// @Router       /dashboard/device-status [get]
func (h *Handler) StatusDistribution(w http.ResponseWriter, r *http.Request) {
	dashboard(h, h.s.StatusDistribution)(w, r)
}

// RegistrationTrend godoc
// @Summary      Registrations per month over the last year
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} Response{data=[]entity.MonthCount}
// @Failure      500 {object} ResponseError
// @Router       /dashboard/registration-trend [get]
func (h *Handler) RegistrationTrend(w http.ResponseWriter, r *http.Request) {
	dashboard(h, h.s.RegistrationTrend)(w, r)
}

// WarrantyAlerts godoc
// @Summary      Warranties expiring soon
// @Tags         dashboard
// @Produce      json
// @Param        days query int false "Window in days" default(30)
// @Success      200 {object} Response{data=[]entity.WarrantyAlert}
// @Failure      400 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Router       /dashboard/warranty-alerts [get]
func (h *Handler) WarrantyAlerts(w http.ResponseWriter, r *http.Request) {
	dashboardN(h, "days", h.s.WarrantyAlerts)(w, r)
}

// ValueByCategory godoc
// @Summary      Purchase value per category
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} Response{data=[]entity.CategoryValue}
// @Failure      500 {object} ResponseError
// @Router       /dashboard/value-by-category [get]
func (h *Handler) ValueByCategory(w http.ResponseWriter, r *http.Request) {
	dashboard(h, h.s.ValueByCategory)(w, r)
}

// DevicesByAge godoc
// @Summary      Device count per age group
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} Response{data=[]entity.AgeGroupCount}
// @Failure      500 {object} ResponseError
// @Router       /dashboard/devices-by-age [get]
func (h *Handler) DevicesByAge(w http.ResponseWriter, r *http.Request) {
	dashboard(h, h.s.DevicesByAge)(w, r)
}
