package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Surajsachintha/itams-haci-project/docs" // swagger docs
	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

var (
	userAdmins = []entity.Role{entity.RoleAdmin, entity.RoleSuper, entity.RoleUnitAdmin}
	codeAdmins = []entity.Role{entity.RoleAdmin, entity.RoleSuper}
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.WithIP, mw.Log, mw.Recover, mw.Cors)

	router.Route("/dms", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)

			r.Post("/login", h.Login)
			r.Post("/setup-password", h.SetupPassword)
			r.Post("/forgot-password", h.ForgotPassword)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", h.DashboardStats)
				r.Get("/devices-by-category", h.DevicesByCategory)
				r.Get("/devices-by-station", h.DevicesByStation)
				r.Get("/top-brands", h.TopBrands)
				r.Get("/device-status", h.StatusDistribution)
				r.Get("/registration-trend", h.RegistrationTrend)
				r.Get("/warranty-alerts", h.WarrantyAlerts)
				r.Get("/value-by-category", h.ValueByCategory)
				r.Get("/devices-by-age", h.DevicesByAge)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Put("/password-change", h.ChangePassword)
			r.Get("/me", h.Me)
			r.Post("/userlog", h.UserLog)

			r.Group(func(r chi.Router) {
				r.Use(mw.RequireRole(userAdmins...))

				r.Get("/users", h.Users)
				r.Post("/users", h.CreateUser)
				r.Put("/users/{id}", h.UpdateUser)
				r.Put("/users-status/{id}", h.SetUserStatus)
			})

			r.Route("/devices", func(r chi.Router) {
				r.Get("/device-list", h.Devices)
				r.Post("/device", h.CreateDevice)
				r.Put("/device/{id}", h.UpdateDevice)
				r.Delete("/device/{id}", h.DeleteDevice)
				r.Get("/device/{id}/qr", h.DeviceQRCode)
				r.Get("/device-last-id", h.LastDeviceID)
				r.Post("/send", h.SendNotification)
			})

			r.Route("/computers", func(r chi.Router) {
				r.Get("/computer", h.Computers)
				r.Post("/computer-specs", h.CreateComputerSpec)
				r.Put("/computer-specs/{id}", h.UpdateComputerSpec)
			})

			r.Route("/codedata", func(r chi.Router) {
				r.Get("/code-data", h.CodeData)
				r.Get("/code-station", h.Stations)
				r.Get("/code-device-types/{cat_id}", h.DeviceTypes)
				r.Post("/code-models", h.Models)
				r.Post("/code-table-keys", h.CodeTableKeys)
				r.Post("/code-table-data", h.CodeTableData)
				r.Get("/code-lookups", h.CodeLookups)

				r.Group(func(r chi.Router) {
					r.Use(mw.RequireRole(codeAdmins...))

					r.Post("/dynamic-insert", h.DynamicInsert)
					r.Put("/dynamic-update", h.DynamicUpdate)
					r.Delete("/dynamic-delete", h.DynamicDelete)
				})
			})
		})
	})

	return router
}
