package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/courierdesk/internal/model"
	"github.com/ibeloyar/courierdesk/pgk/auth"
)

func InitRoutes(r *chi.Mux, c *Controller, secret string) *chi.Mux {
	r.Route("/api/rider", func(r chi.Router) {
		r.Post("/register", c.Register)
		r.Post("/login", c.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthBearerMiddlewareInit[model.TokenInfo](secret))

			r.Get("/state", c.GetState)

			r.Get("/assignments", c.GetAssignments)
			r.Post("/assignments", c.AddAssignment)
			r.Put("/assignments", c.SetAssignments)
			r.Post("/assignments/{id}/accept", c.AcceptAssignment)

			r.Get("/order", c.GetCurrentOrder)
			r.Post("/order/pickup", c.MarkPickedUp)
			r.Post("/order/arrive", c.MarkArrived)
			r.Post("/order/otp", c.VerifyOTP)

			r.Post("/availability", c.ToggleAvailability)
			r.Post("/location", c.UpdateLocation)

			r.Get("/earnings", c.GetEarnings)
			r.Get("/earnings/history", c.GetEarningsHistory)
		})
	})

	return r
}
