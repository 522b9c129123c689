package http

import (
	"github.com/go-chi/chi/v5"
)

func InitRoutes(r *chi.Mux, h *Controller) *chi.Mux {
	r.Get("/ping", h.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Get("/", h.GetUser)
			r.Post("/login", h.Login)
			r.Post("/signup", h.Signup)
			r.Post("/logout", h.Logout)
			r.Get("/check", h.CheckLogin)
			r.Get("/account", h.Account)
			r.Put("/profile", h.UpdateProfile)
			r.Put("/password", h.UpdatePassword)
			r.Post("/forgot", h.ForgotPassword)
		})

		r.Route("/verify", func(r chi.Router) {
			r.Post("/email", h.VerifyEmail)
			r.Post("/code", h.GenerateEmailCode)
		})

		r.Route("/member/orders", func(r chi.Router) {
			r.Get("/", h.MemberOrders)
			r.Post("/more", h.MoreOrders)
			r.Get("/{id}", h.GetOrder)
			r.Delete("/{id}", h.DeleteOrder)
		})

		r.Post("/orders", h.CreateOrder)

		r.Get("/rooms", h.ListRooms)
		r.Get("/rooms/{id}", h.GetRoom)
		r.Get("/home", h.Home)
		r.Get("/news/{id}", h.GetNews)
		r.Get("/culinary/{id}", h.GetCulinary)
	})

	return r
}
