package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes builds the chi router: public auth endpoints, bearer-guarded user
// and task endpoints under /api/v1, and static file serving for uploaded
// avatars.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(h.loggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login/access-token", h.LoginAccessToken)
		r.Post("/auth/signup", h.Signup)

		r.Group(func(r chi.Router) {
			r.Use(h.authMiddleware)

			r.Get("/users/me", h.GetMe)
			r.Put("/users/me", h.UpdateMe)
			r.Post("/users/me/avatar", h.UploadAvatar)

			r.Get("/tasks", h.ListTasks)
			r.Post("/tasks", h.CreateTask)
			r.Put("/tasks/{id}", h.UpdateTask)
			r.Delete("/tasks/{id}", h.DeleteTask)
		})
	})

	if h.uploadDir != "" {
		fs := http.StripPrefix("/static/uploads/", http.FileServer(http.Dir(h.uploadDir)))
		r.Get("/static/uploads/*", fs.ServeHTTP)
	}

	return r
}
