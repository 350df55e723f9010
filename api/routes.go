package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public endpoints and the authenticated group
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)

		r.Post("/users", handlers.userHandler.registerUser())
		r.Post("/users/login", handlers.userHandler.login())
		r.Get("/users/{userID}", handlers.userHandler.getUser())

		r.Get("/posts", handlers.postHandler.listPosts())
		r.Get("/posts/{postID}", handlers.postHandler.getPost())

		r.Get("/tags", handlers.tagHandler.listTags())
		r.Get("/ratings/{postID}", handlers.ratingHandler.getAverage())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/posts", handlers.postHandler.createPost())
		r.Put("/posts/{postID}", handlers.postHandler.updatePost())
		r.Delete("/posts/{postID}", handlers.postHandler.deletePost())
		r.Post("/posts/{postID}/tags", handlers.tagHandler.assignTags())

		r.Post("/tags", handlers.tagHandler.createTag())
		r.Post("/ratings", handlers.ratingHandler.ratePost())
	})
}
