package api

import (
	"github.com/app-blogs/backend/auth"
	"github.com/app-blogs/backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, tokens *auth.TokenService) *routeHandlers {
	return &routeHandlers{
		userHandler:   newUserHandler(database.UserRepo(), tokens),
		postHandler:   newPostHandler(database.PostRepo()),
		tagHandler:    newTagHandler(database.TagRepo()),
		ratingHandler: newRatingHandler(database.RatingRepo()),
	}
}
