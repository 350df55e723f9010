package api

import "time"

// routeHandlers groups every handler the router dispatches to
type routeHandlers struct {
	userHandler   userHandler
	postHandler   postHandler
	tagHandler    tagHandler
	ratingHandler ratingHandler
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type createPostRequest struct {
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	PublishDate *time.Time `json:"publishDate"`
	Cover       *string    `json:"cover"`
	Published   bool       `json:"published"`
	Tags        []string   `json:"tags"`
}

type createTagRequest struct {
	Name string `json:"name"`
}

type assignTagsRequest struct {
	Tags []string `json:"tags"`
}

type ratingRequest struct {
	PostID int64   `json:"postId"`
	Value  float64 `json:"value"`
}
