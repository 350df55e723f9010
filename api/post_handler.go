package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/app-blogs/backend/database"
	"github.com/app-blogs/backend/errs"
	"github.com/app-blogs/backend/models"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	postRepo  *database.PostRepo
}

func newPostHandler(postRepo *database.PostRepo) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		postRepo:  postRepo,
	}
}

// PostPage is one page of posts plus the total count across all pages
type PostPage struct {
	Total int64          `json:"total"`
	Posts []*models.Post `json:"posts"`
}

// createPost inserts a post with its tags. The author is always the
// authenticated caller, regardless of what the body claims.
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authorID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req createPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.Malformed("post request"))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Body == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("body"))
			return
		}

		post := models.Post{
			AuthorID:  authorID,
			Title:     req.Title,
			Body:      req.Body,
			Cover:     req.Cover,
			Published: req.Published,
		}
		if req.PublishDate != nil {
			post.PublishDate = *req.PublishDate
		}

		postID, err := h.postRepo.Create(&post, req.Tags)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "post", err))
			return
		}

		created, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "post", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

// getPost returns one post with its tags
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "post", err))
			return
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// listPosts returns a page of posts ordered by publish date descending
func (h postHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset := queryInt(r, "offset", 0)
		limit := queryInt(r, "limit", 10)
		if offset < 0 || limit < 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("offset and limit must be non-negative"))
			return
		}

		total, posts, err := h.postRepo.FindPage(offset, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "posts", err))
			return
		}

		if posts == nil {
			posts = []*models.Post{}
		}
		h.responder.WriteJSON(w, PostPage{Total: total, Posts: posts})
	}
}

// updatePost applies a partial update; omitted fields keep their value
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		var patch models.PostPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post patch body")
			h.responder.WriteError(w, errs.Malformed("post patch"))
			return
		}

		post, err := h.postRepo.Update(postID, patch)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "post", err))
			return
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// deletePost removes a post and its associations; idempotent 404 on repeats
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		removed, err := h.postRepo.Delete(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "post", err))
			return
		}

		if !removed {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "deleted"})
	}
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return val
}
