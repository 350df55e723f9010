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

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tagRepo   *database.TagRepo
}

func newTagHandler(tagRepo *database.TagRepo) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tagRepo:   tagRepo,
	}
}

// createTag is the strict creation path: a duplicate name is the
// caller's request failing with a conflict, not idempotent success.
func (h tagHandler) createTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.Malformed("tag request"))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		tag, err := h.tagRepo.CreateIfAbsent(req.Name)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "tag", err))
			return
		}

		if tag == nil {
			h.responder.WriteError(w, errs.NewConflictError("tag already exists"))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, tag)
	}
}

// listTags returns every tag sorted by name
func (h tagHandler) listTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tagRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "tags", err))
			return
		}

		if tags == nil {
			tags = []*models.Tag{}
		}
		h.responder.WriteJSON(w, tags)
	}
}

// assignTags links tag names to a post, creating missing tags on the fly
func (h tagHandler) assignTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		var req assignTagsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.Malformed("tag assignment"))
			return
		}

		if len(req.Tags) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("tags"))
			return
		}

		if err := h.tagRepo.AssignToPost(postID, req.Tags); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("assign", "tags", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "assigned"})
	}
}
