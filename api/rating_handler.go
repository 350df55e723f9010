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
)

type ratingHandler struct {
	responder  Responder
	logger     zerolog.Logger
	ratingRepo *database.RatingRepo
}

func newRatingHandler(ratingRepo *database.RatingRepo) ratingHandler {
	logger := log.With().Str("handlerName", "ratingHandler").Logger()

	return ratingHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		ratingRepo: ratingRepo,
	}
}

// ratePost records one rating for a post. The value is validated before
// anything is persisted; out-of-range is a rejected request.
func (h ratingHandler) ratePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ratingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.Malformed("rating request"))
			return
		}

		if req.PostID == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("postId"))
			return
		}
		if req.Value < 0 || req.Value > 5 {
			h.responder.WriteError(w, errs.NewInvalidFieldError("value", "must be between 0 and 5"))
			return
		}

		if err := h.ratingRepo.Record(req.PostID, req.Value); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("record", "rating", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, map[string]string{"status": "recorded"})
	}
}

// getAverage returns the derived mean and count for a post
func (h ratingHandler) getAverage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid postID"))
			return
		}

		summary, err := h.ratingRepo.Average(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("aggregate", "ratings", err))
			return
		}

		if summary == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		h.responder.WriteJSON(w, summary)
	}
}
