package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
	"github.com/itchan-dev/forum/shared/utils"
)

// AddComment posts to the thread named in the path. Thread and owner in the
// body are overwritten by the path and the token.
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	user, payload, ok := authorizedPayload(w, r)
	if !ok {
		return
	}
	payload["thread"] = chi.URLParam(r, "threadId")
	payload["owner"] = user.Id

	added, err := h.comment.AddComment(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.RecordWrite(metrics.CommentCreated)
	utils.WriteSuccess(w, http.StatusCreated, api.NewAddCommentResponse(added))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errNoUser)
		return
	}

	err := h.comment.DeleteComment(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.RecordWrite(metrics.CommentDeleted)
	utils.WriteSuccess(w, http.StatusOK, nil)
}
