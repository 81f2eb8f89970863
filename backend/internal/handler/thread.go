package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
	"github.com/itchan-dev/forum/shared/utils"
)

// AddThread creates a thread owned by the authenticated caller. An owner in
// the body is ignored.
func (h *Handler) AddThread(w http.ResponseWriter, r *http.Request) {
	user, payload, ok := authorizedPayload(w, r)
	if !ok {
		return
	}
	payload["owner"] = user.Id

	added, err := h.thread.AddThread(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	metrics.RecordWrite(metrics.ThreadCreated)
	utils.WriteSuccess(w, http.StatusCreated, api.NewAddThreadResponse(added))
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	detail, err := h.thread.GetThreadDetail(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, api.NewThreadResponse(detail))
}
