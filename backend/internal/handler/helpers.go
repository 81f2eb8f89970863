package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

// maxBodySize caps JSON request bodies. Threads and comments are plain text.
const maxBodySize = 1 << 20

var errNoUser = &internal_errors.ErrorWithStatusCode{Message: "Missing authentication", StatusCode: http.StatusUnauthorized}

// authorizedPayload returns the caller and the decoded request body, or
// writes the failure response and returns ok=false.
func authorizedPayload(w http.ResponseWriter, r *http.Request) (user *domain.User, payload domain.Payload, ok bool) {
	user = mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errNoUser)
		return nil, nil, false
	}

	payload, err := utils.DecodePayload(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return nil, nil, false
	}
	return user, payload, true
}
