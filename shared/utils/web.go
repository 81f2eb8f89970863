package utils

import (
	"encoding/json"
	stdErrors "errors"
	"io"
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

const internalErrorMessage = "An internal server error occurred"

// WriteErrorAndStatusCode maps err to a status code and writes the failure
// envelope. Unknown errors are logged and reported as 500 without details.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var validationErr *errors.ValidationError
	if stdErrors.As(err, &validationErr) {
		WriteJSON(w, validationErr.StatusCode(), api.Failure(validationErr.StatusCode(), validationErr.Error()))
		return
	}
	var statusErr *errors.ErrorWithStatusCode
	if stdErrors.As(err, &statusErr) {
		if statusErr.StatusCode >= http.StatusInternalServerError {
			logger.Log.Error("request failed", "status", statusErr.StatusCode, "error", err)
		}
		WriteJSON(w, statusErr.StatusCode, api.Failure(statusErr.StatusCode, statusErr.Message))
		return
	}
	// default error is 500
	logger.Log.Error("internal error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.Failure(http.StatusInternalServerError, internalErrorMessage))
}

func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, api.Success(data))
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	enc := json.NewEncoder(w)
	// responses are JSON, not HTML; text goes out exactly as stored
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// DecodePayload reads a JSON object without imposing a schema, leaving
// presence and type checks to the domain constructors.
func DecodePayload(r io.ReadCloser) (domain.Payload, error) {
	var payload domain.Payload
	if err := Decode(r, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		// a literal null body
		payload = domain.Payload{}
	}
	return payload, nil
}
