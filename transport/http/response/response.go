package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/shared/logger"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends the payload as the response body
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithNoContent sends an empty response with the given code
func WithNoContent(writer http.ResponseWriter, code int) {
	writer.WriteHeader(code)
}

// WithError sends the message of the Failure carried by err. Errors without a Failure
// are reported as internal errors and their text stays in the logs.
func WithError(writer http.ResponseWriter, err error) {
	var fail *failure.Failure

	if !errors.As(err, &fail) || fail.Kind == failure.KindInternal {
		logger.ErrorWithStack(err)

		errMsg := http.StatusText(http.StatusInternalServerError)
		response(writer, http.StatusInternalServerError, Error{Error: &errMsg})

		return
	}

	response(writer, fail.Code, Error{Error: &fail.Message})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
