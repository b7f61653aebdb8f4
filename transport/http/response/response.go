package response

import (
	"encoding/json"
	"net/http"

	"venue/shared/constant"
	"venue/shared/failure"
	"venue/shared/logger"
)

// Envelope is the body of every response. Status mirrors the transport status.
type Envelope struct {
	Status  int     `json:"status"`
	Message *string `json:"msg,omitempty"`
	Data    any     `json:"data,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, Envelope{Status: code, Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, Envelope{Status: code, Data: jsonPayload})
}

// WithMessageAndJSON sends a response carrying both a message and a payload
func WithMessageAndJSON(writer http.ResponseWriter, code int, message string, jsonPayload any) {
	response(writer, Envelope{Status: code, Message: &message, Data: jsonPayload})
}

// WithError sends a response with an error message. Errors without a
// failure code are logged and answered with a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	if code == http.StatusInternalServerError {
		logger.ErrorWithStack(err)

		errMsg = constant.ResponseErrorInternal
	}

	WithMessage(writer, code, errMsg)
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

// WithRouteNotFound answers unknown paths.
func WithRouteNotFound(writer http.ResponseWriter, _ *http.Request) {
	WithMessage(writer, http.StatusNotFound, constant.ResponseErrorRouteNotFound)
}

// WithMethodNotAllowed answers known paths hit with the wrong method.
func WithMethodNotAllowed(writer http.ResponseWriter, _ *http.Request) {
	WithMessage(writer, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed)
}

func response(writer http.ResponseWriter, payload Envelope) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(payload.Status)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
