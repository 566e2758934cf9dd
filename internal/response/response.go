// Package response defines the uniform envelope returned by every API
// endpoint. Handlers construct exactly one envelope per request through
// the named factories below; each factory fixes the status code and the
// success flag for its case so the pairing can never drift between
// endpoints. The envelope carries its own status code, so handlers reply
// with c.JSON(r.StatusCode, r).
package response

import (
	"fmt"
	"net/http"
)

// ApiResponse is the wire envelope. Data is nil on error responses and
// on NoContent; Message may be empty (NotFound without a message).
type ApiResponse struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// Ok wraps a successful read or update: 200 with a payload.
func Ok(data any, message string) *ApiResponse {
	return &ApiResponse{StatusCode: http.StatusOK, Success: true, Message: message, Data: data}
}

// CreatedAt wraps a successful create: 201 with the created resource.
func CreatedAt(data any, message string) *ApiResponse {
	return &ApiResponse{StatusCode: http.StatusCreated, Success: true, Message: message, Data: data}
}

// NoContent wraps a successful delete: 200 with an empty payload. The
// name follows the factory set of the envelope contract; the status is
// deliberately 200, not 204, so the message still reaches the client.
func NoContent(message string) *ApiResponse {
	return &ApiResponse{StatusCode: http.StatusOK, Success: true, Message: message}
}

// BadRequest signals malformed or missing input: 400.
func BadRequest(message string) *ApiResponse {
	return &ApiResponse{StatusCode: http.StatusBadRequest, Success: false, Message: message}
}

// NotFound signals that an id did not resolve: 404. The message is
// optional; called without arguments the envelope carries none.
func NotFound(message ...string) *ApiResponse {
	r := &ApiResponse{StatusCode: http.StatusNotFound, Success: false}
	if len(message) > 0 {
		r.Message = message[0]
	}
	return r
}

// Conflict signals a uniqueness or referential violation: 409.
func Conflict(message string) *ApiResponse {
	return &ApiResponse{StatusCode: http.StatusConflict, Success: false, Message: message}
}

// Error wraps an unexpected fault with a caller-chosen status (500 in
// practice). The message is the fixed prefix concatenated with the
// error detail.
func Error(statusCode int, prefix string, detail string) *ApiResponse {
	return &ApiResponse{StatusCode: statusCode, Success: false, Message: fmt.Sprintf("%s%s", prefix, detail)}
}
