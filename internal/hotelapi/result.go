package hotelapi

import (
	"net/http"

	"github.com/ibeloyar/hotelportal/internal/model"
)

// Result is a decoded hotel service response.
//
// Exactly one branch holds: either Status is true and Result carries the payload
// (nil when the service sends none), or Err reports the code and message.
type Result[T any] struct {
	Status     bool
	StatusCode int
	Message    string
	Result     *T
	Token      string
}

// Empty is the payload type of calls whose result is always null.
type Empty struct{}

// normalizedCodes never leak a payload to callers.
var normalizedCodes = map[int]bool{
	http.StatusBadRequest: true,
	http.StatusForbidden:  true,
	http.StatusNotFound:   true,
}

func IsNormalized(code int) bool {
	return normalizedCodes[code]
}

func (r Result[T]) Err() *model.APIError {
	if r.Status && r.StatusCode < http.StatusBadRequest {
		return nil
	}

	code := r.StatusCode
	if code < http.StatusBadRequest {
		code = http.StatusBadRequest
	}

	return &model.APIError{
		Code:    code,
		Message: r.Message,
	}
}
