package client

import (
	"net/http"

	"github.com/dmitrijs2005/dashapp/internal/common"
)

// APIError carries the server's detail message alongside a sentinel chosen
// by status code, so callers can both display the message and match with
// errors.Is.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return common.ErrorValidation
	default:
		return common.ErrorInternal
	}
}

// fallbackDetail supplies a message when the server's error body cannot be
// decoded.
func fallbackDetail(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "Session expired"
	case http.StatusNotFound:
		return "Not found"
	default:
		return "Something went wrong"
	}
}
