package gateway

import (
	"errors"
	"net/http"
)

// HTTPStatus maps a dispatch error to the status this gateway should serve:
// upstream statuses pass through, anything else (network, decode) is a 502.
func HTTPStatus(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return http.StatusBadGateway
}
