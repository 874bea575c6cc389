package http

import (
	"net/http"

	"crisis-alert-srv/internal/alert"
	pkgErrors "crisis-alert-srv/pkg/errors"
	"crisis-alert-srv/pkg/response"
)

const (
	ErrCodeInvalidBody     = 140001
	ErrCodeInvalidCallback = 140002
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(ErrCodeInvalidBody, "Invalid request body", http.StatusBadRequest)

	errMapping = response.ErrorMapping{
		alert.ErrInvalidCallback: pkgErrors.NewHTTPError(ErrCodeInvalidCallback, "Callback type is required", http.StatusBadRequest),
	}
)
