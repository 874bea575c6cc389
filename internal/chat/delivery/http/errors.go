package http

import (
	"net/http"

	"crisis-alert-srv/internal/chat"
	pkgErrors "crisis-alert-srv/pkg/errors"
	"crisis-alert-srv/pkg/response"
)

const (
	ErrCodeValidation      = 110001
	ErrCodeMessageRequired = 110002
	ErrCodeUserIDRequired  = 110003
	ErrCodeInvalidBody     = 110004
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(ErrCodeInvalidBody, "Invalid request body", http.StatusBadRequest)

	errMapping = response.ErrorMapping{
		chat.ErrMessageRequired: pkgErrors.NewHTTPError(ErrCodeMessageRequired, "Message is required", http.StatusBadRequest),
		chat.ErrUserIDRequired:  pkgErrors.NewHTTPError(ErrCodeUserIDRequired, "User id is required", http.StatusBadRequest),
	}
)
