package http

import (
	"net/http"

	"crisis-alert-srv/internal/model"
	"crisis-alert-srv/internal/riskevent"
	pkgErrors "crisis-alert-srv/pkg/errors"
	"crisis-alert-srv/pkg/response"
)

const (
	ErrCodeInvalidQuery     = 130001
	ErrCodeInvalidLimit     = 130002
	ErrCodeInvalidLevel     = 130003
	ErrCodeStoreUnavailable = 130004
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(ErrCodeInvalidQuery, "Invalid query parameters", http.StatusBadRequest)

	errMapping = response.ErrorMapping{
		riskevent.ErrInvalidLimit:     pkgErrors.NewHTTPError(ErrCodeInvalidLimit, "Limit must be between 1 and 200", http.StatusBadRequest),
		model.ErrInvalidRiskLevel:     pkgErrors.NewHTTPError(ErrCodeInvalidLevel, "Invalid risk level", http.StatusBadRequest),
		riskevent.ErrStoreUnavailable: pkgErrors.NewHTTPError(ErrCodeStoreUnavailable, "Risk event store is not available", http.StatusServiceUnavailable),
	}
)
