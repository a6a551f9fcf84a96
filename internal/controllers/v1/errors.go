package v1

import (
	"errors"
	"net/http"

	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/session"
)

type httpError struct {
	Error string `json:"error" example:"there is no user matching your query"`
}

var errNotPrivileged = errors.New("you need the KETUA or BENDAHARA role for this")

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, session.ErrNoSession) || errors.Is(err, session.ErrLoginFailed) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, errNotPrivileged) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}
