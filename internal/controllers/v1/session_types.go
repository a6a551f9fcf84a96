package v1

import (
	"github.com/ldk-ekonomi/kas-backend/internal/session"
)

// SessionEditable represents the credentials for a login.
type SessionEditable struct {
	Email    string `json:"email" example:"bendahara@ldk-ubb.com"`
	Password string `json:"password" example:"rahasia123"`
}

// SessionData is the identity and the bearer token for a fresh session.
type SessionData struct {
	session.Identity
	Token string `json:"token"`
}

type SessionResponse struct {
	Data  *SessionData `json:"data"`
	Error *string      `json:"error" example:"login failed, check your email address and password"`
}

type IdentityResponse struct {
	Data  *session.Identity `json:"data"`
	Error *string           `json:"error"`
}
