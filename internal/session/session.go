// Package session implements the session manager: it answers who is acting
// and what they may do.
//
// A login persists a credential-stripped session record and hands out a
// signed bearer token whose JWT ID references that record. Logout deletes
// the record, which invalidates the token even while its signature is still
// valid.
package session

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"gorm.io/gorm"
)

// Lifetime is the lifetime of a session.
const Lifetime = 7 * 24 * time.Hour

// ContextKey is the gin context key under which the authenticated session is
// stored by the router middleware.
const ContextKey = "kas-session"

var (
	// ErrLoginFailed deliberately does not distinguish between an unknown
	// email and a wrong password, to avoid account enumeration.
	ErrLoginFailed = errors.New("login failed, check your email address and password")

	ErrNoSession = errors.New("you need to be logged in for this")
)

// Identity is the acting user, stripped of credential material.
type Identity struct {
	UserID     uuid.UUID   `json:"id"`
	Name       string      `json:"name" example:"Siti Aminah"`
	Email      string      `json:"email" example:"bendahara@ldk-ubb.com"`
	Role       models.Role `json:"role" example:"BENDAHARA"`
	Avatar     string      `json:"avatar"`
	JoinedDate types.Date  `json:"joinedDate" example:"2023-02-10"`
}

// IsPrivileged reports whether the identity may manage members.
func (i Identity) IsPrivileged() bool {
	return i.Role.IsPrivileged()
}

// secret returns the key used to sign session tokens.
func secret() []byte {
	if s, ok := os.LookupEnv("TOKEN_SECRET"); ok {
		return []byte(s)
	}

	// Development fallback, main warns when TOKEN_SECRET is unset
	return []byte("kas-backend-insecure-development-secret")
}

// Login verifies the credentials against the user collection, persists a
// credential-stripped session record and returns the identity together with
// a signed bearer token.
//
// The comparison is exact and case-sensitive string equality on both email
// and password. Credentials are plaintext on purpose, see the User model.
func Login(db *gorm.DB, email, password string) (Identity, string, error) {
	var user models.User
	err := db.First(&user, "email = ? AND password = ?", email, password).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return Identity{}, "", ErrLoginFailed
		}
		return Identity{}, "", err
	}

	session := models.Session{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Avatar:     user.Avatar,
		JoinedDate: user.JoinedDate,
		ExpiresAt:  time.Now().In(time.UTC).Add(Lifetime),
	}

	err = db.Create(&session).Error
	if err != nil {
		return Identity{}, "", err
	}

	token, err := signToken(session)
	if err != nil {
		return Identity{}, "", err
	}

	return identityOf(user), token, nil
}

// signToken issues the bearer token for a session.
func signToken(session models.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        session.ID.String(),
		Subject:   session.UserID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// FromToken verifies a bearer token and loads the persisted session record
// it references. A token whose session record has been deleted is treated
// as not logged in.
func FromToken(db *gorm.DB, token string) (models.Session, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Session{}, ErrNoSession
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return models.Session{}, ErrNoSession
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return models.Session{}, ErrNoSession
	}

	var session models.Session
	err = db.First(&session, id).Error
	if err != nil {
		return models.Session{}, ErrNoSession
	}

	if time.Now().After(session.ExpiresAt) {
		return models.Session{}, ErrNoSession
	}

	return session, nil
}

// CurrentIdentity resolves a session to the acting identity.
//
// When the backing user record still exists, the live and possibly updated
// record wins. Otherwise the session snapshot is returned as fallback, so a
// just-created session survives a slow backend re-sync. Role or name changes
// made by an admin are therefore only reflected once the user record is
// re-fetched successfully.
func CurrentIdentity(db *gorm.DB, session models.Session) Identity {
	var user models.User
	err := db.First(&user, session.UserID).Error
	if err == nil {
		return identityOf(user)
	}

	return Identity{
		UserID:     session.UserID,
		Name:       session.Name,
		Email:      session.Email,
		Role:       session.Role,
		Avatar:     session.Avatar,
		JoinedDate: session.JoinedDate,
	}
}

// Logout deletes the persisted session record. Deleting an already deleted
// session is a no-op, not an error.
func Logout(db *gorm.DB, session models.Session) error {
	return db.Delete(&models.Session{}, session.ID).Error
}

// Refresh updates the snapshots of all sessions of a user after a profile
// update, so the acting user sees their own changes immediately.
func Refresh(db *gorm.DB, user models.User) error {
	return db.Model(&models.Session{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]any{
			"name":        user.Name,
			"email":       user.Email,
			"role":        user.Role,
			"avatar":      user.Avatar,
			"joined_date": user.JoinedDate,
		}).Error
}

func identityOf(user models.User) Identity {
	return Identity{
		UserID:     user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Avatar:     user.Avatar,
		JoinedDate: user.JoinedDate,
	}
}
