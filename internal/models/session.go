package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"gorm.io/gorm"
)

// Session is a persisted, credential-stripped identity snapshot.
//
// The snapshot fields are copied from the user record at login time. They
// serve as fallback when the backing user record has been deleted while the
// session is still active, so a just-created session survives a slow
// re-sync. The password is never part of a session.
type Session struct {
	ID         uuid.UUID  `json:"id"` // Also used as the JWT ID of the issued token
	CreatedAt  time.Time  `json:"createdAt"`
	UserID     uuid.UUID  `json:"userId"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Avatar     string     `json:"avatar"`
	JoinedDate types.Date `json:"joinedDate"`
	ExpiresAt  time.Time  `json:"expiresAt"`
}

// BeforeCreate is set to generate a UUID for the session.
func (s *Session) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
