package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/session"
	kas_uuid "github.com/ldk-ekonomi/kas-backend/internal/uuid"
)

type URIID struct {
	ID kas_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIPeriod struct {
	Year  int        `uri:"year" binding:"required,min=2000,max=2200" example:"2024"` // Reporting year
	Month time.Month `uri:"month" binding:"required,min=1,max=12" example:"3"`        // Reporting month
}

// currentSession returns the session stored by the authentication middleware.
func currentSession(c *gin.Context) models.Session {
	return c.MustGet(session.ContextKey).(models.Session)
}

// currentIdentity resolves the acting identity for the request.
func currentIdentity(c *gin.Context) session.Identity {
	return session.CurrentIdentity(models.DB, currentSession(c))
}
