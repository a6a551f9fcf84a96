package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ldk-ekonomi/kas-backend/internal/httputil"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/session"
)

// RegisterSessionRoutes registers the routes for sessions with the
// RouterGroups that are passed. Login is the only operation that works
// without a token, it gets the unauthenticated group.
func RegisterSessionRoutes(public, protected *gin.RouterGroup) {
	public.OPTIONS("", OptionsSession)
	public.POST("", Login)

	protected.GET("", GetSession)
	protected.DELETE("", Logout)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Session
// @Success		204
// @Router			/v1/session [options]
func OptionsSession(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Login
// @Description	Verifies the credentials and returns the identity together with a bearer token
// @Tags			Session
// @Accept			json
// @Produce		json
// @Success		201			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		SessionEditable	true	"Credentials"
// @Router			/v1/session [post]
func Login(c *gin.Context) {
	var editable SessionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	identity, token, err := session.Login(models.DB, editable.Email, editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{
		Data: &SessionData{
			Identity: identity,
			Token:    token,
		},
	})
}

// @Summary		Current identity
// @Description	Returns the identity of the acting user. The live user record wins over the session snapshot.
// @Tags			Session
// @Produce		json
// @Success		200	{object}	IdentityResponse
// @Failure		401	{object}	httpError
// @Router			/v1/session [get]
func GetSession(c *gin.Context) {
	identity := currentIdentity(c)
	c.JSON(http.StatusOK, IdentityResponse{
		Data: &identity,
	})
}

// @Summary		Logout
// @Description	Deletes the session record, invalidating the token. Logging out twice is not an error.
// @Tags			Session
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/session [delete]
func Logout(c *gin.Context) {
	err := session.Logout(models.DB, currentSession(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
