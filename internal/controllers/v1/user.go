package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ldk-ekonomi/kas-backend/internal/httputil"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/session"
	"golang.org/x/exp/slices"
)

var errSelfUpdateRestricted = errors.New("you may only update your own name, avatar and password")

// selfUpdateFields are the fields a member may change on their own record
// without a privileged role.
var selfUpdateFields = map[string]bool{
	"Name":     true,
	"Avatar":   true,
	"Password": true,
}

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUserList)
		r.GET("", GetUsers)
		r.POST("", CreateUser)
	}

	// User with ID
	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", GetUser)
		r.PATCH("/:id", UpdateUser)
		r.DELETE("/:id", DeleteUser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.User{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create user
// @Description	Creates a new member record. Requires a privileged role.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		403		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users [post]
func CreateUser(c *gin.Context) {
	if !currentIdentity(c).IsPrivileged() {
		e := errNotPrivileged.Error()
		c.JSON(status(errNotPrivileged), UserResponse{
			Error: &e,
		})
		return
	}

	var editable UserEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	user := editable.model()

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Get users
// @Description	Returns a list of members. Requires a privileged role.
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserListResponse
// @Failure		403	{object}	UserListResponse
// @Failure		500	{object}	UserListResponse
// @Router			/v1/users [get]
// @Param			role	query	string	false	"Filter by role"
// @Param			search	query	string	false	"Search for this text in name and email"
func GetUsers(c *gin.Context) {
	if !currentIdentity(c).IsPrivileged() {
		e := errNotPrivileged.Error()
		c.JSON(status(errNotPrivileged), UserListResponse{
			Error: &e,
		})
		return
	}

	var filter UserQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	if slices.Contains(setFields, "Search") && filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", search, search)
	}

	var users []models.User
	err := q.Find(&users).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserListResponse{
			Error: &e,
		})
		return
	}

	data := make([]User, 0, len(users))
	for _, user := range users {
		data = append(data, newUser(user))
	}

	c.JSON(http.StatusOK, UserListResponse{Data: data})
}

// @Summary		Get user
// @Description	Returns a specific member. Requires a privileged role or the own record.
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	UserResponse
// @Failure		403	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [get]
func GetUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	identity := currentIdentity(c)
	if !identity.IsPrivileged() && identity.UserID != uri.ID.UUID {
		e := errNotPrivileged.Error()
		c.JSON(status(errNotPrivileged), UserResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update user
// @Description	Update a member. Only values to be updated need to be specified. Without a privileged role only the own name, avatar and password can be changed.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		403		{object}	UserResponse
// @Failure		404		{object}	UserResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users/{id} [patch]
func UpdateUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	identity := currentIdentity(c)
	self := identity.UserID == uri.ID.UUID
	if !identity.IsPrivileged() && !self {
		e := errNotPrivileged.Error()
		c.JSON(status(errNotPrivileged), UserResponse{
			Error: &e,
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	// Self-service updates are restricted to the profile fields
	if !identity.IsPrivileged() {
		for _, field := range updateFields {
			if name, ok := field.(string); !ok || !selfUpdateFields[name] {
				e := errSelfUpdateRestricted.Error()
				c.JSON(status(errSelfUpdateRestricted), UserResponse{
					Error: &e,
				})
				return
			}
		}
	}

	var editable UserEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&user).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	// Keep the session snapshots of the user in line with the record
	if self {
		err = session.Refresh(models.DB, user)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), UserResponse{
				Error: &e,
			})
			return
		}
	}

	data := newUser(user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Delete user
// @Description	Deletes a member. Requires a privileged role. The own record cannot be deleted.
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	identity := currentIdentity(c)
	if !identity.IsPrivileged() {
		c.JSON(status(errNotPrivileged), httpError{
			Error: errNotPrivileged.Error(),
		})
		return
	}

	// Self-deletion is rejected before the database is touched
	if identity.UserID == uri.ID.UUID {
		c.JSON(status(models.ErrDeleteOwnUser), httpError{
			Error: models.ErrDeleteOwnUser.Error(),
		})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&user).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
