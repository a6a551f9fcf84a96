package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ldk-ekonomi/kas-backend/internal/httputil"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/report"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterEventRoutes registers the routes for events with
// the RouterGroup that is passed.
func RegisterEventRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEventList)
		r.GET("", GetEvents)
		r.POST("", CreateEvent)
	}

	// Event with ID
	{
		r.OPTIONS("/:id", OptionsEventDetail)
		r.GET("/:id", GetEvent)
		r.PATCH("/:id", UpdateEvent)
		r.DELETE("/:id", DeleteEvent)
		r.GET("/:id/stats", GetEventStats)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/v1/events [options]
func OptionsEventList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/events/{id} [options]
func OptionsEventDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Event{}, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create event
// @Description	Creates a new event
// @Tags			Events
// @Accept			json
// @Produce		json
// @Success		201		{object}	EventResponse
// @Failure		400		{object}	EventResponse
// @Failure		500		{object}	EventResponse
// @Param			event	body		EventEditable	true	"Event"
// @Router			/v1/events [post]
func CreateEvent(c *gin.Context) {
	var editable EventEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	event := editable.model()

	err = models.DB.Create(&event).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	data := newEvent(event)
	c.JSON(http.StatusCreated, EventResponse{Data: &data})
}

// @Summary		Get events
// @Description	Returns a list of events
// @Tags			Events
// @Produce		json
// @Success		200	{object}	EventListResponse
// @Failure		400	{object}	EventListResponse
// @Failure		500	{object}	EventListResponse
// @Router			/v1/events [get]
// @Param			status	query	string	false	"Filter by lifecycle status"
// @Param			search	query	string	false	"Search for this text in name and description"
// @Param			month	query	string	false	"Filter by month of the event date, format YYYY-MM"
func GetEvents(c *gin.Context) {
	var filter EventQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("date ASC").
		Where(&filterModel, queryFields...)

	if slices.Contains(setFields, "Search") && filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", search, search)
	}

	var events []models.Event
	err := q.Find(&events).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventListResponse{
			Error: &e,
		})
		return
	}

	// The month filter uses the same period matching as the reports
	if slices.Contains(setFields, "Month") && filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), EventListResponse{
				Error: &e,
			})
			return
		}

		filtered := make([]models.Event, 0, len(events))
		for _, event := range events {
			if month.Contains(event.Date) {
				filtered = append(filtered, event)
			}
		}
		events = filtered
	}

	data := make([]Event, 0, len(events))
	for _, event := range events {
		data = append(data, newEvent(event))
	}

	c.JSON(http.StatusOK, EventListResponse{Data: data})
}

// @Summary		Get event
// @Description	Returns a specific event
// @Tags			Events
// @Produce		json
// @Success		200	{object}	EventResponse
// @Failure		400	{object}	EventResponse
// @Failure		404	{object}	EventResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/events/{id} [get]
func GetEvent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	var event models.Event
	err = models.DB.First(&event, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	data := newEvent(event)
	c.JSON(http.StatusOK, EventResponse{Data: &data})
}

// @Summary		Get event statistics
// @Description	Returns the event together with its budget statistics, computed from the linked transactions
// @Tags			Events
// @Produce		json
// @Success		200	{object}	EventStatsResponse
// @Failure		400	{object}	EventStatsResponse
// @Failure		404	{object}	EventStatsResponse
// @Failure		500	{object}	EventStatsResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/events/{id}/stats [get]
func GetEventStats(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventStatsResponse{
			Error: &e,
		})
		return
	}

	var event models.Event
	err = models.DB.First(&event, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventStatsResponse{
			Error: &e,
		})
		return
	}

	var transactions []models.Transaction
	err = models.DB.Where("event_id = ?", event.ID).Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventStatsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, EventStatsResponse{
		Data: &EventStats{
			Event: newEvent(event),
			Stats: report.EventBudgetStats(event, transactions),
		},
	})
}

// @Summary		Update event
// @Description	Update an existing event. Only values to be updated need to be specified.
// @Tags			Events
// @Accept			json
// @Produce		json
// @Success		200		{object}	EventResponse
// @Failure		400		{object}	EventResponse
// @Failure		404		{object}	EventResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			event	body		EventEditable	true	"Event"
// @Router			/v1/events/{id} [patch]
func UpdateEvent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	var event models.Event
	err = models.DB.First(&event, uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EventEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	var editable EventEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&event).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	data := newEvent(event)
	c.JSON(http.StatusOK, EventResponse{Data: &data})
}

// @Summary		Delete event
// @Description	Deletes an event. Linked transactions are kept, their event reference then resolves to nothing.
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var event models.Event
	err = models.DB.First(&event, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&event).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
