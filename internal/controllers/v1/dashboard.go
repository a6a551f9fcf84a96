package v1

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/ldk-ekonomi/kas-backend/internal/httputil"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/report"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// memberPreviewLimit is the number of members shown on the dashboard.
const memberPreviewLimit = 5

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// Dashboard is the aggregated view over all records.
type Dashboard struct {
	TotalIncome  decimal.Decimal        `json:"totalIncome" example:"1000000"`
	TotalExpense decimal.Decimal        `json:"totalExpense" example:"500000"`
	Balance      decimal.Decimal        `json:"balance" example:"500000"`
	Series       []report.DateBucket    `json:"series"`    // Income and expense summed per transaction date
	Breakdown    []report.CategoryTotal `json:"breakdown"` // Expenses per category, largest first
	Events       []Event                `json:"events"`    // Relevant events, ongoing first
	Privileged   bool                   `json:"privileged"`
	MemberCount  *int64                 `json:"memberCount"`      // Only set for privileged roles
	EventCount   *int64                 `json:"activeEventCount"` // Only set for unprivileged roles
	Members      []User                 `json:"members"`          // Preview, only set for privileged roles
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`
	Error *string    `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns totals, a per-date series, the expense breakdown and relevant events. Failing reads degrade to empty data instead of failing the whole dashboard.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		401	{object}	httpError
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	identity := currentIdentity(c)

	// Partial data beats no dashboard, failed reads only get logged
	var transactions []models.Transaction
	err := models.DB.Find(&transactions).Error
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("dashboard transactions: %v", err)
		transactions = nil
	}

	var events []models.Event
	err = models.DB.Find(&events).Error
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("dashboard events: %v", err)
		events = nil
	}

	relevant := report.RelevantEvents(events)
	eventData := make([]Event, 0, len(relevant))
	for _, event := range relevant {
		eventData = append(eventData, newEvent(event))
	}

	dashboard := Dashboard{
		TotalIncome:  report.SumByType(transactions, models.TypeIncome),
		TotalExpense: report.SumByType(transactions, models.TypeExpense),
		Balance:      report.Balance(transactions),
		Series:       report.BucketByDate(transactions),
		Breakdown:    report.BreakdownByCategory(transactions, models.TypeExpense),
		Events:       eventData,
		Privileged:   identity.IsPrivileged(),
	}

	if identity.IsPrivileged() {
		var count int64
		err = models.DB.Model(&models.User{}).Count(&count).Error
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("dashboard member count: %v", err)
		} else {
			dashboard.MemberCount = &count
		}

		var members []models.User
		err = models.DB.Order("joined_date DESC").Limit(memberPreviewLimit).Find(&members).Error
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("dashboard members: %v", err)
		}

		dashboard.Members = make([]User, 0, len(members))
		for _, member := range members {
			dashboard.Members = append(dashboard.Members, newUser(member))
		}
	} else {
		// Regular members see the number of active events instead
		var count int64
		for _, event := range events {
			if event.Status != models.EventCompleted {
				count++
			}
		}
		dashboard.EventCount = &count
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}
