package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ldk-ekonomi/kas-backend/internal/httputil"
	"github.com/ldk-ekonomi/kas-backend/internal/models"
	"github.com/ldk-ekonomi/kas-backend/internal/report"
	"github.com/ldk-ekonomi/kas-backend/internal/types"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:year/:month", OptionsReport)
	r.GET("/:year/:month", GetReport)
	r.GET("/:year/:month/export", GetReportExport)
}

type ReportResponse struct {
	Data  *report.Statement `json:"data"`
	Error *string           `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/reports/{year}/{month} [options]
func OptionsReport(c *gin.Context) {
	var uri URIPeriod
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get monthly statement
// @Description	Returns the printable statement for a month, signed by the acting identity
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Failure		401		{object}	httpError
// @Failure		500		{object}	ReportResponse
// @Param			year	path		int	true	"Reporting year"
// @Param			month	path		int	true	"Reporting month, 1 to 12"
// @Router			/v1/reports/{year}/{month} [get]
func GetReport(c *gin.Context) {
	var uri URIPeriod
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &e,
		})
		return
	}

	var transactions []models.Transaction
	err = models.DB.Order("date ASC, created_at ASC").Find(&transactions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &e,
		})
		return
	}

	identity := currentIdentity(c)
	month := types.NewMonth(uri.Year, uri.Month)

	statement := report.NewStatement(transactions, month, identity.Name, identity.Role, time.Now().In(time.UTC))
	c.JSON(http.StatusOK, ReportResponse{Data: &statement})
}

// @Summary		Export monthly report
// @Description	Returns the monthly report as a semicolon separated file for spreadsheet tools
// @Tags			Reports
// @Produce		text/csv
// @Success		200		{string}	string
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			year	path		int	true	"Reporting year"
// @Param			month	path		int	true	"Reporting month, 1 to 12"
// @Router			/v1/reports/{year}/{month}/export [get]
func GetReportExport(c *gin.Context) {
	var uri URIPeriod
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var transactions []models.Transaction
	err = models.DB.Order("date ASC, created_at ASC").Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	month := types.NewMonth(uri.Year, uri.Month)
	data := report.ExportCSV(transactions, month)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.ExportFilename(month)))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
