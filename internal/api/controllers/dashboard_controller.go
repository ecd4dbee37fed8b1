package controllers

import (
	"github.com/gin-gonic/gin"

	"messhall/internal/services"
	"messhall/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Stats godoc
// @Summary Overview statistics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response_models.StatsResponse
// @Router /admin/stats [get]
func (d *DashboardController) Stats(c *gin.Context) {
	stats, err := d.dashboardService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Stats fetched successfully")
}

// DailyReport godoc
// @Summary Meals served on a day
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} response_models.DailyReport
// @Router /admin/reports/daily [get]
func (d *DashboardController) DailyReport(c *gin.Context) {
	report, err := d.dashboardService.DailyReport(c.Request.Context(), c.Query("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Report fetched successfully")
}

// ListTransactions godoc
// @Summary Redemption log for a day
// @Description Newest first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {array} db_models.MealTransaction
// @Router /admin/transactions [get]
func (d *DashboardController) ListTransactions(c *gin.Context) {
	entries, err := d.dashboardService.ListTransactions(c.Request.Context(), c.Query("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Transactions fetched successfully")
}
