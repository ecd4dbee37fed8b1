package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"messhall/internal/models/db_models"
	"messhall/internal/models/request_models"
	"messhall/internal/services"
	mem "messhall/pkg/memcache"
	"messhall/pkg/utils"
)

type MealController struct {
	subscriptions services.SubscriptionServiceInterface
	redemption    services.RedemptionServiceInterface
	gate          *services.MealLockGate
	fees          *services.FeeSchedule
	scans         mem.ScanResultStore
	dedupeTTL     time.Duration
}

func NewMealController(
	subscriptions services.SubscriptionServiceInterface,
	redemption services.RedemptionServiceInterface,
	gate *services.MealLockGate,
	fees *services.FeeSchedule,
	scans mem.ScanResultStore,
	dedupeTTL time.Duration,
) *MealController {
	return &MealController{
		subscriptions: subscriptions,
		redemption:    redemption,
		gate:          gate,
		fees:          fees,
		scans:         scans,
		dedupeTTL:     dedupeTTL,
	}
}

// scanOutcome is what a scan id replays: the first result or its error.
type scanOutcome struct {
	result *services.RedemptionResult
	err    error
}

// Rates godoc
// @Summary Meal rates
// @Description Per-meal daily rate table
// @Tags Meals
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /meals/rates [get]
func (m *MealController) Rates(c *gin.Context) {
	utils.RespondSuccess(c, m.fees.Rates(), "Rates fetched successfully")
}

// LockStatus godoc
// @Summary Meal lock state
// @Tags Meals
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /meals/lock [get]
func (m *MealController) LockStatus(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"locked": m.gate.Locked()}, "Lock state fetched successfully")
}

// SetMySubscription godoc
// @Summary Toggle one of my meals
// @Description Turn breakfast, lunch or dinner on or off; rejected while meals are locked
// @Tags Students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param meal path string true "breakfast | lunch | dinner"
// @Param request body request_models.SetSubscriptionRequest true "Subscription flag"
// @Success 200 {object} utils.APIResponse
// @Failure 423 {object} utils.APIResponse
// @Router /me/meals/{meal} [put]
func (m *MealController) SetMySubscription(c *gin.Context) {
	m.setSubscription(c, c.GetString("user_id"))
}

// SetSubscription godoc
// @Summary Toggle a student's meal
// @Description Same lock rules as the student path
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param meal path string true "breakfast | lunch | dinner"
// @Param request body request_models.SetSubscriptionRequest true "Subscription flag"
// @Success 200 {object} utils.APIResponse
// @Failure 423 {object} utils.APIResponse
// @Router /admin/accounts/{id}/meals/{meal} [put]
func (m *MealController) SetSubscription(c *gin.Context) {
	m.setSubscription(c, c.Param("id"))
}

func (m *MealController) setSubscription(c *gin.Context, studentID string) {
	var req request_models.SetSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := m.subscriptions.SetSubscription(c.Request.Context(), studentID, db_models.MealType(c.Param("meal")), *req.Enabled)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	daily, monthly := m.fees.AccountFees(account)
	utils.RespondSuccess(c, gin.H{
		"id":          account.ID,
		"breakfast":   account.Breakfast,
		"lunch":       account.Lunch,
		"dinner":      account.Dinner,
		"daily_fee":   daily,
		"monthly_fee": monthly,
	}, "Subscription updated successfully")
}

// Redeem godoc
// @Summary Redeem a meal at the counter
// @Description Consume one token for the scanned student. A repeated scan_id within the dedupe window replays the first outcome.
// @Tags Scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.RedeemRequest true "Scan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/redeem [post]
func (m *MealController) Redeem(c *gin.Context) {
	var req request_models.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	redeem := func() (any, bool) {
		result, err := m.redemption.RedeemScan(c.Request.Context(), req.Code, db_models.MealType(req.MealType))
		return scanOutcome{result: result, err: err}, !errors.Is(err, utils.ErrDatabaseError)
	}

	if req.ScanID == "" {
		outcome, _ := redeem()
		m.respondScan(c, outcome.(scanOutcome))
		return
	}

	outcome, replayed := m.scans.Resolve(req.ScanID, m.dedupeTTL, redeem)
	if replayed {
		zap.L().Info("replaying scan", zap.String("scan_id", req.ScanID))
	}
	m.respondScan(c, outcome.(scanOutcome))
}

func (m *MealController) respondScan(c *gin.Context, outcome scanOutcome) {
	if outcome.err != nil {
		utils.HandleServiceError(c, outcome.err)
		return
	}
	utils.RespondSuccess(c, outcome.result, "Meal redeemed successfully")
}
