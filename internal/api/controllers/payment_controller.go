package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"messhall/internal/models/db_models"
	"messhall/internal/models/request_models"
	"messhall/internal/services"
	"messhall/pkg/utils"
)

type PaymentController struct {
	topUpService services.TopUpServiceInterface
}

func NewPaymentController(topUpService services.TopUpServiceInterface) *PaymentController {
	return &PaymentController{topUpService: topUpService}
}

// TopUp godoc
// @Summary Buy tokens
// @Description Credit tokens for an amount (minimum 100). 500/1000/2000/5000 are bonus packs.
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.TopUpRequest true "Top-up payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /me/topups [post]
func (p *PaymentController) TopUp(c *gin.Context) {
	var req request_models.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.topUpService.TopUp(c.Request.Context(), c.GetString("user_id"), req.Amount, db_models.PaymentMethod(req.Method))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, result, "Tokens purchased successfully")
}

// ListMyPayments godoc
// @Summary My payment history
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} db_models.Payment
// @Router /me/payments [get]
func (p *PaymentController) ListMyPayments(c *gin.Context) {
	payments, err := p.topUpService.ListPayments(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payments, "Payments fetched successfully")
}
