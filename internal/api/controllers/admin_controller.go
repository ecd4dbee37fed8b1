package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"messhall/internal/models/request_models"
	"messhall/internal/models/response_models"
	"messhall/internal/services"
	"messhall/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
	fees         *services.FeeSchedule
}

func NewAdminController(adminService services.AdminServiceInterface, fees *services.FeeSchedule) *AdminController {
	return &AdminController{
		adminService: adminService,
		fees:         fees,
	}
}

// Login godoc
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body request_models.AdminLoginRequest true "Admin password"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /admin/login [post]
func (a *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.adminService.Login(req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// AddAccount godoc
// @Summary Add a student
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.AddAccountRequest true "Student details"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/accounts [post]
func (a *AdminController) AddAccount(c *gin.Context) {
	var req request_models.AddAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.adminService.AddAccount(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewAccountSummary(account), "Student added successfully")
}

// RemoveAccount godoc
// @Summary Remove a student
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/accounts/{id} [delete]
func (a *AdminController) RemoveAccount(c *gin.Context) {
	if err := a.adminService.RemoveAccount(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Student removed successfully")
}

// SetRoom godoc
// @Summary Assign a room
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body request_models.SetRoomRequest true "Room"
// @Success 200 {object} utils.APIResponse
// @Router /admin/accounts/{id}/room [put]
func (a *AdminController) SetRoom(c *gin.Context) {
	var req request_models.SetRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.adminService.SetRoom(c.Request.Context(), c.Param("id"), req.Room)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountSummary(account), "Room updated successfully")
}

// AdjustTokens godoc
// @Summary Adjust a token balance
// @Description Add delta (may be negative); the balance never drops below zero
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param request body request_models.AdjustTokensRequest true "Delta"
// @Success 200 {object} utils.APIResponse
// @Router /admin/accounts/{id}/tokens [post]
func (a *AdminController) AdjustTokens(c *gin.Context) {
	var req request_models.AdjustTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.adminService.AdjustTokens(c.Request.Context(), c.Param("id"), *req.Delta)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewAccountSummary(account), "Tokens updated successfully")
}

// ToggleMealLock godoc
// @Summary Toggle the meal lock
// @Description While locked, no student or admin may change meal subscriptions
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/meal-lock/toggle [post]
func (a *AdminController) ToggleMealLock(c *gin.Context) {
	locked := a.adminService.ToggleMealLock()
	utils.RespondSuccess(c, gin.H{"locked": locked}, "Meal lock updated")
}
