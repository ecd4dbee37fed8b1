package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"messhall/internal/models/db_models"
	"messhall/internal/models/request_models"
	"messhall/internal/services"
	"messhall/pkg/utils"
)

type ComplaintController struct {
	complaintService services.ComplaintServiceInterface
}

func NewComplaintController(complaintService services.ComplaintServiceInterface) *ComplaintController {
	return &ComplaintController{complaintService: complaintService}
}

// FileComplaint godoc
// @Summary File a complaint
// @Tags Complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.FileComplaintRequest true "Complaint payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /me/complaints [post]
func (cc *ComplaintController) FileComplaint(c *gin.Context) {
	var req request_models.FileComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	complaint, err := cc.complaintService.FileComplaint(c.Request.Context(), c.GetString("user_id"),
		db_models.ComplaintCategory(req.Category), req.Subject, req.Description)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, complaint, "Complaint filed successfully")
}

// ListMyComplaints godoc
// @Summary My complaints
// @Tags Complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {array} db_models.Complaint
// @Router /me/complaints [get]
func (cc *ComplaintController) ListMyComplaints(c *gin.Context) {
	complaints, err := cc.complaintService.ListComplaints(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, complaints, "Complaints fetched successfully")
}

// ListAllComplaints godoc
// @Summary All complaints
// @Description Newest first, optionally filtered by status
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending | in-progress | resolved"
// @Success 200 {array} db_models.Complaint
// @Router /admin/complaints [get]
func (cc *ComplaintController) ListAllComplaints(c *gin.Context) {
	complaints, err := cc.complaintService.ListAllComplaints(c.Request.Context(), db_models.ComplaintStatus(c.Query("status")))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, complaints, "Complaints fetched successfully")
}

// Reply godoc
// @Summary Reply to a complaint
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param complaintId path string true "Complaint ID"
// @Param request body request_models.ReplyComplaintRequest true "Reply"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/accounts/{id}/complaints/{complaintId}/reply [post]
func (cc *ComplaintController) Reply(c *gin.Context) {
	var req request_models.ReplyComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	complaint, err := cc.complaintService.Reply(c.Request.Context(), c.Param("id"), c.Param("complaintId"), req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, complaint, "Reply saved successfully")
}

// Close godoc
// @Summary Resolve a complaint
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Param complaintId path string true "Complaint ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/accounts/{id}/complaints/{complaintId}/close [post]
func (cc *ComplaintController) Close(c *gin.Context) {
	complaint, err := cc.complaintService.Close(c.Request.Context(), c.Param("id"), c.Param("complaintId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, complaint, "Complaint resolved successfully")
}
