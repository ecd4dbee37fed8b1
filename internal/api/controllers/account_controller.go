package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"messhall/internal/models/request_models"
	"messhall/internal/models/response_models"
	"messhall/internal/services"
	"messhall/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
	fees           *services.FeeSchedule
}

func NewAccountController(accountService services.AccountServiceInterface, fees *services.FeeSchedule) *AccountController {
	return &AccountController{
		accountService: accountService,
		fees:           fees,
	}
}

// Register godoc
// @Summary Register a new student
// @Description Create a student account with an auto-assigned id and room
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.NewAccountResponse(account, 0, 0), "Account created successfully")
}

// Login godoc
// @Summary Student login
// @Description Authenticate with email and password and return a session token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, account, err := a.accountService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	daily, monthly := a.fees.AccountFees(account)
	utils.RespondSuccess(c, response_models.AccountLoginResponse{
		Token:   token,
		Account: response_models.NewAccountResponse(account, daily, monthly),
	}, "Login successful")
}

// Me godoc
// @Summary Current student
// @Description Account details of the logged-in student with subscription fees
// @Tags Students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /me [get]
func (a *AccountController) Me(c *gin.Context) {
	account, err := a.accountService.FindByID(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	daily, monthly := a.fees.AccountFees(account)
	utils.RespondSuccess(c, response_models.NewAccountResponse(account, daily, monthly), "Account fetched successfully")
}

// ListAccounts godoc
// @Summary List students
// @Description Roster ordered by student id, or a single account when email is given
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param email query string false "Find by email"
// @Success 200 {object} utils.APIResponse
// @Router /admin/accounts [get]
func (a *AccountController) ListAccounts(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		account, err := a.accountService.FindByEmail(c.Request.Context(), email)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, []response_models.AccountSummary{response_models.NewAccountSummary(account)}, "Accounts fetched successfully")
		return
	}

	accounts, err := a.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	summaries := make([]response_models.AccountSummary, 0, len(accounts))
	for i := range accounts {
		summaries = append(summaries, response_models.NewAccountSummary(&accounts[i]))
	}
	utils.RespondSuccess(c, summaries, "Accounts fetched successfully")
}

// GetAccount godoc
// @Summary Get a student
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/accounts/{id} [get]
func (a *AccountController) GetAccount(c *gin.Context) {
	account, err := a.accountService.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	daily, monthly := a.fees.AccountFees(account)
	utils.RespondSuccess(c, response_models.NewAccountResponse(account, daily, monthly), "Account fetched successfully")
}
