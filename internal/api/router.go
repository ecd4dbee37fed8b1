package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"messhall/internal/api/controllers"
	"messhall/pkg/middleware"
	"messhall/pkg/utils"
)

type Controllers struct {
	Account   *controllers.AccountController
	Meal      *controllers.MealController
	Payment   *controllers.PaymentController
	Complaint *controllers.ComplaintController
	Admin     *controllers.AdminController
	Dashboard *controllers.DashboardController
}

func NewRouter(logger *zap.Logger, issuer *utils.TokenIssuer, ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, issuer, ctl)
	return r
}

func RegisterRoutes(r *gin.Engine, issuer *utils.TokenIssuer, ctl Controllers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", ctl.Account.Register)
	accountGroup.POST("/login", ctl.Account.Login)

	mealGroup := r.Group("/meals")
	mealGroup.GET("/rates", ctl.Meal.Rates)
	mealGroup.GET("/lock", ctl.Meal.LockStatus)

	r.POST("/admin/login", ctl.Admin.Login)

	me := r.Group("/me")
	me.Use(middleware.JWTAuthMiddleware(issuer), middleware.RoleMiddleware(utils.RoleStudent))
	me.GET("", ctl.Account.Me)
	me.PUT("/meals/:meal", ctl.Meal.SetMySubscription)
	me.POST("/topups", ctl.Payment.TopUp)
	me.GET("/payments", ctl.Payment.ListMyPayments)
	me.GET("/complaints", ctl.Complaint.ListMyComplaints)
	me.POST("/complaints", ctl.Complaint.FileComplaint)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(issuer), middleware.RoleMiddleware(utils.RoleAdmin))
	admin.GET("/accounts", ctl.Account.ListAccounts)
	admin.POST("/accounts", ctl.Admin.AddAccount)
	admin.GET("/accounts/:id", ctl.Account.GetAccount)
	admin.DELETE("/accounts/:id", ctl.Admin.RemoveAccount)
	admin.PUT("/accounts/:id/room", ctl.Admin.SetRoom)
	admin.POST("/accounts/:id/tokens", ctl.Admin.AdjustTokens)
	admin.PUT("/accounts/:id/meals/:meal", ctl.Meal.SetSubscription)
	admin.POST("/accounts/:id/complaints/:complaintId/reply", ctl.Complaint.Reply)
	admin.POST("/accounts/:id/complaints/:complaintId/close", ctl.Complaint.Close)
	admin.POST("/meal-lock/toggle", ctl.Admin.ToggleMealLock)
	admin.GET("/complaints", ctl.Complaint.ListAllComplaints)
	admin.POST("/redeem", ctl.Meal.Redeem)
	admin.GET("/transactions", ctl.Dashboard.ListTransactions)
	admin.GET("/stats", ctl.Dashboard.Stats)
	admin.GET("/reports/daily", ctl.Dashboard.DailyReport)
}
