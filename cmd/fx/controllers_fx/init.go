package controllers_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"messhall/internal/api"
	"messhall/internal/api/controllers"
	"messhall/internal/config"
	"messhall/internal/services"
	mem "messhall/pkg/memcache"
	"messhall/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewComplaintController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(provideMealController),
	fx.Provide(provideRouter),
)

func provideMealController(
	subscriptions services.SubscriptionServiceInterface,
	redemption services.RedemptionServiceInterface,
	gate *services.MealLockGate,
	fees *services.FeeSchedule,
	scans mem.ScanResultStore,
	cfg *config.Config,
) *controllers.MealController {
	return controllers.NewMealController(subscriptions, redemption, gate, fees, scans, cfg.Scanner.DedupeTTL)
}

type routerParams struct {
	fx.In

	Logger    *zap.Logger
	Issuer    *utils.TokenIssuer
	Account   *controllers.AccountController
	Meal      *controllers.MealController
	Payment   *controllers.PaymentController
	Complaint *controllers.ComplaintController
	Admin     *controllers.AdminController
	Dashboard *controllers.DashboardController
}

func provideRouter(p routerParams) *gin.Engine {
	return api.NewRouter(p.Logger, p.Issuer, api.Controllers{
		Account:   p.Account,
		Meal:      p.Meal,
		Payment:   p.Payment,
		Complaint: p.Complaint,
		Admin:     p.Admin,
		Dashboard: p.Dashboard,
	})
}
