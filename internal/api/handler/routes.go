package handler

import (
	"net/http"

	"github.com/TeuSpnl/comisys/infrastructure/repository"
	"github.com/TeuSpnl/comisys/internal/api/handler/router"
	"github.com/TeuSpnl/comisys/internal/usecases/authenticating"
	"github.com/TeuSpnl/comisys/internal/usecases/dashboarding"
	"github.com/TeuSpnl/comisys/internal/usecases/goalsetting"
	"github.com/TeuSpnl/comisys/internal/usecases/ingesting"
	"github.com/TeuSpnl/comisys/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func Upload(service ingesting.Ingestor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/upload",
			Method:      http.MethodPost,
			Handler:     UploadSpreadsheet(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/me",
			Method:      http.MethodGet,
			Handler:     GetMyDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/company",
			Method:      http.MethodGet,
			Handler:     GetCompanyDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/dashboard/sellers/:id",
			Method:      http.MethodGet,
			Handler:     GetSellerDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func Goals(service goalsetting.GoalSetter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/goals",
			Method:      http.MethodGet,
			Handler:     ListSellerGoals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/goals/general",
			Method:      http.MethodPut,
			Handler:     SetGeneralGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/users/:id/goal",
			Method:      http.MethodPut,
			Handler:     SetSellerGoal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func Sales(saleRepo repository.SaleRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSale(saleRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/users/:id/sales",
			Method:      http.MethodDelete,
			Handler:     DeleteSalesByUser(saleRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.MasterOnly()},
		},
	}
}
