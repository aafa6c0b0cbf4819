package handler

import (
	"net/http"

	"github.com/vfg2006/strategy-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategy-dashboard-api/internal/usecases/strategizing"
	"github.com/vfg2006/strategy-dashboard-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Strategy(store strategizing.ConfigStore, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/strategy/config",
			Method:      http.MethodGet,
			Handler:     GetStrategyConfig(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/strategy/config",
			Method:      http.MethodPut,
			Handler:     PutStrategyConfig(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/strategy/config",
			Method:      http.MethodPost,
			Handler:     PutStrategyConfig(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/strategy/targets",
			Method:      http.MethodGet,
			Handler:     GetStrategicTargets(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Performance(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/performance/weekly",
			Method:      http.MethodGet,
			Handler:     ListWeeklyEntries(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/performance/weekly",
			Method:      http.MethodPost,
			Handler:     CreateWeeklyEntry(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/export",
			Method:      http.MethodGet,
			Handler:     ExportDashboard(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reports(reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlyReport(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/quarterly",
			Method:      http.MethodGet,
			Handler:     GetQuarterlyReport(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/snapshots",
			Method:      http.MethodGet,
			Handler:     GetMonthlySnapshot(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/snapshots/history",
			Method:      http.MethodGet,
			Handler:     GetSnapshotHistory(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/periods",
			Method:      http.MethodGet,
			Handler:     GetSnapshotPeriods(reporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
