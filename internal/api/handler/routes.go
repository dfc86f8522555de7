package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/render"
	"github.com/vfg2006/sales-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/sales-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard/internal/usecases/forecasting"
	"github.com/vfg2006/sales-dashboard/pkg/middleware"
)

func Healthcheck(datasets DatasetStatus) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(datasets),
		},
	}
}

func Dashboard(analyzer analyzing.Analyzer, forecaster forecasting.Forecaster, page *render.Page, cfg config.Forecast) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(analyzer, forecaster, page, cfg),
		},
	}
}

func Sales(service analyzing.Analyzer, currencySymbol string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/options",
			Method:  http.MethodGet,
			Handler: GetOptions(service),
		},
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service, currencySymbol),
		},
		{
			Path:    "/v1/sales/daily",
			Method:  http.MethodGet,
			Handler: GetDailySales(service),
		},
		{
			Path:    "/v1/sales/products",
			Method:  http.MethodGet,
			Handler: GetSalesByProduct(service),
		},
		{
			Path:    "/v1/sales/regions",
			Method:  http.MethodGet,
			Handler: GetSalesByRegion(service),
		},
	}
}

func Charts(analyzer analyzing.Analyzer, forecaster forecasting.Forecaster, charts *render.Charts) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts/:name",
			Method:  http.MethodGet,
			Handler: GetChart(analyzer, forecaster, charts),
		},
	}
}

func Forecast(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/forecast",
			Method:  http.MethodGet,
			Handler: GetForecast(service),
		},
		{
			Path:    "/v1/forecast/download",
			Method:  http.MethodGet,
			Handler: DownloadForecastCSV(service),
		},
		{
			Path:    "/v1/forecast/download.xlsx",
			Method:  http.MethodGet,
			Handler: DownloadForecastXLSX(service),
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
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuthMiddleware(service)},
		},
	}
}

func CronJobs(services CronJobServices, authenticator authenticating.Authenticator) []router.Route {
	admin := []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(authenticator),
		middleware.AdminOnly(),
	}

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: admin,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: admin,
		},
	}
}
