package handler

import (
	"net/http"

	"github.com/totemfeedback/satisfaction-api/internal/api/handler/router"
	"github.com/totemfeedback/satisfaction-api/internal/scheduler"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/authenticating"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/exporting"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/reporting"
	"github.com/totemfeedback/satisfaction-api/internal/usecases/submitting"
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

func Feedback(submitter submitting.Submitter, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/feedback",
			Method:  http.MethodPost,
			Handler: CreateFeedback(submitter),
		},
		{
			Path:    "/api/feedback",
			Method:  http.MethodGet,
			Handler: ListFeedback(reporter),
		},
	}
}

func Admin(
	authenticator authenticating.Authenticator,
	reporter reporting.Reporter,
	exporter exporting.Exporter,
) []router.Route {
	return []router.Route{
		{
			Path:    "/api/admin/login",
			Method:  http.MethodPost,
			Handler: Login(authenticator),
		},
		{
			Path:    "/api/admin/stats",
			Method:  http.MethodGet,
			Handler: Stats(reporter),
		},
		{
			Path:    "/api/admin/export",
			Method:  http.MethodGet,
			Handler: Export(exporter),
		},
	}
}

func DailySummary(service *scheduler.DailySummaryService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/admin/summary/run",
			Method:  http.MethodPost,
			Handler: RunDailySummary(service),
		},
		{
			Path:    "/api/admin/summary/status",
			Method:  http.MethodGet,
			Handler: DailySummaryStatus(service),
		},
	}
}

// Pages serve as duas telas embutidas: o totem na raiz e o painel em /admin.
func Pages() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: KioskPage(),
		},
		{
			Path:    "/admin",
			Method:  http.MethodGet,
			Handler: AdminPage(),
		},
	}
}
