package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/agency-dashboard/internal/api/handler/router"
	"github.com/vfg2006/agency-dashboard/internal/domain"
	"github.com/vfg2006/agency-dashboard/internal/usecases/gating"
	"github.com/vfg2006/agency-dashboard/internal/usecases/viewing"
)

func Healthcheck(records map[string]int) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(records),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Access(gate gating.Gatekeeper, pages *Pages, secureCookie bool) []router.Route {
	return []router.Route{
		{
			Path:    "/access",
			Method:  http.MethodGet,
			Handler: AccessForm(gate, pages),
		},
		{
			Path:    "/access",
			Method:  http.MethodPost,
			Handler: Unlock(gate, pages, secureCookie),
		},
		{
			Path:    "/logout",
			Method:  http.MethodPost,
			Handler: Logout(),
		},
	}
}

func Manager(viewer viewing.Viewer, pages *Pages) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: http.RedirectHandler(domain.ManagerRoot, http.StatusFound),
		},
		{
			Path:    domain.ManagerRoot,
			Method:  http.MethodGet,
			Handler: ManagerPage(viewer, pages),
		},
		{
			Path:    domain.ManagerRoot + "/*path",
			Method:  http.MethodGet,
			Handler: ManagerPage(viewer, pages),
		},
		{
			Path:    APIPrefix + domain.ManagerRoot,
			Method:  http.MethodGet,
			Handler: ManagerJSON(viewer),
		},
		{
			Path:    APIPrefix + domain.ManagerRoot + "/*path",
			Method:  http.MethodGet,
			Handler: ManagerJSON(viewer),
		},
	}
}

func Summary(viewer viewing.Viewer, pages *Pages) []router.Route {
	return []router.Route{
		{
			Path:    "/summary",
			Method:  http.MethodGet,
			Handler: SummaryPage(viewer, pages),
		},
		{
			Path:    APIPrefix + "/summary",
			Method:  http.MethodGet,
			Handler: SummaryJSON(viewer),
		},
	}
}
