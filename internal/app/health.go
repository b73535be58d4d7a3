package app

import (
	"github.com/amin75t/task-manager/internal/pkg/router"
)

type healthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func (healthResponse) Message() string {
	return "Service health"
}

// healthEndpoint reports readiness. Dependencies are pinged live so load
// balancers notice a lost database or cache before users do.
func (a *App) healthEndpoint(r *router.Request) (any, error) {
	resp := healthResponse{
		Status:   "ok",
		Service:  a.config.GetString("instrument.service_name"),
		Version:  a.config.GetString("instrument.service_version"),
		Database: "up",
		Cache:    "up",
	}

	if !a.healthy.Load() {
		resp.Status = "starting"
	}

	if err := a.dbConn.Ping(r.Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "down"
	}

	if err := a.cacheConn.Ping(r.Context()).Err(); err != nil {
		resp.Status = "degraded"
		resp.Cache = "down"
	}

	return resp, nil
}
