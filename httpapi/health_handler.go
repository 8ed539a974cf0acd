package httpapi

import (
	"net/http"

	"github.com/samy8144/ai-operations-coordinator/api"
	"github.com/samy8144/ai-operations-coordinator/sheets"
)

//GET /status
func handleHealth(svc *api.Service, store *sheets.Store) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		resp := &HealthResponse{
			Status:          "ok",
			SheetsConnected: store.Connected(),
		}

		pilots, err := svc.QueryPilots(r.Context(), "", "", "", "")
		if e := checkAPIError(err); e != nil {
			return e
		}
		drones, err := svc.QueryDrones(r.Context(), "", "", "", "")
		if e := checkAPIError(err); e != nil {
			return e
		}
		missions, err := svc.QueryMissions(r.Context(), "", "", "")
		if e := checkAPIError(err); e != nil {
			return e
		}

		resp.Pilots = len(pilots)
		resp.Drones = len(drones)
		resp.Missions = len(missions)

		return &handlerResponse{Code: http.StatusOK, Body: resp}
	}
}
