package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samy8144/ai-operations-coordinator/api"
)

//GET /drones
func handleQueryDrones(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		q := r.URL.Query()
		drones, err := svc.QueryDrones(r.Context(),
			q.Get("capability"),
			q.Get("status"),
			q.Get("location"),
			q.Get("weather_forecast"),
		)
		if resp := checkAPIError(err); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: &QueryDronesResponse{Drones: drones}}
	}
}

//POST /drones/:id/status
func handleUpdateDroneStatus(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		var req *StatusUpdateRequest
		d := json.NewDecoder(r.Body)

		err := d.Decode(&req)
		if err != nil || req == nil {
			return handleError(http.StatusBadRequest, fmt.Errorf("Could not decode json: %v", err))
		}

		update, err := svc.UpdateDroneStatus(r.Context(), mux.Vars(r)["id"], req.NewStatus, req.Note)
		if resp := checkAPIError(err); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: update}
	}
}
