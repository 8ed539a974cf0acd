package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samy8144/ai-operations-coordinator/api"
)

//GET /pilots
func handleQueryPilots(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		q := r.URL.Query()
		pilots, err := svc.QueryPilots(r.Context(),
			q.Get("skill"),
			q.Get("certification"),
			q.Get("location"),
			q.Get("status"),
		)
		if resp := checkAPIError(err); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: &QueryPilotsResponse{Pilots: pilots}}
	}
}

//GET /pilots/:id
func handleReadPilot(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		pilot, err := svc.ReadPilot(r.Context(), mux.Vars(r)["id"], "")
		if resp := checkAPIError(err); resp != nil {
			return resp
		}
		if pilot == nil {
			return handleError(http.StatusNotFound, errors.New("Could not find pilot"))
		}

		return &handlerResponse{Code: http.StatusOK, Body: pilot}
	}
}

//POST /pilots/:id/status
func handleUpdatePilotStatus(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		var req *StatusUpdateRequest
		d := json.NewDecoder(r.Body)

		err := d.Decode(&req)
		if err != nil || req == nil {
			return handleError(http.StatusBadRequest, fmt.Errorf("Could not decode json: %v", err))
		}

		update, err := svc.UpdatePilotStatus(r.Context(), mux.Vars(r)["id"], req.NewStatus, req.Note)
		if resp := checkAPIError(err); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: update}
	}
}

//POST /pilots/:id/cost
func handlePilotCost(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		var req *CostEstimateRequest
		d := json.NewDecoder(r.Body)

		err := d.Decode(&req)
		if err != nil || req == nil {
			return handleError(http.StatusBadRequest, fmt.Errorf("Could not decode json: %v", err))
		}

		estimate, err := svc.PilotCostEstimate(r.Context(), mux.Vars(r)["id"], req.StartDate, req.EndDate)
		if resp := checkAPIError(err); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: estimate}
	}
}
