package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samy8144/ai-operations-coordinator/api"
)

//GET /missions
func handleQueryMissions(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		q := r.URL.Query()
		missions, err := svc.QueryMissions(r.Context(),
			q.Get("location"),
			q.Get("priority"),
			q.Get("project_id"),
		)
		if resp := checkAPIError(err); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: &QueryMissionsResponse{Missions: missions}}
	}
}

//GET /missions/:id
func handleReadMission(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		mission, err := svc.ReadMission(r.Context(), mux.Vars(r)["id"])
		if resp := checkAPIError(err); resp != nil {
			return resp
		}
		if mission == nil {
			return handleError(http.StatusNotFound, errors.New("Could not find mission"))
		}

		return &handlerResponse{Code: http.StatusOK, Body: mission}
	}
}

//GET /missions/:id/pilots
func handleMatchPilots(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		report, err := svc.MatchPilots(r.Context(), mux.Vars(r)["id"])
		if resp := checkAPIError(err); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: report}
	}
}

//GET /missions/:id/drones
func handleMatchDrones(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		report, err := svc.MatchDrones(r.Context(), mux.Vars(r)["id"])
		if resp := checkAPIError(err); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: report}
	}
}

//POST /missions/:id/reassign
func handleReassign(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		var req *ReassignmentRequest
		d := json.NewDecoder(r.Body)

		err := d.Decode(&req)
		if err != nil || req == nil {
			return handleError(http.StatusBadRequest, fmt.Errorf("Could not decode json: %v", err))
		}

		plan, err := svc.UrgentReassignment(r.Context(), mux.Vars(r)["id"], req.Reason, req.ResourceType)
		if resp := checkAPIError(err); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: plan}
	}
}
