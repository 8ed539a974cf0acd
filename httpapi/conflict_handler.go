package httpapi

import (
	"net/http"

	"github.com/samy8144/ai-operations-coordinator/api"
)

//GET /conflicts
func handleDetectConflicts(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		report, err := svc.DetectConflicts(r.Context(), r.URL.Query().Get("project_id"))
		if resp := checkAPIError(err); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: report}
	}
}
