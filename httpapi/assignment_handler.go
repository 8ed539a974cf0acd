package httpapi

import (
	"net/http"

	"github.com/samy8144/ai-operations-coordinator/api"
)

//GET /assignments
func handleActiveAssignments(svc *api.Service) returnHandler {
	return func(w http.ResponseWriter, r *http.Request) *handlerResponse {
		overview, err := svc.ActiveAssignments(r.Context())
		if resp := checkAPIError(err); resp != nil {
			return resp
		}

		return &handlerResponse{Code: http.StatusOK, Body: overview}
	}
}
