package httpapi

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samy8144/ai-operations-coordinator/api"
	"github.com/samy8144/ai-operations-coordinator/chatbot"
	"github.com/samy8144/ai-operations-coordinator/sheets"
)

// ChatConfig holds configuration for the chat handler
type ChatConfig struct {
	AIEndpoint    string
	AIModel       string
	AIKey         string
	CacheMaxBytes int
	Store         chatbot.ConversationStore // optional; an LRU store is created when nil
}

//NewRouter returns an HTTP router for the HTTP API
func NewRouter(w io.Writer, s SessionStore, svc *api.Service, store *sheets.Store, passwordHash string, chatCfg *ChatConfig) http.Handler {

	//construct middleware
	var m = func(h returnHandler) http.Handler {
		return logMiddleware(jsonMiddleware(authMiddleware(h, s)), w)
	}

	r := mux.NewRouter()

	r.Path("/pilots/").Methods("GET").Handler(m(handleQueryPilots(svc)))
	r.Path("/pilots/{id}").Methods("GET").Handler(m(handleReadPilot(svc)))
	r.Path("/pilots/{id}/status").Methods("POST").Handler(m(handleUpdatePilotStatus(svc)))
	r.Path("/pilots/{id}/cost").Methods("POST").Handler(m(handlePilotCost(svc)))

	r.Path("/drones/").Methods("GET").Handler(m(handleQueryDrones(svc)))
	r.Path("/drones/{id}/status").Methods("POST").Handler(m(handleUpdateDroneStatus(svc)))

	r.Path("/missions/").Methods("GET").Handler(m(handleQueryMissions(svc)))
	r.Path("/missions/{id}").Methods("GET").Handler(m(handleReadMission(svc)))
	r.Path("/missions/{id}/pilots").Methods("GET").Handler(m(handleMatchPilots(svc)))
	r.Path("/missions/{id}/drones").Methods("GET").Handler(m(handleMatchDrones(svc)))
	r.Path("/missions/{id}/reassign").Methods("POST").Handler(m(handleReassign(svc)))

	r.Path("/conflicts/").Methods("GET").Handler(m(handleDetectConflicts(svc)))
	r.Path("/assignments/").Methods("GET").Handler(m(handleActiveAssignments(svc)))

	r.Path("/auth").Methods("POST").Handler(logMiddleware(jsonMiddleware(handleAuthenticate(s, passwordHash)), w))

	//health endpoint is unauthenticated so monitors can poll it
	r.Path("/status").Methods("GET").Handler(logMiddleware(jsonMiddleware(handleHealth(svc, store)), w))

	// Chat WebSocket endpoint (auth via header or query param, no JSON middleware)
	if chatCfg != nil {
		convStore := chatCfg.Store
		if convStore == nil {
			convStore = chatbot.NewLRUStore(chatCfg.CacheMaxBytes)
		}
		client := chatbot.NewAIClient(chatCfg.AIEndpoint, chatCfg.AIModel, chatCfg.AIKey)
		chatHandler := chatbot.NewHandler(convStore, client, svc)
		r.Path("/chat").Handler(wsAuthMiddleware(chatHandler, s, w))
	}

	r.NotFoundHandler = m(notFoundHandler)

	return http.StripPrefix("/api/1.0", r)
}
