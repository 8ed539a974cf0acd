package httpapi

import "github.com/samy8144/ai-operations-coordinator/api"

//AuthenticateResponse is a successful authentication response including the session key
type AuthenticateResponse struct {
	SessionKey string `json:"session_key"`
}

//QueryPilotsResponse contains a list of Pilots
type QueryPilotsResponse struct {
	Pilots []*api.Pilot `json:"pilots"`
}

//QueryDronesResponse contains a list of Drones
type QueryDronesResponse struct {
	Drones []*api.Drone `json:"drones"`
}

//QueryMissionsResponse contains a list of Missions
type QueryMissionsResponse struct {
	Missions []*api.Mission `json:"missions"`
}

//HealthResponse reports service health and data store reachability
type HealthResponse struct {
	Status          string `json:"status"`
	SheetsConnected bool   `json:"sheets_connected"`
	Pilots          int    `json:"pilots"`
	Drones          int    `json:"drones"`
	Missions        int    `json:"missions"`
}
