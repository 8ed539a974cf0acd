package httpapi

//AuthenticateRequest is an operator password authentication request
type AuthenticateRequest struct {
	Password string `json:"password"`
}

//StatusUpdateRequest is a request to change a pilot's or drone's status
type StatusUpdateRequest struct {
	NewStatus string `json:"new_status"`
	Note      string `json:"note"`
}

//CostEstimateRequest is a request to estimate a pilot's cost over a date range
type CostEstimateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

//ReassignmentRequest is a request to find replacements for a disrupted mission
type ReassignmentRequest struct {
	Reason       string `json:"reason"`
	ResourceType string `json:"resource_type"`
}
