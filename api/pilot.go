package api

import "strings"

//PilotStatuses are the statuses accepted by UpdatePilotStatus
var PilotStatuses = []string{"Available", "On Leave", "Unavailable", "Assigned"}

//Pilot represents one row of the pilot roster
type Pilot struct {
	ID             string   `json:"pilot_id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Status         string   `json:"status"`
	Skills         string   `json:"skills"`
	Certifications string   `json:"certifications"`
	DailyRate      float64  `json:"daily_rate_inr"`
	Assignments    []string `json:"current_assignment,omitempty"`
	AvailableFrom  string   `json:"available_from,omitempty"`
	Note           string   `json:"note,omitempty"`
}

//PilotFromRecord converts a raw roster row to a Pilot, filling missing fields
//with defaults and normalizing assignment sentinels
func PilotFromRecord(r Record) *Pilot {
	status := r.Field("status")
	if status == "" {
		status = "Available"
	}
	return &Pilot{
		ID:             r.Field("pilot_id"),
		Name:           r.Field("name"),
		Location:       r.Field("location"),
		Status:         status,
		Skills:         r.Field("skills"),
		Certifications: r.Field("certifications"),
		DailyRate:      r.Float("daily_rate_inr"),
		Assignments:    parseAssignments(r["current_assignment"]),
		AvailableFrom:  r.Field("available_from"),
		Note:           r.Field("note"),
	}
}

//AssignedTo reports whether the pilot's assignment list contains projectID
func (p *Pilot) AssignedTo(projectID string) bool {
	for _, id := range p.Assignments {
		if id == projectID {
			return true
		}
	}
	return false
}

//Assigned reports whether the pilot has any current assignment
func (p *Pilot) Assigned() bool {
	return len(p.Assignments) > 0
}

//Available reports whether the pilot's status is "Available" (case-insensitive)
func (p *Pilot) Available() bool {
	return strings.EqualFold(p.Status, "Available")
}

//validStatus reports whether status is in the allowed set (exact match)
func validStatus(status string, allowed []string) bool {
	for _, s := range allowed {
		if status == s {
			return true
		}
	}
	return false
}
