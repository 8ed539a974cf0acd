package api

import "strings"

//DroneStatuses are the statuses accepted by UpdateDroneStatus
var DroneStatuses = []string{"Available", "Maintenance", "Deployed"}

//Drone represents one row of the drone fleet
type Drone struct {
	ID                string   `json:"drone_id"`
	Model             string   `json:"model"`
	Location          string   `json:"location"`
	Status            string   `json:"status"`
	Capabilities      string   `json:"capabilities"`
	WeatherResistance string   `json:"weather_resistance"`
	MaintenanceDue    string   `json:"maintenance_due,omitempty"`
	Assignments       []string `json:"current_assignment,omitempty"`
	Note              string   `json:"note,omitempty"`
}

//DroneFromRecord converts a raw fleet row to a Drone, filling missing fields
//with defaults and normalizing assignment sentinels
func DroneFromRecord(r Record) *Drone {
	status := r.Field("status")
	if status == "" {
		status = "Available"
	}
	return &Drone{
		ID:                r.Field("drone_id"),
		Model:             r.Field("model"),
		Location:          r.Field("location"),
		Status:            status,
		Capabilities:      r.Field("capabilities"),
		WeatherResistance: r.Field("weather_resistance"),
		MaintenanceDue:    r.Field("maintenance_due"),
		Assignments:       parseAssignments(r["current_assignment"]),
		Note:              r.Field("note"),
	}
}

//AssignedTo reports whether the drone's assignment list contains projectID
func (d *Drone) AssignedTo(projectID string) bool {
	for _, id := range d.Assignments {
		if id == projectID {
			return true
		}
	}
	return false
}

//Assigned reports whether the drone has any current assignment
func (d *Drone) Assigned() bool {
	return len(d.Assignments) > 0
}

//Available reports whether the drone's status is "Available" (case-insensitive)
func (d *Drone) Available() bool {
	return strings.EqualFold(d.Status, "Available")
}

//InMaintenance reports whether the drone's status is "Maintenance" (case-insensitive)
func (d *Drone) InMaintenance() bool {
	return strings.EqualFold(d.Status, "Maintenance")
}
