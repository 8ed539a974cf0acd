package api

import "strings"

//Mission represents one row of the missions sheet
type Mission struct {
	ProjectID       string  `json:"project_id"`
	Client          string  `json:"client"`
	Location        string  `json:"location"`
	RequiredSkills  string  `json:"required_skills"`
	RequiredCerts   string  `json:"required_certs"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Budget          float64 `json:"mission_budget_inr"`
	Priority        string  `json:"priority"`
	WeatherForecast string  `json:"weather_forecast,omitempty"`
}

//MissionFromRecord converts a raw missions row to a Mission, filling missing
//fields with defaults
func MissionFromRecord(r Record) *Mission {
	priority := r.Field("priority")
	if priority == "" {
		priority = "Standard"
	}
	return &Mission{
		ProjectID:       r.Field("project_id"),
		Client:          r.Field("client"),
		Location:        r.Field("location"),
		RequiredSkills:  r.Field("required_skills"),
		RequiredCerts:   r.Field("required_certs"),
		StartDate:       r.Field("start_date"),
		EndDate:         r.Field("end_date"),
		Budget:          r.Float("mission_budget_inr"),
		Priority:        priority,
		WeatherForecast: r.Field("weather_forecast"),
	}
}

//findMission returns the mission with the given project id (case-insensitive),
//or nil if none matches
func findMission(missions []*Mission, projectID string) *Mission {
	for _, m := range missions {
		if strings.EqualFold(m.ProjectID, projectID) {
			return m
		}
	}
	return nil
}
