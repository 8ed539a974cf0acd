package api

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//Match scoring weights
const (
	scoreLocationMatch = 10
	scoreNoIssues      = 20
	scoreSkillsOK      = 5
	scoreCertsOK       = 5
)

//PilotMatch is one pilot evaluated against a mission's requirements
type PilotMatch struct {
	Pilot  *Pilot   `json:"pilot"`
	Issues []string `json:"issues,omitempty"`
	Score  int      `json:"score"`
	Cost   float64  `json:"cost_inr"`
}

//PilotMatchReport partitions the roster into recommended (no issues) and
//flagged candidates for a mission, recommended first, ranked by score
type PilotMatchReport struct {
	Mission     *Mission      `json:"mission"`
	Recommended []*PilotMatch `json:"recommended"`
	Flagged     []*PilotMatch `json:"flagged"`
}

//DroneMatch is one drone evaluated against a mission's requirements
type DroneMatch struct {
	Drone  *Drone   `json:"drone"`
	Issues []string `json:"issues"`
}

//DroneMatchReport partitions the fleet into recommended and flagged drones for
//a mission. Drones are not ranked; repository order is preserved.
type DroneMatchReport struct {
	Mission     *Mission      `json:"mission"`
	Recommended []*Drone      `json:"recommended"`
	Flagged     []*DroneMatch `json:"flagged"`
}

//missionNotFound builds the NotFound error for a missing project id
func missionNotFound(projectID string) *Error {
	return &Error{
		Description: fmt.Sprintf("Could not find Mission(%s)", projectID),
		Type:        ErrorTypeNotFound,
		Err:         errors.New("no mission matches the given project id"),
	}
}

//evaluatePilot scores one pilot against a mission. The full mission list is
//needed for the double-booking check.
func evaluatePilot(p *Pilot, mission *Mission, missions []*Mission) *PilotMatch {
	var issues []string
	score := 0

	if !p.Available() {
		issues = append(issues, fmt.Sprintf("status=%s", p.Status))
	}

	missingSkills := MissingSkills(p.Skills, mission.RequiredSkills)
	if len(missingSkills) > 0 {
		issues = append(issues, fmt.Sprintf("missing skills: %s", strings.Join(missingSkills, ", ")))
	}

	missingCerts := MissingCerts(p.Certifications, mission.RequiredCerts)
	if len(missingCerts) > 0 {
		issues = append(issues, fmt.Sprintf("missing certs: %s", strings.Join(missingCerts, ", ")))
	}

	cost := PilotCost(p.DailyRate, mission.StartDate, mission.EndDate)
	if cost > mission.Budget {
		issues = append(issues, fmt.Sprintf("over budget (%.0f > %.0f)", cost, mission.Budget))
	}

	if p.Assigned() {
		for _, other := range missions {
			if other.ProjectID == mission.ProjectID {
				continue
			}
			if p.AssignedTo(other.ProjectID) && DatesOverlap(mission.StartDate, mission.EndDate, other.StartDate, other.EndDate) {
				issues = append(issues, fmt.Sprintf("double-booked with %s", other.ProjectID))
			}
		}
	}

	if strings.EqualFold(p.Location, mission.Location) {
		score += scoreLocationMatch
	} else {
		issues = append(issues, fmt.Sprintf("location mismatch (%s != %s)", p.Location, mission.Location))
	}

	if len(issues) == 0 {
		score += scoreNoIssues
	}
	if len(missingSkills) == 0 {
		score += scoreSkillsOK
	}
	if len(missingCerts) == 0 {
		score += scoreCertsOK
	}

	return &PilotMatch{Pilot: p, Issues: issues, Score: score, Cost: cost}
}

//MatchPilots ranks every pilot against the given mission's requirements
func (s *Service) MatchPilots(ctx context.Context, projectID string) (*PilotMatchReport, error) {
	missions, err := s.missions(ctx)
	if err != nil {
		return nil, err
	}

	mission := findMission(missions, projectID)
	if mission == nil {
		return nil, missionNotFound(projectID)
	}

	pilots, err := s.pilots(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]*PilotMatch, 0, len(pilots))
	for _, p := range pilots {
		matches = append(matches, evaluatePilot(p, mission, missions))
	}

	//stable: roster order decides ties
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	report := &PilotMatchReport{Mission: mission}
	for _, m := range matches {
		if len(m.Issues) == 0 {
			report.Recommended = append(report.Recommended, m)
		} else {
			report.Flagged = append(report.Flagged, m)
		}
	}
	return report, nil
}

//MatchDrones partitions the fleet against the given mission's requirements
func (s *Service) MatchDrones(ctx context.Context, projectID string) (*DroneMatchReport, error) {
	missions, err := s.missions(ctx)
	if err != nil {
		return nil, err
	}

	mission := findMission(missions, projectID)
	if mission == nil {
		return nil, missionNotFound(projectID)
	}

	drones, err := s.drones(ctx)
	if err != nil {
		return nil, err
	}

	report := &DroneMatchReport{Mission: mission}
	for _, d := range drones {
		var issues []string

		if !d.Available() {
			issues = append(issues, fmt.Sprintf("status=%s", d.Status))
		}

		if !WeatherCompatible(d.WeatherResistance, mission.WeatherForecast) {
			issues = append(issues, fmt.Sprintf("weather incompatible (%s not rated for %s)", d.WeatherResistance, mission.WeatherForecast))
		}

		if !strings.EqualFold(d.Location, mission.Location) {
			issues = append(issues, fmt.Sprintf("location mismatch (%s != %s)", d.Location, mission.Location))
		}

		maint, maintOK := ParseDate(d.MaintenanceDue)
		start, startOK := ParseDate(mission.StartDate)
		if maintOK && startOK && !maint.After(start) {
			issues = append(issues, fmt.Sprintf("maintenance overdue before mission start (%s)", d.MaintenanceDue))
		}

		if len(issues) == 0 {
			report.Recommended = append(report.Recommended, d)
		} else {
			report.Flagged = append(report.Flagged, &DroneMatch{Drone: d, Issues: issues})
		}
	}
	return report, nil
}
