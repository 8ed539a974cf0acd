package api

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

//Severity ranks a conflict finding
type Severity string

//Severities, in presentation order
const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
)

var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
}

//FindingType identifies the kind of conflict detected
type FindingType string

//FindingTypes
const (
	FindingSkillMismatch           FindingType = "SKILL_MISMATCH"
	FindingCertMismatch            FindingType = "CERT_MISMATCH"
	FindingBudgetOverrun           FindingType = "BUDGET_OVERRUN"
	FindingLocationMismatch        FindingType = "LOCATION_MISMATCH"
	FindingDoubleBooking           FindingType = "DOUBLE_BOOKING"
	FindingWeatherRisk             FindingType = "WEATHER_RISK"
	FindingDroneMaintenance        FindingType = "DRONE_MAINTENANCE"
	FindingDroneLocationMismatch   FindingType = "DRONE_LOCATION_MISMATCH"
	FindingPilotDroneLocationSplit FindingType = "PILOT_DRONE_LOCATION_MISMATCH"
)

//Finding is one typed conflict detected on a mission's assignments
type Finding struct {
	Type     FindingType `json:"type"`
	Severity Severity    `json:"severity"`
	Project  string      `json:"project"`
	Message  string      `json:"message"`
}

//ConflictReport lists all findings, ordered CRITICAL, HIGH, MEDIUM. AllClear is
//the explicit "no conflicts" state, distinct from a merely empty list.
type ConflictReport struct {
	Findings []*Finding `json:"findings"`
	AllClear bool       `json:"all_clear"`
}

//assignedPilot returns the first pilot assigned to the given mission id, in
//repository order, or nil
func assignedPilot(pilots []*Pilot, projectID string) *Pilot {
	for _, p := range pilots {
		if p.AssignedTo(projectID) {
			return p
		}
	}
	return nil
}

//assignedDrone returns the first drone assigned to the given mission id, in
//repository order, or nil
func assignedDrone(drones []*Drone, projectID string) *Drone {
	for _, d := range drones {
		if d.AssignedTo(projectID) {
			return d
		}
	}
	return nil
}

//DetectConflicts scans mission assignments for scheduling problems. An empty
//projectID scans every mission; otherwise only the named mission is scanned.
//Double-booking is always checked against the full mission list.
func (s *Service) DetectConflicts(ctx context.Context, projectID string) (*ConflictReport, error) {
	pilots, err := s.pilots(ctx)
	if err != nil {
		return nil, err
	}
	drones, err := s.drones(ctx)
	if err != nil {
		return nil, err
	}
	missions, err := s.missions(ctx)
	if err != nil {
		return nil, err
	}

	scan := missions
	if projectID != "" {
		scan = nil
		for _, m := range missions {
			if strings.EqualFold(m.ProjectID, projectID) {
				scan = append(scan, m)
			}
		}
	}

	var findings []*Finding
	for _, mission := range scan {
		findings = append(findings, missionConflicts(mission, missions, pilots, drones)...)
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return severityRank[findings[i].Severity] < severityRank[findings[j].Severity]
	})

	return &ConflictReport{Findings: findings, AllClear: len(findings) == 0}, nil
}

func missionConflicts(mission *Mission, missions []*Mission, pilots []*Pilot, drones []*Drone) []*Finding {
	pid := mission.ProjectID
	var findings []*Finding

	pilot := assignedPilot(pilots, pid)
	drone := assignedDrone(drones, pid)

	if pilot != nil {
		if missing := MissingSkills(pilot.Skills, mission.RequiredSkills); len(missing) > 0 {
			findings = append(findings, &Finding{
				Type: FindingSkillMismatch, Severity: SeverityHigh, Project: pid,
				Message: fmt.Sprintf("Pilot %s lacks skills: %s required for %s", pilot.Name, strings.Join(missing, ", "), pid),
			})
		}

		if missing := MissingCerts(pilot.Certifications, mission.RequiredCerts); len(missing) > 0 {
			findings = append(findings, &Finding{
				Type: FindingCertMismatch, Severity: SeverityHigh, Project: pid,
				Message: fmt.Sprintf("Pilot %s lacks certifications: %s required for %s", pilot.Name, strings.Join(missing, ", "), pid),
			})
		}

		cost := PilotCost(pilot.DailyRate, mission.StartDate, mission.EndDate)
		if mission.Budget > 0 && cost > mission.Budget {
			findings = append(findings, &Finding{
				Type: FindingBudgetOverrun, Severity: SeverityMedium, Project: pid,
				Message: fmt.Sprintf("Pilot %s costs %.0f but budget is %.0f for %s", pilot.Name, cost, mission.Budget, pid),
			})
		}

		if !strings.EqualFold(pilot.Location, mission.Location) {
			findings = append(findings, &Finding{
				Type: FindingLocationMismatch, Severity: SeverityMedium, Project: pid,
				Message: fmt.Sprintf("Pilot %s is in %s but mission is in %s", pilot.Name, pilot.Location, mission.Location),
			})
		}

		for _, other := range missions {
			if other.ProjectID == pid {
				continue
			}
			if pilot.AssignedTo(other.ProjectID) && DatesOverlap(mission.StartDate, mission.EndDate, other.StartDate, other.EndDate) {
				findings = append(findings, &Finding{
					Type: FindingDoubleBooking, Severity: SeverityCritical, Project: pid,
					Message: fmt.Sprintf("Pilot %s double-booked: %s and %s overlap", pilot.Name, pid, other.ProjectID),
				})
			}
		}
	}

	if drone != nil {
		if !WeatherCompatible(drone.WeatherResistance, mission.WeatherForecast) {
			findings = append(findings, &Finding{
				Type: FindingWeatherRisk, Severity: SeverityHigh, Project: pid,
				Message: fmt.Sprintf("Drone %s (%s) not rated for %s weather in %s", drone.Model, drone.ID, mission.WeatherForecast, pid),
			})
		}

		if drone.InMaintenance() {
			findings = append(findings, &Finding{
				Type: FindingDroneMaintenance, Severity: SeverityCritical, Project: pid,
				Message: fmt.Sprintf("Drone %s assigned to %s but is currently in maintenance", drone.ID, pid),
			})
		}

		if !strings.EqualFold(drone.Location, mission.Location) {
			findings = append(findings, &Finding{
				Type: FindingDroneLocationMismatch, Severity: SeverityMedium, Project: pid,
				Message: fmt.Sprintf("Drone %s is in %s but mission is in %s", drone.ID, drone.Location, mission.Location),
			})
		}

		if pilot != nil && !strings.EqualFold(pilot.Location, drone.Location) {
			findings = append(findings, &Finding{
				Type: FindingPilotDroneLocationSplit, Severity: SeverityMedium, Project: pid,
				Message: fmt.Sprintf("Pilot %s (%s) and Drone %s (%s) are in different locations for %s",
					pilot.Name, pilot.Location, drone.ID, drone.Location, pid),
			})
		}
	}

	return findings
}
