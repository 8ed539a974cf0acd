package api

import (
	"context"
	"strings"
)

//PilotAssignment links an assigned pilot to its mission. Mission is nil when
//the assignment references a project id that does not exist; the system
//tolerates dangling references rather than enforcing them.
type PilotAssignment struct {
	Pilot   *Pilot   `json:"pilot"`
	Project string   `json:"project"`
	Mission *Mission `json:"mission,omitempty"`
}

//DroneAssignment links an assigned drone to its mission
type DroneAssignment struct {
	Drone   *Drone   `json:"drone"`
	Project string   `json:"project"`
	Mission *Mission `json:"mission,omitempty"`
}

//AssignmentOverview lists every current pilot and drone assignment
type AssignmentOverview struct {
	Pilots []*PilotAssignment `json:"pilots"`
	Drones []*DroneAssignment `json:"drones"`
}

//ActiveAssignments joins assigned pilots and drones to their missions
func (s *Service) ActiveAssignments(ctx context.Context) (*AssignmentOverview, error) {
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

	byProject := make(map[string]*Mission, len(missions))
	for _, m := range missions {
		byProject[m.ProjectID] = m
	}

	overview := &AssignmentOverview{}
	for _, p := range pilots {
		for _, project := range p.Assignments {
			overview.Pilots = append(overview.Pilots, &PilotAssignment{
				Pilot:   p,
				Project: project,
				Mission: byProject[project],
			})
		}
	}
	for _, d := range drones {
		for _, project := range d.Assignments {
			overview.Drones = append(overview.Drones, &DroneAssignment{
				Drone:   d,
				Project: project,
				Mission: byProject[project],
			})
		}
	}
	return overview, nil
}

//reassignmentActions is the fixed follow-up guidance attached to pilot
//reassignment plans
var reassignmentActions = []string{
	"Contact the top recommended pilot immediately",
	"Update the original pilot's status to 'Unavailable'",
	"Confirm drone availability at the mission location",
	"Notify the client of any potential delays",
}

//ReassignmentPlan is the structured result of an urgent reassignment request
type ReassignmentPlan struct {
	Project      string            `json:"project"`
	Reason       string            `json:"reason,omitempty"`
	ResourceType string            `json:"resource_type"`
	Pilots       *PilotMatchReport `json:"pilots,omitempty"`
	Drones       *DroneMatchReport `json:"drones,omitempty"`
	Actions      []string          `json:"actions,omitempty"`
	Priority     string            `json:"priority,omitempty"`
	StartDate    string            `json:"start_date,omitempty"`
}

//UrgentReassignment finds replacement candidates for a mission that lost its
//pilot or drone, with fixed follow-up guidance. resourceType defaults to
//"pilot"; "drone" switches to drone matching.
func (s *Service) UrgentReassignment(ctx context.Context, projectID, reason, resourceType string) (*ReassignmentPlan, error) {
	mission, err := s.ReadMission(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if mission == nil {
		return nil, missionNotFound(projectID)
	}

	plan := &ReassignmentPlan{
		Project:      mission.ProjectID,
		Reason:       reason,
		ResourceType: "pilot",
		Priority:     mission.Priority,
		StartDate:    mission.StartDate,
	}

	if strings.EqualFold(resourceType, "drone") {
		plan.ResourceType = "drone"
		plan.Drones, err = s.MatchDrones(ctx, projectID)
		if err != nil {
			return nil, err
		}
		return plan, nil
	}

	plan.Pilots, err = s.MatchPilots(ctx, projectID)
	if err != nil {
		return nil, err
	}
	plan.Actions = reassignmentActions
	return plan, nil
}
