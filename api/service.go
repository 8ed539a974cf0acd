package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

//Service exposes the matching, conflict-detection, and roster operations over
//an injected Repository
type Service struct {
	repo Repository
}

//NewService creates a new Service backed by the given Repository
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) pilots(ctx context.Context) ([]*Pilot, error) {
	records, err := s.repo.ReadPilots(ctx)
	if err != nil {
		return nil, &Error{Description: "Could not read pilot roster", Type: ErrorTypeServer, Err: err}
	}
	pilots := make([]*Pilot, 0, len(records))
	for _, r := range records {
		pilots = append(pilots, PilotFromRecord(r))
	}
	return pilots, nil
}

func (s *Service) drones(ctx context.Context) ([]*Drone, error) {
	records, err := s.repo.ReadDrones(ctx)
	if err != nil {
		return nil, &Error{Description: "Could not read drone fleet", Type: ErrorTypeServer, Err: err}
	}
	drones := make([]*Drone, 0, len(records))
	for _, r := range records {
		drones = append(drones, DroneFromRecord(r))
	}
	return drones, nil
}

func (s *Service) missions(ctx context.Context) ([]*Mission, error) {
	records, err := s.repo.ReadMissions(ctx)
	if err != nil {
		return nil, &Error{Description: "Could not read missions", Type: ErrorTypeServer, Err: err}
	}
	missions := make([]*Mission, 0, len(records))
	for _, r := range records {
		missions = append(missions, MissionFromRecord(r))
	}
	return missions, nil
}

//contains is a case-insensitive substring filter that passes on an empty query
func contains(value, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

//QueryPilots returns pilots matching the given filters. Skill, certification,
//and location filter by substring; status must match exactly
//(case-insensitive). Empty filters pass everything.
func (s *Service) QueryPilots(ctx context.Context, skill, certification, location, status string) ([]*Pilot, error) {
	pilots, err := s.pilots(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []*Pilot
	for _, p := range pilots {
		if !contains(p.Skills, skill) || !contains(p.Certifications, certification) || !contains(p.Location, location) {
			continue
		}
		if status != "" && !strings.EqualFold(p.Status, status) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

//ReadPilot returns the pilot with the given id (exact, trimmed), or, if id is
//empty, the first pilot whose name contains the given name
//(case-insensitive). It returns nil if no pilot matches.
func (s *Service) ReadPilot(ctx context.Context, pilotID, name string) (*Pilot, error) {
	pilots, err := s.pilots(ctx)
	if err != nil {
		return nil, err
	}

	pilotID = strings.TrimSpace(pilotID)
	for _, p := range pilots {
		if pilotID != "" && p.ID == pilotID {
			return p, nil
		}
		if pilotID == "" && name != "" && contains(p.Name, name) {
			return p, nil
		}
	}
	return nil, nil
}

//QueryDrones returns drones matching the given filters. Capability and
//location filter by substring; status must match exactly (case-insensitive);
//weatherForecast keeps only drones compatible with that forecast.
func (s *Service) QueryDrones(ctx context.Context, capability, status, location, weatherForecast string) ([]*Drone, error) {
	drones, err := s.drones(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []*Drone
	for _, d := range drones {
		if !contains(d.Capabilities, capability) || !contains(d.Location, location) {
			continue
		}
		if status != "" && !strings.EqualFold(d.Status, status) {
			continue
		}
		if weatherForecast != "" && !WeatherCompatible(d.WeatherResistance, weatherForecast) {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered, nil
}

//QueryMissions returns missions matching the given filters. Location filters
//by substring; priority matches exactly (case-insensitive); projectID matches
//the mission id (case-insensitive).
func (s *Service) QueryMissions(ctx context.Context, location, priority, projectID string) ([]*Mission, error) {
	missions, err := s.missions(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []*Mission
	for _, m := range missions {
		if !contains(m.Location, location) {
			continue
		}
		if priority != "" && !strings.EqualFold(m.Priority, priority) {
			continue
		}
		if projectID != "" && !strings.EqualFold(m.ProjectID, projectID) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered, nil
}

//ReadMission returns the mission with the given project id (case-insensitive),
//or nil if none matches
func (s *Service) ReadMission(ctx context.Context, projectID string) (*Mission, error) {
	missions, err := s.missions(ctx)
	if err != nil {
		return nil, err
	}
	return findMission(missions, projectID), nil
}

//StatusUpdate is the structured result of a successful status write
type StatusUpdate struct {
	ID        string `json:"id"`
	NewStatus string `json:"new_status"`
	Note      string `json:"note,omitempty"`
	SyncedTo  string `json:"synced_to"`
}

//UpdatePilotStatus sets a pilot's status (and note, if given). The status must
//be one of PilotStatuses; invalid values are rejected before any write.
func (s *Service) UpdatePilotStatus(ctx context.Context, pilotID, newStatus, note string) (*StatusUpdate, error) {
	if !validStatus(newStatus, PilotStatuses) {
		return nil, &Error{
			Description: "Could not validate pilot status",
			Type:        ErrorTypeUser,
			Err:         fmt.Errorf("status (%s) must be one of: %s", newStatus, strings.Join(PilotStatuses, ", ")),
		}
	}

	pilot, err := s.ReadPilot(ctx, pilotID, "")
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, &Error{
			Description: fmt.Sprintf("Could not find Pilot(%s)", pilotID),
			Type:        ErrorTypeNotFound,
			Err:         errors.New("no pilot matches the given id"),
		}
	}

	result, err := s.repo.UpdatePilotStatus(ctx, pilot.ID, newStatus, note)
	if err != nil {
		return nil, &Error{Description: fmt.Sprintf("Could not update Pilot(%s)", pilotID), Type: ErrorTypeServer, Err: err}
	}

	return &StatusUpdate{ID: pilot.ID, NewStatus: newStatus, Note: note, SyncedTo: result.SyncedTo}, nil
}

//UpdateDroneStatus sets a drone's status (and note, if given). The status must
//be one of DroneStatuses; validation mirrors the pilot path.
func (s *Service) UpdateDroneStatus(ctx context.Context, droneID, newStatus, note string) (*StatusUpdate, error) {
	if !validStatus(newStatus, DroneStatuses) {
		return nil, &Error{
			Description: "Could not validate drone status",
			Type:        ErrorTypeUser,
			Err:         fmt.Errorf("status (%s) must be one of: %s", newStatus, strings.Join(DroneStatuses, ", ")),
		}
	}

	drones, err := s.drones(ctx)
	if err != nil {
		return nil, err
	}

	droneID = strings.TrimSpace(droneID)
	var drone *Drone
	for _, d := range drones {
		if d.ID == droneID {
			drone = d
			break
		}
	}
	if drone == nil {
		return nil, &Error{
			Description: fmt.Sprintf("Could not find Drone(%s)", droneID),
			Type:        ErrorTypeNotFound,
			Err:         errors.New("no drone matches the given id"),
		}
	}

	result, err := s.repo.UpdateDroneStatus(ctx, drone.ID, newStatus, note)
	if err != nil {
		return nil, &Error{Description: fmt.Sprintf("Could not update Drone(%s)", droneID), Type: ErrorTypeServer, Err: err}
	}

	return &StatusUpdate{ID: drone.ID, NewStatus: newStatus, Note: note, SyncedTo: result.SyncedTo}, nil
}

//PilotCostEstimate computes the cost of a pilot over a date range. Without
//both dates the estimate carries the daily rate only.
func (s *Service) PilotCostEstimate(ctx context.Context, pilotID, startDate, endDate string) (*CostEstimate, error) {
	pilot, err := s.ReadPilot(ctx, pilotID, "")
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, &Error{
			Description: fmt.Sprintf("Could not find Pilot(%s)", pilotID),
			Type:        ErrorTypeNotFound,
			Err:         errors.New("no pilot matches the given id"),
		}
	}

	estimate := &CostEstimate{
		Pilot:     pilot,
		DailyRate: pilot.DailyRate,
		StartDate: startDate,
		EndDate:   endDate,
	}

	estimate.Days = MissionDays(startDate, endDate)
	if estimate.Days == 0 {
		estimate.Note = "duration unknown; daily rate only"
		return estimate, nil
	}

	estimate.Total = PilotCost(pilot.DailyRate, startDate, endDate)
	return estimate, nil
}
