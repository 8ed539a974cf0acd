package chatbot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samy8144/ai-operations-coordinator/api"
)

// ToolExecutor dispatches tool calls to service methods
type ToolExecutor struct {
	svc *api.Service
}

// NewToolExecutor creates a new tool executor
func NewToolExecutor(svc *api.Service) *ToolExecutor {
	return &ToolExecutor{svc: svc}
}

// Execute runs a tool call and returns the JSON result. Domain errors are
// returned inside the result so the AI can recover; only marshaling failures
// are real errors.
func (e *ToolExecutor) Execute(ctx context.Context, name string, arguments string) (string, error) {
	var args map[string]interface{}
	if arguments != "" {
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return "", fmt.Errorf("failed to parse arguments: %w", err)
		}
	}

	var result interface{}
	var err error

	switch name {
	case "get_pilot_roster":
		result, err = e.getPilotRoster(ctx, args)
	case "get_pilot_details":
		result, err = e.getPilotDetails(ctx, args)
	case "update_pilot_status":
		result, err = e.updatePilotStatus(ctx, args)
	case "calculate_pilot_cost":
		result, err = e.calculatePilotCost(ctx, args)
	case "get_drone_fleet":
		result, err = e.getDroneFleet(ctx, args)
	case "update_drone_status":
		result, err = e.updateDroneStatus(ctx, args)
	case "get_missions":
		result, err = e.getMissions(ctx, args)
	case "match_pilot_to_mission":
		result, err = e.matchPilotToMission(ctx, args)
	case "match_drone_to_mission":
		result, err = e.matchDroneToMission(ctx, args)
	case "detect_conflicts":
		result, err = e.detectConflicts(ctx, args)
	case "urgent_reassignment":
		result, err = e.urgentReassignment(ctx, args)
	case "get_active_assignments":
		result, err = e.getActiveAssignments(ctx)
	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}

	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error()), nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	return string(data), nil
}

func getString(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func (e *ToolExecutor) getPilotRoster(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return e.svc.QueryPilots(ctx,
		getString(args, "skill"),
		getString(args, "certification"),
		getString(args, "location"),
		getString(args, "status"),
	)
}

func (e *ToolExecutor) getPilotDetails(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	pilotID := getString(args, "pilot_id")
	name := getString(args, "name")
	if pilotID == "" && name == "" {
		return nil, fmt.Errorf("pilot_id or name is required")
	}

	pilot, err := e.svc.ReadPilot(ctx, pilotID, name)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return map[string]string{"error": "pilot not found"}, nil
	}
	return pilot, nil
}

func (e *ToolExecutor) updatePilotStatus(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	pilotID := getString(args, "pilot_id")
	newStatus := getString(args, "new_status")
	if pilotID == "" {
		return nil, fmt.Errorf("pilot_id is required")
	}
	if newStatus == "" {
		return nil, fmt.Errorf("new_status is required")
	}
	return e.svc.UpdatePilotStatus(ctx, pilotID, newStatus, getString(args, "note"))
}

func (e *ToolExecutor) calculatePilotCost(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	pilotID := getString(args, "pilot_id")
	if pilotID == "" {
		return nil, fmt.Errorf("pilot_id is required")
	}
	return e.svc.PilotCostEstimate(ctx, pilotID,
		getString(args, "start_date"),
		getString(args, "end_date"),
	)
}

func (e *ToolExecutor) getDroneFleet(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return e.svc.QueryDrones(ctx,
		getString(args, "capability"),
		getString(args, "status"),
		getString(args, "location"),
		getString(args, "weather_forecast"),
	)
}

func (e *ToolExecutor) updateDroneStatus(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	droneID := getString(args, "drone_id")
	newStatus := getString(args, "new_status")
	if droneID == "" {
		return nil, fmt.Errorf("drone_id is required")
	}
	if newStatus == "" {
		return nil, fmt.Errorf("new_status is required")
	}
	return e.svc.UpdateDroneStatus(ctx, droneID, newStatus, getString(args, "note"))
}

func (e *ToolExecutor) getMissions(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return e.svc.QueryMissions(ctx,
		getString(args, "location"),
		getString(args, "priority"),
		getString(args, "project_id"),
	)
}

func (e *ToolExecutor) matchPilotToMission(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	projectID := getString(args, "project_id")
	if projectID == "" {
		return nil, fmt.Errorf("project_id is required")
	}
	return e.svc.MatchPilots(ctx, projectID)
}

func (e *ToolExecutor) matchDroneToMission(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	projectID := getString(args, "project_id")
	if projectID == "" {
		return nil, fmt.Errorf("project_id is required")
	}
	return e.svc.MatchDrones(ctx, projectID)
}

func (e *ToolExecutor) detectConflicts(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return e.svc.DetectConflicts(ctx, getString(args, "project_id"))
}

func (e *ToolExecutor) urgentReassignment(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	projectID := getString(args, "project_id")
	if projectID == "" {
		return nil, fmt.Errorf("project_id is required")
	}
	return e.svc.UrgentReassignment(ctx, projectID,
		getString(args, "reason"),
		getString(args, "resource_type"),
	)
}

func (e *ToolExecutor) getActiveAssignments(ctx context.Context) (interface{}, error) {
	return e.svc.ActiveAssignments(ctx)
}
