package chatbot

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samy8144/ai-operations-coordinator/api"
)

type fakeRepo struct{}

func (f *fakeRepo) ReadPilots(ctx context.Context) ([]api.Record, error) {
	return []api.Record{
		{"pilot_id": "P001", "name": "Arjun Mehta", "location": "Mumbai", "status": "Available",
			"skills": "thermal imaging, mapping", "certifications": "DGCA Remote Pilot",
			"daily_rate_inr": "12000", "current_assignment": "-"},
	}, nil
}

func (f *fakeRepo) ReadDrones(ctx context.Context) ([]api.Record, error) {
	return []api.Record{
		{"drone_id": "D001", "model": "DJI Matrice 350", "location": "Mumbai", "status": "Available",
			"capabilities": "thermal imaging, mapping", "weather_resistance": "IP55",
			"maintenance_due": "2026-11-30", "current_assignment": ""},
	}, nil
}

func (f *fakeRepo) ReadMissions(ctx context.Context) ([]api.Record, error) {
	return []api.Record{
		{"project_id": "PRJ001", "client": "Skyline Realty", "location": "Mumbai",
			"required_skills": "mapping", "required_certs": "DGCA Remote Pilot",
			"start_date": "2026-09-01", "end_date": "2026-09-05", "mission_budget_inr": "80000",
			"priority": "Urgent", "weather_forecast": "sunny"},
	}, nil
}

func (f *fakeRepo) UpdatePilotStatus(ctx context.Context, pilotID, status, note string) (*api.WriteResult, error) {
	return &api.WriteResult{SyncedTo: "CSV (offline)"}, nil
}

func (f *fakeRepo) UpdateDroneStatus(ctx context.Context, droneID, status, note string) (*api.WriteResult, error) {
	return &api.WriteResult{SyncedTo: "CSV (offline)"}, nil
}

func testExecutor() *ToolExecutor {
	return NewToolExecutor(api.NewService(&fakeRepo{}))
}

func TestExecuteUnknownTool(t *testing.T) {
	_, err := testExecutor().Execute(context.Background(), "launch_drone", "{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestExecuteBadArguments(t *testing.T) {
	_, err := testExecutor().Execute(context.Background(), "get_pilot_roster", "{not json")
	require.Error(t, err)
}

func TestExecuteGetPilotDetails(t *testing.T) {
	result, err := testExecutor().Execute(context.Background(), "get_pilot_details", `{"pilot_id":"P001"}`)
	require.NoError(t, err)

	var pilot map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(result), &pilot))
	assert.Equal(t, "Arjun Mehta", pilot["name"])
}

func TestExecuteGetPilotDetailsNotFound(t *testing.T) {
	result, err := testExecutor().Execute(context.Background(), "get_pilot_details", `{"pilot_id":"P999"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"pilot not found"}`, result)
}

func TestExecuteMissingRequiredArgument(t *testing.T) {
	//domain errors come back inside the result, not as Go errors, so the AI can
	//read them and retry
	result, err := testExecutor().Execute(context.Background(), "match_pilot_to_mission", "{}")
	require.NoError(t, err)
	assert.Contains(t, result, "project_id is required")
}

func TestExecuteInvalidStatusIsRecoverable(t *testing.T) {
	result, err := testExecutor().Execute(context.Background(), "update_pilot_status",
		`{"pilot_id":"P001","new_status":"Retired"}`)
	require.NoError(t, err)
	assert.Contains(t, result, "error")
	assert.Contains(t, result, "must be one of")
}

func TestExecuteUpdatePilotStatus(t *testing.T) {
	result, err := testExecutor().Execute(context.Background(), "update_pilot_status",
		`{"pilot_id":"P001","new_status":"On Leave","note":"sick"}`)
	require.NoError(t, err)

	var update map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(result), &update))
	assert.Equal(t, "On Leave", update["new_status"])
	assert.Equal(t, "CSV (offline)", update["synced_to"])
}

func TestExecuteMatchPilotToMission(t *testing.T) {
	result, err := testExecutor().Execute(context.Background(), "match_pilot_to_mission", `{"project_id":"PRJ001"}`)
	require.NoError(t, err)

	var report struct {
		Recommended []struct {
			Score int `json:"score"`
		} `json:"recommended"`
	}
	require.NoError(t, json.Unmarshal([]byte(result), &report))
	require.Len(t, report.Recommended, 1)
	assert.Equal(t, 40, report.Recommended[0].Score)
}

func TestExecuteDetectConflicts(t *testing.T) {
	result, err := testExecutor().Execute(context.Background(), "detect_conflicts", "")
	require.NoError(t, err)

	var report struct {
		AllClear bool `json:"all_clear"`
	}
	require.NoError(t, json.Unmarshal([]byte(result), &report))
	assert.True(t, report.AllClear)
}

func TestExecuteGetActiveAssignments(t *testing.T) {
	result, err := testExecutor().Execute(context.Background(), "get_active_assignments", "{}")
	require.NoError(t, err)
	assert.Contains(t, result, "pilots")
	assert.Contains(t, result, "drones")
}
