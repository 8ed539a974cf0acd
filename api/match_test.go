package api

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchPilots(t *testing.T) {
	svc := NewService(testRepo())

	report, err := svc.MatchPilots(context.Background(), "PRJ001")
	require.NoError(t, err)
	require.NotNil(t, report.Mission)
	assert.Equal(t, "PRJ001", report.Mission.ProjectID)

	//P001 is the only clean candidate: location match, skills, certs, within budget
	require.Len(t, report.Recommended, 1)
	top := report.Recommended[0]
	assert.Equal(t, "P001", top.Pilot.ID)
	assert.Equal(t, 40, top.Score)
	assert.Equal(t, 60000.0, top.Cost)
	assert.Empty(t, top.Issues)

	require.Len(t, report.Flagged, 2)

	//P003 outranks P002: location match and full certs beat certs alone
	assert.Equal(t, "P003", report.Flagged[0].Pilot.ID)
	assert.Equal(t, 15, report.Flagged[0].Score)
	assert.Contains(t, report.Flagged[0].Issues, "missing skills: mapping, thermal imaging")

	p2 := report.Flagged[1]
	assert.Equal(t, "P002", p2.Pilot.ID)
	assert.Equal(t, 5, p2.Score)
	assert.Contains(t, p2.Issues, "status=Assigned")
	assert.Contains(t, p2.Issues, "missing skills: thermal imaging")
	assert.Contains(t, p2.Issues, "double-booked with PRJ002")
	assert.Contains(t, p2.Issues, "location mismatch (Bengaluru != Mumbai)")
}

func TestMatchPilotsOverBudget(t *testing.T) {
	repo := testRepo()
	repo.missions[0]["mission_budget_inr"] = "50000"
	svc := NewService(repo)

	report, err := svc.MatchPilots(context.Background(), "PRJ001")
	require.NoError(t, err)

	//P001 now costs 60000 against a 50000 budget
	assert.Empty(t, report.Recommended)
	require.NotEmpty(t, report.Flagged)
	assert.Equal(t, "P001", report.Flagged[0].Pilot.ID)
	assert.Contains(t, report.Flagged[0].Issues, "over budget (60000 > 50000)")
}

func TestMatchPilotsUnknownMission(t *testing.T) {
	svc := NewService(testRepo())

	_, err := svc.MatchPilots(context.Background(), "PRJ999")
	require.Error(t, err)
	e := new(Error)
	require.True(t, errors.As(err, &e))
	assert.Equal(t, ErrorTypeNotFound, e.Type)
}

func TestMatchDrones(t *testing.T) {
	svc := NewService(testRepo())

	report, err := svc.MatchDrones(context.Background(), "PRJ003")
	require.NoError(t, err)

	//D001: available, IP55 covers rain, in Mumbai, maintenance after mission start
	require.Len(t, report.Recommended, 1)
	assert.Equal(t, "D001", report.Recommended[0].ID)

	require.Len(t, report.Flagged, 2)

	d2 := report.Flagged[0]
	assert.Equal(t, "D002", d2.Drone.ID)
	assert.Contains(t, d2.Issues, "status=Deployed")
	assert.Contains(t, d2.Issues, "location mismatch (Bengaluru != Mumbai)")

	d3 := report.Flagged[1]
	assert.Equal(t, "D003", d3.Drone.ID)
	assert.Contains(t, d3.Issues, "status=Maintenance")
	assert.Contains(t, d3.Issues, "maintenance overdue before mission start (2026-08-20)")
}

func TestMatchDronesWeather(t *testing.T) {
	repo := testRepo()
	repo.drones[0]["weather_resistance"] = "standard"
	svc := NewService(repo)

	report, err := svc.MatchDrones(context.Background(), "PRJ003")
	require.NoError(t, err)

	assert.Empty(t, report.Recommended)
	require.NotEmpty(t, report.Flagged)
	assert.Equal(t, "D001", report.Flagged[0].Drone.ID)
	assert.Contains(t, report.Flagged[0].Issues, "weather incompatible (standard not rated for rainy)")
}
