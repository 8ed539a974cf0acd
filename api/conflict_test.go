package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findingTypes(findings []*Finding) []FindingType {
	var types []FindingType
	for _, f := range findings {
		types = append(types, f.Type)
	}
	return types
}

func TestDetectConflictsSingleProject(t *testing.T) {
	svc := NewService(testRepo())

	//P002 holds PRJ001 and PRJ002 with overlapping dates; D002 is deployed from
	//the wrong city
	report, err := svc.DetectConflicts(context.Background(), "PRJ001")
	require.NoError(t, err)
	assert.False(t, report.AllClear)

	types := findingTypes(report.Findings)
	assert.Equal(t, []FindingType{
		FindingDoubleBooking,
		FindingSkillMismatch,
		FindingLocationMismatch,
		FindingDroneLocationMismatch,
	}, types)

	//severity ordering: CRITICAL first
	assert.Equal(t, SeverityCritical, report.Findings[0].Severity)
	assert.Contains(t, report.Findings[0].Message, "PRJ001")
	assert.Contains(t, report.Findings[0].Message, "PRJ002")
	assert.Contains(t, report.Findings[0].Message, "Priya Nair")

	for _, f := range report.Findings {
		assert.Equal(t, "PRJ001", f.Project)
	}
}

func TestDetectConflictsAllMissions(t *testing.T) {
	svc := NewService(testRepo())

	report, err := svc.DetectConflicts(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, report.AllClear)

	//PRJ002 is also held by P002, so the double booking surfaces from both sides
	var doubleBookings int
	for _, f := range report.Findings {
		if f.Type == FindingDoubleBooking {
			doubleBookings++
			assert.Equal(t, SeverityCritical, f.Severity)
		}
	}
	assert.Equal(t, 2, doubleBookings)

	//findings are grouped strictly by severity rank
	lastRank := 0
	for _, f := range report.Findings {
		rank := severityRank[f.Severity]
		assert.GreaterOrEqual(t, rank, lastRank)
		lastRank = rank
	}
}

func TestDetectConflictsAllClear(t *testing.T) {
	//nobody assigned to PRJ003, so a scoped scan finds nothing
	svc := NewService(testRepo())

	report, err := svc.DetectConflicts(context.Background(), "PRJ003")
	require.NoError(t, err)
	assert.True(t, report.AllClear)
	assert.Empty(t, report.Findings)
}

func TestDetectConflictsBudgetNeedsPositiveBudget(t *testing.T) {
	repo := testRepo()
	repo.missions[0]["mission_budget_inr"] = "10000"
	svc := NewService(repo)

	report, err := svc.DetectConflicts(context.Background(), "PRJ001")
	require.NoError(t, err)
	assert.Contains(t, findingTypes(report.Findings), FindingBudgetOverrun)

	//a missing budget is unknown, not zero: no overrun finding
	repo.missions[0]["mission_budget_inr"] = ""
	report, err = svc.DetectConflicts(context.Background(), "PRJ001")
	require.NoError(t, err)
	assert.NotContains(t, findingTypes(report.Findings), FindingBudgetOverrun)
}

func TestDetectConflictsDroneMaintenance(t *testing.T) {
	repo := testRepo()
	repo.drones[2]["current_assignment"] = "PRJ003"
	svc := NewService(repo)

	report, err := svc.DetectConflicts(context.Background(), "PRJ003")
	require.NoError(t, err)
	assert.False(t, report.AllClear)

	require.NotEmpty(t, report.Findings)
	assert.Equal(t, FindingDroneMaintenance, report.Findings[0].Type)
	assert.Equal(t, SeverityCritical, report.Findings[0].Severity)
	assert.Contains(t, report.Findings[0].Message, "D003")
}

func TestDetectConflictsPilotDroneSplit(t *testing.T) {
	repo := testRepo()
	//P001 (Mumbai) and D002 (Bengaluru) both on PRJ002
	repo.pilots[0]["current_assignment"] = "PRJ002"
	repo.drones[1]["current_assignment"] = "PRJ002"
	svc := NewService(repo)

	report, err := svc.DetectConflicts(context.Background(), "PRJ002")
	require.NoError(t, err)

	types := findingTypes(report.Findings)
	assert.Contains(t, types, FindingPilotDroneLocationSplit)
}
