package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCSV(t *testing.T, dir, tab, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(csvPath(dir, tab), []byte(content), 0644))
}

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()

	rows := [][]string{
		{"pilot_id", "name", "status"},
		{"P001", "Arjun Mehta", "Available"},
		{"P002", "Priya, Nair", "Assigned"},
	}
	require.NoError(t, writeCSV(dir, TabPilots, rows))

	got, err := readCSV(dir, TabPilots)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestReadPilotsFromCSV(t *testing.T) {
	dir := t.TempDir()
	writeTestCSV(t, dir, TabPilots,
		"pilot_id,name,status\nP001,Arjun Mehta,Available\nP002,Priya Nair\n")

	store := NewStore(nil, dir)
	assert.False(t, store.Connected())

	records, err := store.ReadPilots(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "P001", records[0]["pilot_id"])
	assert.Equal(t, "Available", records[0]["status"])

	//short rows are padded with empty fields
	assert.Equal(t, "P002", records[1]["pilot_id"])
	assert.Equal(t, "", records[1]["status"])
}

func TestReadMissingCSV(t *testing.T) {
	store := NewStore(nil, t.TempDir())

	_, err := store.ReadMissions(context.Background())
	require.Error(t, err)
}

func TestUpdatePilotStatusCSV(t *testing.T) {
	dir := t.TempDir()
	writeTestCSV(t, dir, TabPilots,
		"pilot_id,name,status,note\nP001,Arjun Mehta,Available,\nP002,Priya Nair,Assigned,\n")

	store := NewStore(nil, dir)

	result, err := store.UpdatePilotStatus(context.Background(), "P002", "On Leave", "back in October")
	require.NoError(t, err)
	assert.Equal(t, SyncedToCSV, result.SyncedTo)

	records, err := store.ReadPilots(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "On Leave", records[1]["status"])
	assert.Equal(t, "back in October", records[1]["note"])
	assert.Equal(t, "Available", records[0]["status"])
}

func TestUpdatePilotStatusCSVNotFound(t *testing.T) {
	dir := t.TempDir()
	writeTestCSV(t, dir, TabPilots, "pilot_id,name,status\nP001,Arjun Mehta,Available\n")

	store := NewStore(nil, dir)

	_, err := store.UpdatePilotStatus(context.Background(), "P999", "On Leave", "")
	require.Error(t, err)
}

func TestReadPilotsRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(&valueRange{Values: [][]string{
			{"pilot_id", "name", "status"},
			{"P001", "Arjun Mehta", "Available"},
		}})
	}))
	defer srv.Close()

	store := NewStore(NewClient(srv.URL, "sheet-id", "key"), t.TempDir())
	assert.True(t, store.Connected())

	records, err := store.ReadPilots(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Arjun Mehta", records[0]["name"])
}

func TestRemoteFailureFallsBackToCSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	writeTestCSV(t, dir, TabDrones, "drone_id,status\nD001,Available\n")

	store := NewStore(NewClient(srv.URL, "sheet-id", "key"), dir)

	records, err := store.ReadDrones(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "D001", records[0]["drone_id"])
}

func TestUpdateDroneStatusRemote(t *testing.T) {
	var puts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(&valueRange{Values: [][]string{
				{"drone_id", "status", "note"},
				{"D001", "Available", ""},
				{"D002", "Deployed", ""},
			}})
		case http.MethodPut:
			puts = append(puts, r.URL.Path)
			w.Write([]byte("{}"))
		}
	}))
	defer srv.Close()

	store := NewStore(NewClient(srv.URL, "sheet-id", "key"), t.TempDir())

	result, err := store.UpdateDroneStatus(context.Background(), "D002", "Maintenance", "rotor damage")
	require.NoError(t, err)
	assert.Equal(t, SyncedToSheets, result.SyncedTo)

	//one write for the status cell, one for the note cell
	assert.Len(t, puts, 2)
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "A", columnName(0))
	assert.Equal(t, "B", columnName(1))
	assert.Equal(t, "Z", columnName(25))
	assert.Equal(t, "AA", columnName(26))
	assert.Equal(t, "AB", columnName(27))
}
