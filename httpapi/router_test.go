package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/samy8144/ai-operations-coordinator/api"
	"github.com/samy8144/ai-operations-coordinator/sheets"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"pilot_roster.csv": "pilot_id,name,location,status,skills,certifications,daily_rate_inr,current_assignment\n" +
			"P001,Arjun Mehta,Mumbai,Available,\"thermal imaging, mapping\",DGCA Remote Pilot,12000,-\n",
		"drone_fleet.csv": "drone_id,model,location,status,capabilities,weather_resistance,maintenance_due,current_assignment\n" +
			"D001,DJI Matrice 350,Mumbai,Available,\"thermal imaging, mapping\",IP55,2026-11-30,\n",
		"missions.csv": "project_id,client,location,required_skills,required_certs,start_date,end_date,mission_budget_inr,priority,weather_forecast\n" +
			"PRJ001,Skyline Realty,Mumbai,mapping,DGCA Remote Pilot,2026-09-01,2026-09-05,80000,Urgent,sunny\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	store := sheets.NewStore(nil, dir)
	svc := api.NewService(store)
	s := NewMemorySessionStore(time.Minute)

	srv := httptest.NewServer(NewRouter(io.Discard, s, svc, store, string(hash), nil))
	t.Cleanup(srv.Close)
	return srv
}

func authenticate(t *testing.T, srv *httptest.Server, password string) (*http.Response, string) {
	t.Helper()

	body, err := json.Marshal(&AuthenticateRequest{Password: password})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/1.0/auth", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp, ""
	}

	var auth AuthenticateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))
	return resp, auth.SessionKey
}

func TestAuthenticate(t *testing.T) {
	srv := testServer(t)

	resp, key := authenticate(t, srv, "hunter2")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, key)

	resp, _ = authenticate(t, srv, "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoutesRequireSession(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/1.0/pilots/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestQueryPilotsRoute(t *testing.T) {
	srv := testServer(t)
	_, key := authenticate(t, srv, "hunter2")

	req, err := http.NewRequest("GET", srv.URL+"/api/1.0/pilots/?skill=thermal", nil)
	require.NoError(t, err)
	req.Header.Set("X-Session-Key", key)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var qr QueryPilotsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&qr))
	require.Len(t, qr.Pilots, 1)
	assert.Equal(t, "P001", qr.Pilots[0].ID)
}

func TestMatchPilotsRoute(t *testing.T) {
	srv := testServer(t)
	_, key := authenticate(t, srv, "hunter2")

	req, err := http.NewRequest("GET", srv.URL+"/api/1.0/missions/PRJ001/pilots", nil)
	require.NoError(t, err)
	req.Header.Set("X-Session-Key", key)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report api.PilotMatchReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	require.Len(t, report.Recommended, 1)
	assert.Equal(t, 40, report.Recommended[0].Score)
}

func TestUpdatePilotStatusRoute(t *testing.T) {
	srv := testServer(t)
	_, key := authenticate(t, srv, "hunter2")

	body := bytes.NewReader([]byte(`{"new_status":"On Leave","note":"sick"}`))
	req, err := http.NewRequest("POST", srv.URL+"/api/1.0/pilots/P001/status", body)
	require.NoError(t, err)
	req.Header.Set("X-Session-Key", key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var update api.StatusUpdate
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&update))
	assert.Equal(t, "On Leave", update.NewStatus)
	assert.Equal(t, "CSV (offline)", update.SyncedTo)
}

func TestInvalidStatusRoute(t *testing.T) {
	srv := testServer(t)
	_, key := authenticate(t, srv, "hunter2")

	body := bytes.NewReader([]byte(`{"new_status":"Retired"}`))
	req, err := http.NewRequest("POST", srv.URL+"/api/1.0/pilots/P001/status", body)
	require.NoError(t, err)
	req.Header.Set("X-Session-Key", key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownMissionRoute(t *testing.T) {
	srv := testServer(t)
	_, key := authenticate(t, srv, "hunter2")

	req, err := http.NewRequest("GET", srv.URL+"/api/1.0/missions/PRJ999/pilots", nil)
	require.NoError(t, err)
	req.Header.Set("X-Session-Key", key)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthRoute(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/1.0/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.False(t, health.SheetsConnected)
	assert.Equal(t, 1, health.Pilots)
	assert.Equal(t, 1, health.Missions)
}
