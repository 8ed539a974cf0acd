package sheets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/samy8144/ai-operations-coordinator/api"
)

//Sheet tab names
const (
	TabPilots   = "pilot_roster"
	TabDrones   = "drone_fleet"
	TabMissions = "missions"
)

//Backing store names reported on writes
const (
	SyncedToSheets = "Google Sheets"
	SyncedToCSV    = "CSV (offline)"
)

//Store implements api.Repository over the Google Sheets values API, falling
//back to local CSV files when the remote store is unreachable or not
//configured. Writes report which backing store accepted the change.
type Store struct {
	client *Client //nil when no spreadsheet is configured
	csvDir string
}

//NewStore creates a Store. client may be nil to run CSV-only.
func NewStore(client *Client, csvDir string) *Store {
	return &Store{client: client, csvDir: csvDir}
}

//Connected reports whether a remote spreadsheet is configured
func (s *Store) Connected() bool {
	return s.client != nil
}

//readTab returns the tab's rows as records, preferring the remote store.
//Remote failures degrade to the CSV fallback; only a double failure returns an
//error.
func (s *Store) readTab(ctx context.Context, tab string) ([]api.Record, error) {
	if s.client != nil {
		rows, err := s.client.ReadValues(ctx, tab)
		if err == nil && len(rows) > 1 {
			return toRecords(rows), nil
		}
		if err != nil {
			log.Printf("sheets: read %s failed, using CSV fallback: %v", tab, err)
		}
	}

	rows, err := readCSV(s.csvDir, tab)
	if err != nil {
		return nil, fmt.Errorf("could not read %s from any store: %w", tab, err)
	}
	return toRecords(rows), nil
}

//toRecords maps a cell grid to records using the header row. Short rows are
//padded with empty fields.
func toRecords(rows [][]string) []api.Record {
	if len(rows) < 2 {
		return nil
	}
	header := rows[0]
	records := make([]api.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		r := make(api.Record, len(header))
		for i, field := range header {
			if i < len(row) {
				r[field] = row[i]
			} else {
				r[field] = ""
			}
		}
		records = append(records, r)
	}
	return records
}

//ReadPilots returns the pilot roster snapshot
func (s *Store) ReadPilots(ctx context.Context) ([]api.Record, error) {
	return s.readTab(ctx, TabPilots)
}

//ReadDrones returns the drone fleet snapshot
func (s *Store) ReadDrones(ctx context.Context) ([]api.Record, error) {
	return s.readTab(ctx, TabDrones)
}

//ReadMissions returns the missions snapshot
func (s *Store) ReadMissions(ctx context.Context) ([]api.Record, error) {
	return s.readTab(ctx, TabMissions)
}

//UpdatePilotStatus overwrites a pilot's status (and note, when a note column
//exists) and reports the backing store that accepted the write
func (s *Store) UpdatePilotStatus(ctx context.Context, pilotID, status, note string) (*api.WriteResult, error) {
	return s.updateStatus(ctx, TabPilots, "pilot_id", pilotID, status, note)
}

//UpdateDroneStatus overwrites a drone's status (and note, when a note column
//exists) and reports the backing store that accepted the write
func (s *Store) UpdateDroneStatus(ctx context.Context, droneID, status, note string) (*api.WriteResult, error) {
	return s.updateStatus(ctx, TabDrones, "drone_id", droneID, status, note)
}

func (s *Store) updateStatus(ctx context.Context, tab, idField, id, status, note string) (*api.WriteResult, error) {
	if s.client != nil {
		if err := s.updateRemote(ctx, tab, idField, id, status, note); err == nil {
			return &api.WriteResult{SyncedTo: SyncedToSheets}, nil
		} else if !errors.Is(err, errRowNotFound) {
			log.Printf("sheets: write %s failed, using CSV fallback: %v", tab, err)
		}
	}

	if err := s.updateCSV(tab, idField, id, status, note); err != nil {
		return nil, err
	}
	return &api.WriteResult{SyncedTo: SyncedToCSV}, nil
}

var errRowNotFound = errors.New("row not found")

func columnIndex(header []string, field string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == field {
			return i
		}
	}
	return -1
}

func (s *Store) updateRemote(ctx context.Context, tab, idField, id, status, note string) error {
	rows, err := s.client.ReadValues(ctx, tab)
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return errRowNotFound
	}

	header := rows[0]
	idCol := columnIndex(header, idField)
	statusCol := columnIndex(header, "status")
	noteCol := columnIndex(header, "note")
	if idCol < 0 || statusCol < 0 {
		return fmt.Errorf("tab %s is missing %s or status columns", tab, idField)
	}

	for i, row := range rows[1:] {
		if idCol >= len(row) || strings.TrimSpace(row[idCol]) != id {
			continue
		}
		if err := s.client.UpdateCell(ctx, tab, i+1, statusCol, status); err != nil {
			return err
		}
		if note != "" && noteCol >= 0 {
			if err := s.client.UpdateCell(ctx, tab, i+1, noteCol, note); err != nil {
				return err
			}
		}
		return nil
	}
	return errRowNotFound
}

func (s *Store) updateCSV(tab, idField, id, status, note string) error {
	rows, err := readCSV(s.csvDir, tab)
	if err != nil {
		return err
	}
	if len(rows) < 2 {
		return errRowNotFound
	}

	header := rows[0]
	idCol := columnIndex(header, idField)
	statusCol := columnIndex(header, "status")
	noteCol := columnIndex(header, "note")
	if idCol < 0 || statusCol < 0 {
		return fmt.Errorf("tab %s is missing %s or status columns", tab, idField)
	}

	found := false
	for _, row := range rows[1:] {
		if idCol < len(row) && strings.TrimSpace(row[idCol]) == id {
			if statusCol < len(row) {
				row[statusCol] = status
			}
			if note != "" && noteCol >= 0 && noteCol < len(row) {
				row[noteCol] = note
			}
			found = true
			break
		}
	}
	if !found {
		return errRowNotFound
	}

	return writeCSV(s.csvDir, tab, rows)
}
