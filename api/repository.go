package api

import "context"

//Repository is the spreadsheet-backed resource store. Reads return full
//snapshots of raw rows; a degraded backend is expected to return a possibly
//empty snapshot rather than fail the caller. Writes report which backing store
//accepted the change.
type Repository interface {
	ReadPilots(ctx context.Context) ([]Record, error)
	ReadDrones(ctx context.Context) ([]Record, error)
	ReadMissions(ctx context.Context) ([]Record, error)

	UpdatePilotStatus(ctx context.Context, pilotID, status, note string) (*WriteResult, error)
	UpdateDroneStatus(ctx context.Context, droneID, status, note string) (*WriteResult, error)
}

//WriteResult names the backing store that accepted a write
type WriteResult struct {
	SyncedTo string `json:"synced_to"`
}
