// Package mazeapi exposes maze sessions over HTTP.
package mazeapi

import "github.com/beka-birhanu/backtracker-maze/service/i"

// CreateRequest asks for a new maze session. Omitted dimensions fall back
// to the server's configured defaults.
type CreateRequest struct {
	Width  int `json:"width" binding:"omitempty,min=1"`
	Height int `json:"height" binding:"omitempty,min=1"`
}

// CreateResponse carries the new session's id.
type CreateResponse struct {
	ID string `json:"id"`
}

// Coordinate is a cell position on the maze grid.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// StartRequest places the walker. Placement "cell" uses X and Y.
type StartRequest struct {
	Placement string `json:"placement" binding:"required,oneof=origin random cell"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

// EndRequest places the finish cell. Placement "cell" uses X and Y.
type EndRequest struct {
	Placement string `json:"placement" binding:"required,oneof=top_right random cell"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

// TurnRequest rotates the walker.
type TurnRequest struct {
	Rotation string `json:"rotation" binding:"required,oneof=left right"`
}

// SnapshotResponse mirrors the session's traversal state.
type SnapshotResponse struct {
	ID       string      `json:"id"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Facing   string      `json:"facing"`
	Current  *Coordinate `json:"current,omitempty"`
	End      *Coordinate `json:"end,omitempty"`
	Finished bool        `json:"finished"`
}

// MoveResponse reports a move attempt and the resulting state.
type MoveResponse struct {
	Moved    bool             `json:"moved"`
	Snapshot SnapshotResponse `json:"snapshot"`
}

// SolveResponse reports the wall-follower demo run.
type SolveResponse struct {
	Steps    int              `json:"steps"`
	Snapshot SnapshotResponse `json:"snapshot"`
}

// newSnapshotResponse converts a service snapshot to the wire shape.
func newSnapshotResponse(id string, snap i.Snapshot) SnapshotResponse {
	resp := SnapshotResponse{
		ID:       id,
		Width:    snap.Width,
		Height:   snap.Height,
		Facing:   snap.Facing,
		Finished: snap.Finished,
	}
	if snap.Current != nil {
		resp.Current = &Coordinate{X: snap.Current.X, Y: snap.Current.Y}
	}
	if snap.End != nil {
		resp.End = &Coordinate{X: snap.End.X, Y: snap.End.Y}
	}
	return resp
}
