// Package i defines the service-layer contracts the API surface depends
// on.
package i

import "github.com/google/uuid"

// Coordinate is a transport-friendly copy of a maze location.
type Coordinate struct {
	X int
	Y int
}

// Snapshot is a read-only view of one maze session's traversal state.
// Current and End are nil until the session's start and end locations are
// set; Finished is only meaningful once both are.
type Snapshot struct {
	Width    int
	Height   int
	Facing   string
	Current  *Coordinate
	End      *Coordinate
	Finished bool
}

// SessionManager owns live maze sessions keyed by id.
type SessionManager interface {
	// Create generates a new maze session. Zero dimensions fall back to
	// the configured defaults.
	Create(width, height int) (uuid.UUID, error)

	// Snapshot returns the session's traversal state.
	Snapshot(id uuid.UUID) (Snapshot, error)

	// Render returns the session's character-grid drawing.
	Render(id uuid.UUID) (string, error)

	// StartAt, StartAtOrigin and StartAtRandom place the walker.
	StartAt(id uuid.UUID, x, y int) error
	StartAtOrigin(id uuid.UUID) error
	StartAtRandom(id uuid.UUID) error

	// EndAt, EndAtTopRight and EndAtRandom place the finish cell.
	EndAt(id uuid.UUID, x, y int) error
	EndAtTopRight(id uuid.UUID) error
	EndAtRandom(id uuid.UUID) error

	// Move advances the walker one cell and reports whether it moved.
	Move(id uuid.UUID) (bool, error)

	// Turn rotates the walker; rotation is "left" or "right".
	Turn(id uuid.UUID, rotation string) error

	// Solve runs the wall-follower demo on the session and returns the
	// number of steps it took.
	Solve(id uuid.UUID) (int, error)

	// Destroy drops the session.
	Destroy(id uuid.UUID) error
}
