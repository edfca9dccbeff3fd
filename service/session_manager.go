// Package service manages live maze sessions on behalf of the API
// surface. A single maze is not safe for concurrent walkers, so the
// manager serializes all access to a session behind its lock.
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/beka-birhanu/backtracker-maze/maze"
	"github.com/beka-birhanu/backtracker-maze/render"
	"github.com/beka-birhanu/backtracker-maze/service/i"
	"github.com/beka-birhanu/backtracker-maze/solver"
)

// Service-level errors.
var (
	ErrSessionNotFound   = errors.New("maze session not found")
	ErrDimensionTooLarge = errors.New("maze dimension above the configured cap")
	ErrInvalidRotation   = errors.New("invalid rotation")
	ErrEndpointsNotSet   = errors.New("session start and end locations are not both set")
)

// SessionManager keeps every live maze in process memory, keyed by a
// random uuid. Maze state is never persisted or serialized; a session
// dies with the process or an explicit Destroy.
type SessionManager struct {
	mazes         map[uuid.UUID]*maze.Maze
	maxDimension  int
	defaultWidth  int
	defaultHeight int
	logger        *logrus.Entry
	sync.Mutex
}

// Config holds the settings for a new SessionManager.
type Config struct {
	MaxDimension  int // Upper bound for either maze dimension; 0 disables the cap.
	DefaultWidth  int // Width used when Create receives 0.
	DefaultHeight int // Height used when Create receives 0.
	Logger        *logrus.Logger
}

// NewSessionManager creates a SessionManager from the given config.
func NewSessionManager(c *Config) (*SessionManager, error) {
	if c.Logger == nil {
		return nil, errors.New("session manager requires a logger")
	}
	return &SessionManager{
		mazes:         make(map[uuid.UUID]*maze.Maze),
		maxDimension:  c.MaxDimension,
		defaultWidth:  c.DefaultWidth,
		defaultHeight: c.DefaultHeight,
		logger:        c.Logger.WithField("component", "session-manager"),
	}, nil
}

// Create generates a maze and registers it under a fresh session id.
func (s *SessionManager) Create(width, height int) (uuid.UUID, error) {
	if width == 0 {
		width = s.defaultWidth
	}
	if height == 0 {
		height = s.defaultHeight
	}
	if s.maxDimension > 0 && (width > s.maxDimension || height > s.maxDimension) {
		return uuid.Nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, width, height, s.maxDimension)
	}

	m, err := maze.New(width, height)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	s.Lock()
	s.mazes[id] = m
	s.Unlock()

	s.logger.WithFields(logrus.Fields{
		"session": id,
		"width":   width,
		"height":  height,
	}).Info("maze session created")
	return id, nil
}

// get looks a session up. Callers hold the lock.
func (s *SessionManager) get(id uuid.UUID) (*maze.Maze, error) {
	m, ok := s.mazes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return m, nil
}

// Snapshot returns the session's traversal state.
func (s *SessionManager) Snapshot(id uuid.UUID) (i.Snapshot, error) {
	s.Lock()
	defer s.Unlock()
	m, err := s.get(id)
	if err != nil {
		return i.Snapshot{}, err
	}
	return snapshotOf(m), nil
}

// Render returns the session's character-grid drawing.
func (s *SessionManager) Render(id uuid.UUID) (string, error) {
	s.Lock()
	defer s.Unlock()
	m, err := s.get(id)
	if err != nil {
		return "", err
	}
	return render.Text(m), nil
}

// StartAt places the walker on (x, y).
func (s *SessionManager) StartAt(id uuid.UUID, x, y int) error {
	s.Lock()
	defer s.Unlock()
	m, err := s.get(id)
	if err != nil {
		return err
	}
	return m.StartAt(x, y)
}

// StartAtOrigin places the walker on (0, 0).
func (s *SessionManager) StartAtOrigin(id uuid.UUID) error {
	s.Lock()
	defer s.Unlock()
	m, err := s.get(id)
	if err != nil {
		return err
	}
	m.StartAtOrigin()
	return nil
}

// StartAtRandom places the walker on a random cell.
func (s *SessionManager) StartAtRandom(id uuid.UUID) error {
	s.Lock()
	defer s.Unlock()
	m, err := s.get(id)
	if err != nil {
		return err
	}
	m.StartAtRandom()
	return nil
}

// EndAt sets the finish cell to (x, y).
func (s *SessionManager) EndAt(id uuid.UUID, x, y int) error {
	s.Lock()
	defer s.Unlock()
	m, err := s.get(id)
	if err != nil {
		return err
	}
	return m.EndAt(x, y)
}

// EndAtTopRight sets the finish cell to the top-right corner.
func (s *SessionManager) EndAtTopRight(id uuid.UUID) error {
	s.Lock()
	defer s.Unlock()
	m, err := s.get(id)
	if err != nil {
		return err
	}
	m.EndAtTopRight()
	return nil
}

// EndAtRandom sets the finish cell to a random cell.
func (s *SessionManager) EndAtRandom(id uuid.UUID) error {
	s.Lock()
	defer s.Unlock()
	m, err := s.get(id)
	if err != nil {
		return err
	}
	m.EndAtRandom()
	return nil
}

// Move advances the walker one cell in its facing direction, reporting
// whether a passage was open. The walker must have a start location.
func (s *SessionManager) Move(id uuid.UUID) (bool, error) {
	s.Lock()
	defer s.Unlock()
	m, err := s.get(id)
	if err != nil {
		return false, err
	}
	if m.CurrentLocation() == nil {
		return false, fmt.Errorf("%w: cannot move", ErrEndpointsNotSet)
	}
	return m.Move(), nil
}

// Turn rotates the walker left or right.
func (s *SessionManager) Turn(id uuid.UUID, rotation string) error {
	s.Lock()
	defer s.Unlock()
	m, err := s.get(id)
	if err != nil {
		return err
	}
	switch rotation {
	case "left":
		m.TurnLeft()
	case "right":
		m.TurnRight()
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRotation, rotation)
	}
	return nil
}

// Solve runs the right-hand wall follower on the session and returns the
// number of steps it took to reach the end cell.
func (s *SessionManager) Solve(id uuid.UUID) (int, error) {
	s.Lock()
	defer s.Unlock()
	m, err := s.get(id)
	if err != nil {
		return 0, err
	}
	if m.CurrentLocation() == nil || m.EndLocation() == nil {
		return 0, fmt.Errorf("%w: cannot solve", ErrEndpointsNotSet)
	}

	steps, err := solver.WallFollow(m, 2*m.Width()*m.Height())
	if err != nil {
		return steps, err
	}
	s.logger.WithFields(logrus.Fields{
		"session": id,
		"steps":   steps,
	}).Info("maze session solved")
	return steps, nil
}

// Destroy drops the session.
func (s *SessionManager) Destroy(id uuid.UUID) error {
	s.Lock()
	defer s.Unlock()
	if _, err := s.get(id); err != nil {
		return err
	}
	delete(s.mazes, id)
	s.logger.WithField("session", id).Info("maze session destroyed")
	return nil
}

// snapshotOf copies the maze's traversal state into the transport shape.
func snapshotOf(m *maze.Maze) i.Snapshot {
	snap := i.Snapshot{
		Width:  m.Width(),
		Height: m.Height(),
		Facing: m.Facing().String(),
	}
	if cur := m.CurrentLocation(); cur != nil {
		snap.Current = &i.Coordinate{X: cur.X, Y: cur.Y}
	}
	if end := m.EndLocation(); end != nil {
		snap.End = &i.Coordinate{X: end.X, Y: end.Y}
	}
	if snap.Current != nil && snap.End != nil {
		snap.Finished = m.IsFinished()
	}
	return snap
}
