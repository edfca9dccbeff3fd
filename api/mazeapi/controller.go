package mazeapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beka-birhanu/backtracker-maze/maze"
	"github.com/beka-birhanu/backtracker-maze/service"
	"github.com/beka-birhanu/backtracker-maze/service/i"
)

// MazeController manages maze session operations.
type MazeController struct {
	sessions i.SessionManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(sessions i.SessionManager) (*MazeController, error) {
	if sessions == nil {
		return nil, errors.New("maze controller requires a session manager")
	}
	return &MazeController{sessions: sessions}, nil
}

// Register mounts the maze session routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.snapshot)
		mazes.GET("/:ID/drawing", mc.drawing)
		mazes.POST("/:ID/start", mc.start)
		mazes.POST("/:ID/end", mc.end)
		mazes.POST("/:ID/move", mc.move)
		mazes.POST("/:ID/turn", mc.turn)
		mazes.POST("/:ID/solve", mc.solve)
		mazes.DELETE("/:ID", mc.destroy)
	}
}

// statusOf maps service and maze errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrInvalidLocation),
		errors.Is(err, maze.ErrInvalidDirection),
		errors.Is(err, service.ErrDimensionTooLarge),
		errors.Is(err, service.ErrInvalidRotation),
		errors.Is(err, service.ErrEndpointsNotSet):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// fail writes an error response with the mapped status code.
func fail(ctx *gin.Context, err error) {
	ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
}

// sessionID parses the :ID path parameter.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}
	return id, true
}

// create handles new maze session requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := mc.sessions.Create(request.Width, request.Height)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, CreateResponse{ID: id.String()})
}

// snapshot returns the session's traversal state.
func (mc *MazeController) snapshot(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	snap, err := mc.sessions.Snapshot(id)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newSnapshotResponse(id.String(), snap))
}

// drawing returns the session's character-grid rendering.
func (mc *MazeController) drawing(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	text, err := mc.sessions.Render(id)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.String(http.StatusOK, text)
}

// start places the walker.
func (mc *MazeController) start(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request StartRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var err error
	switch request.Placement {
	case "origin":
		err = mc.sessions.StartAtOrigin(id)
	case "random":
		err = mc.sessions.StartAtRandom(id)
	case "cell":
		err = mc.sessions.StartAt(id, request.X, request.Y)
	}
	if err != nil {
		fail(ctx, err)
		return
	}

	mc.respondWithSnapshot(ctx, id)
}

// end places the finish cell.
func (mc *MazeController) end(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request EndRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var err error
	switch request.Placement {
	case "top_right":
		err = mc.sessions.EndAtTopRight(id)
	case "random":
		err = mc.sessions.EndAtRandom(id)
	case "cell":
		err = mc.sessions.EndAt(id, request.X, request.Y)
	}
	if err != nil {
		fail(ctx, err)
		return
	}

	mc.respondWithSnapshot(ctx, id)
}

// move advances the walker one cell.
func (mc *MazeController) move(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	moved, err := mc.sessions.Move(id)
	if err != nil {
		fail(ctx, err)
		return
	}

	snap, err := mc.sessions.Snapshot(id)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MoveResponse{
		Moved:    moved,
		Snapshot: newSnapshotResponse(id.String(), snap),
	})
}

// turn rotates the walker.
func (mc *MazeController) turn(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request TurnRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := mc.sessions.Turn(id, request.Rotation); err != nil {
		fail(ctx, err)
		return
	}

	mc.respondWithSnapshot(ctx, id)
}

// solve runs the wall-follower demo on the session.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	steps, err := mc.sessions.Solve(id)
	if err != nil {
		fail(ctx, err)
		return
	}

	snap, err := mc.sessions.Snapshot(id)
	if err != nil {
		fail(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, SolveResponse{
		Steps:    steps,
		Snapshot: newSnapshotResponse(id.String(), snap),
	})
}

// destroy drops the session.
func (mc *MazeController) destroy(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := mc.sessions.Destroy(id); err != nil {
		fail(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// respondWithSnapshot writes the session's current state.
func (mc *MazeController) respondWithSnapshot(ctx *gin.Context, id uuid.UUID) {
	snap, err := mc.sessions.Snapshot(id)
	if err != nil {
		fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSnapshotResponse(id.String(), snap))
}
