package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/beka-birhanu/backtracker-maze/api"
	api_i "github.com/beka-birhanu/backtracker-maze/api/i"
	"github.com/beka-birhanu/backtracker-maze/api/mazeapi"
	"github.com/beka-birhanu/backtracker-maze/config"
	"github.com/beka-birhanu/backtracker-maze/service"
	service_i "github.com/beka-birhanu/backtracker-maze/service/i"
)

// Global variables for dependencies
var (
	appLogger      *logrus.Logger
	sessionManager service_i.SessionManager
	mazeController api_i.Controller
	router         *api.Router
)

func initLogger() {
	appLogger = logrus.New()
	appLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func initSessionManager() {
	var err error
	sessionManager, err = service.NewSessionManager(&service.Config{
		MaxDimension:  config.Envs.MaxMazeDimension,
		DefaultWidth:  config.Envs.DefaultMazeWidth,
		DefaultHeight: config.Envs.DefaultMazeHeight,
		Logger:        appLogger,
	})
	if err != nil {
		appLogger.Fatalf("Creating session manager: %v", err)
	}

	appLogger.Info("Session manager initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(sessionManager)
	if err != nil {
		appLogger.Fatalf("Creating maze controller: %v", err)
	}

	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})

	appLogger.Info("Router initialized")
}

func main() {
	initLogger()
	initSessionManager()
	initMazeController()
	initRouter()

	gin.SetMode(config.Envs.GinMode)
	if err := router.Run(); err != nil {
		appLogger.Fatalf("Running router: %v", err)
	}
}
