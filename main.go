package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tselot-games/mirrormaze/api"
	api_i "github.com/tselot-games/mirrormaze/api/i"
	"github.com/tselot-games/mirrormaze/api/mazeapi"
	"github.com/tselot-games/mirrormaze/config"
	"github.com/tselot-games/mirrormaze/logger"
	"github.com/tselot-games/mirrormaze/maze"
)

// Global variables for dependencies
var (
	appLogger      *logger.Logger
	mazeLogger     *logger.Logger
	rng            *rand.Rand
	generator      maze.Generator
	orchestrator   *maze.Orchestrator
	mazeController api_i.Controller
	router         *api.Router
)

func initRand() {
	seed := config.Envs.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng = rand.New(rand.NewSource(seed))
	appLogger.Info(fmt.Sprintf("Random source initialized with seed %d", seed))
}

func initGenerator() {
	orientation := maze.Orientation(config.Envs.Orientation)
	if orientation != maze.Vertical && orientation != maze.Horizontal {
		appLogger.Warning(fmt.Sprintf("Unknown orientation %q, using vertical", config.Envs.Orientation))
		orientation = maze.Vertical
	}

	switch config.Envs.MazeType {
	case "scattered":
		generator = maze.NewScatteredWall(rng, config.Envs.MinWallLength, config.Envs.MaxWallLength, orientation)
	case "binarytree":
		generator = maze.NewBinaryTree(rng, config.Envs.NorthBias, orientation)
	case "backtrack":
		generator = maze.NewRecursiveBacktrack(rng, orientation)
	case "sidewinder":
		generator = maze.NewSidewinder(rng, orientation)
	case "huntandkill":
		generator = maze.NewHuntAndKill(rng, orientation)
	default:
		appLogger.Warning(fmt.Sprintf("Unknown maze type %q, using huntandkill", config.Envs.MazeType))
		generator = maze.NewHuntAndKill(rng, orientation)
	}

	appLogger.Info(fmt.Sprintf("Maze generator initialized: %s (%s)", config.Envs.MazeType, orientation))
}

func initOrchestrator() {
	var err error
	mazeLogger, err = logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze logger: %v", err))
		os.Exit(1)
	}

	orchestrator, err = maze.NewOrchestrator(generator, config.Envs.MaxGenAttempts, rng, mazeLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating orchestrator: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Orchestrator initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewController(orchestrator, config.Envs.GridSize)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	gin.SetMode(config.Envs.GinMode)

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initRand()
	initGenerator()
	initOrchestrator()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
