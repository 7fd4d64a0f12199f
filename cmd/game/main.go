package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Garsondee/Fishing-Game/internal/config"
	"github.com/Garsondee/Fishing-Game/internal/fishing"
	"github.com/Garsondee/Fishing-Game/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file with FISHING_* settings")
	flag.Parse()

	settings, err := config.Load(*envFile)
	if err != nil {
		log.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel}))

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	world, err := fishing.New(settings.World, fishing.WithSeed(seed), fishing.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("starting", "seed", seed)

	ebiten.SetWindowTitle("Fishing Game")
	ebiten.SetWindowSize(settings.World.Width, settings.World.Height)
	if err := ebiten.RunGame(game.New(world, logger)); err != nil {
		log.Fatal(err)
	}
}
