package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/albertb/go-boids/pkg/simulation"
)

const (
	windowWidth  = 640
	windowHeight = 480
)

func main() {
	configFile := flag.String("config", "", "optional JSON parameter file")
	schemaFile := flag.String("schema", "config.schema.json", "JSON schema used to validate -config")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	params := simulation.DefaultParameters()
	if *configFile != "" {
		var err error
		params, err = simulation.LoadParameters(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("loading parameters: %v", err)
		}
	}

	world := simulation.NewWorld(params, *seed)
	game := simulation.NewGame(params, world)

	log.Printf("starting with %d boids (seed %d)", params.NumBoids, *seed)

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Boids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
