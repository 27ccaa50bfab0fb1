package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/albertb/go-boids/pkg/geometry"
)

// Parameters holds every tunable constant of the simulation. The UI panel
// mutates it between ticks; every stage of a tick reads the same snapshot.
type Parameters struct {
	// World dimensions. The simulation space is centered on the origin,
	// so valid coordinates span [-width/2, width/2] x [-height/2, height/2].
	WindowWidth  float64 `json:"windowWidth"`
	WindowHeight float64 `json:"windowHeight"`

	// Population
	NumBoids int `json:"numBoids"`

	// ViewDistance is how far away each boid can see.
	ViewDistance float64 `json:"viewDistance"`

	// Force weights. Each normalized steering contribution is scaled by
	// its force before being folded into the velocity.
	CohesionForce   float64 `json:"cohesionForce"`
	SeparationForce float64 `json:"separationForce"`
	AlignmentForce  float64 `json:"alignmentForce"`
	SteeringForce   float64 `json:"steeringForce"`

	// SeparationBias is the exponent on distance in the separation factor:
	// larger values make close boids repel much harder.
	SeparationBias float64 `json:"separationBias"`
	// AlignmentBias > 1 prefers boids already heading the same way,
	// < 1 prefers boids heading the opposite way.
	AlignmentBias float64 `json:"alignmentBias"`

	// Fidelity in (0, 1] is the probability that any given pair of boids
	// is evaluated on a tick.
	Fidelity float64 `json:"fidelity"`

	// Speed band. Velocity magnitude is clamped into [MinSpeed, MaxSpeed]
	// after every flocking step. MinSpeed <= MaxSpeed must hold; the UI
	// keeps the two sliders mutually constrained.
	MinSpeed float64 `json:"minSpeed"`
	MaxSpeed float64 `json:"maxSpeed"`

	// BounceOffWalls selects reflecting walls; the default is the mirror
	// wrap described in HandleWalls.
	BounceOffWalls bool `json:"bounceOffWalls"`
}

// DefaultParameters returns the stock tuning.
func DefaultParameters() *Parameters {
	return &Parameters{
		WindowWidth:     100,
		WindowHeight:    100,
		NumBoids:        512,
		ViewDistance:    75,
		CohesionForce:   2.5,
		SeparationForce: 1.8,
		SeparationBias:  1.1,
		AlignmentForce:  1.1,
		AlignmentBias:   1.5,
		SteeringForce:   0.8,
		Fidelity:        0.9,
		MinSpeed:        25,
		MaxSpeed:        100,
		BounceOffWalls:  false,
	}
}

// HalfWidth returns half the window width, the extent of valid x coordinates.
func (p *Parameters) HalfWidth() float64 { return p.WindowWidth / 2 }

// HalfHeight returns half the window height, the extent of valid y coordinates.
func (p *Parameters) HalfHeight() float64 { return p.WindowHeight / 2 }

// MinPosition returns the lowest valid corner of the window.
func (p *Parameters) MinPosition() geometry.Vector2D {
	return geometry.Vector2D{X: -p.HalfWidth(), Y: -p.HalfHeight()}
}

// MaxPosition returns the highest valid corner of the window.
func (p *Parameters) MaxPosition() geometry.Vector2D {
	return geometry.Vector2D{X: p.HalfWidth(), Y: p.HalfHeight()}
}

// LoadParameters loads parameters from a JSON file and validates them
// against the schema before unmarshalling.
func LoadParameters(configFile string, schemaFile string) (*Parameters, error) {
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Start from the defaults so a partial config file only overrides the
	// fields it names.
	cfg := DefaultParameters()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.MinSpeed > cfg.MaxSpeed {
		return nil, fmt.Errorf("minSpeed (%v) must not exceed maxSpeed (%v)", cfg.MinSpeed, cfg.MaxSpeed)
	}

	return cfg, nil
}
