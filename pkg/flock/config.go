package flock

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config is the immutable tuning bundle for a simulation run. It is built
// once at startup and passed by reference; nothing mutates it afterwards.
//
// Only AvoidFactor, ProtectedRange and MaxSpeed are consumed by the
// current update rule. The remaining fields describe the full boids model
// (cohesion, alignment, min-speed enforcement, directional bias) and are
// declared so configurations stay forward-compatible, but the engine does
// not evaluate them yet.
type Config struct {
	// World / window dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumBoids int `json:"numBoids"`

	// Interaction ranges
	VisualRange    float64 `json:"visualRange"`    // Neighbor-detection radius (unused)
	ProtectedRange float64 `json:"protectedRange"` // Personal space, per axis

	// Steering factors
	TurnFactor      float64 `json:"turnFactor"`      // Edge turning strength (unused)
	CenteringFactor float64 `json:"centeringFactor"` // Cohesion strength (unused)
	AvoidFactor     float64 `json:"avoidFactor"`     // Separation strength
	MatchingFactor  float64 `json:"matchingFactor"`  // Alignment strength (unused)

	// Speed limits
	MaxSpeed float64 `json:"maxSpeed"`
	MinSpeed float64 `json:"minSpeed"` // Declared, not enforced

	// Directional bias (unused)
	MaxBias        float64 `json:"maxBias"`
	BiasIncrement  float64 `json:"biasIncrement"`
	DefaultBiasVal float64 `json:"defaultBiasVal"`
}

// DefaultConfig returns the canonical tuning values.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:      800,
		WorldHeight:     600,
		NumBoids:        10,
		VisualRange:     40.0,
		ProtectedRange:  15.0,
		TurnFactor:      0.2,
		CenteringFactor: 0.0005,
		AvoidFactor:     0.005,
		MatchingFactor:  0.05,
		MaxSpeed:        6.0,
		MinSpeed:        3.0,
		MaxBias:         0.01,
		BiasIncrement:   0.00004,
		DefaultBiasVal:  0.001,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against
// the given JSON-Schema before unmarshalling.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
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

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
