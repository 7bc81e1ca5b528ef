package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// FallPolicy selects how a body that left the platform is brought back
type FallPolicy string

const (
	// FallPolicyTimer respawns after FallThreshold spent below ground outside the footprint
	FallPolicyTimer FallPolicy = "timer"
	// FallPolicyThreshold respawns immediately once Y drops below FallYThreshold
	FallPolicyThreshold FallPolicy = "threshold"
)

// DefaultTuningFile is the disk override looked up by hosts
const DefaultTuningFile = "tuning.yaml"

//go:embed tuning.yaml
var embeddedTuning []byte

// Tuning is the full set of simulation constants
type Tuning struct {
	MoveSpeed    float32 `yaml:"move_speed"`
	JumpImpulse  float32 `yaml:"jump_impulse"`
	GravityAccel float32 `yaml:"gravity_accel"`

	GroundHeight       float32 `yaml:"ground_height"`
	PlatformHalfWidth  float32 `yaml:"platform_half_width"`
	PlatformHalfLength float32 `yaml:"platform_half_length"`

	SpawnPosition mgl32.Vec3 `yaml:"spawn_position"`

	FallPolicy     FallPolicy    `yaml:"fall_policy"`
	FallThreshold  time.Duration `yaml:"fall_threshold"`
	FallYThreshold float32       `yaml:"fall_y_threshold"`

	CameraStart         mgl32.Vec3 `yaml:"camera_start"`
	CameraOffset        mgl32.Vec3 `yaml:"camera_offset"`
	CameraSmoothingRate float32    `yaml:"camera_smoothing_rate"`

	SpawnPeriod      time.Duration `yaml:"spawn_period"`
	SpawnXRange      float32       `yaml:"spawn_x_range"`
	ObstacleY        float32       `yaml:"obstacle_y"`
	ObstacleZ        float32       `yaml:"obstacle_z"`
	ObstacleVelocity mgl32.Vec3    `yaml:"obstacle_velocity"`
}

// DefaultTuning returns the compiled-in constants
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:    8.0,
		JumpImpulse:  12.0,
		GravityAccel: -30.0,

		GroundHeight:       0.5,
		PlatformHalfWidth:  4.0,
		PlatformHalfLength: 10.0,

		SpawnPosition: mgl32.Vec3{0, 0.5, 8},

		FallPolicy:     FallPolicyTimer,
		FallThreshold:  5 * time.Second,
		FallYThreshold: -10.0,

		CameraStart:         mgl32.Vec3{-2.5, 4.5, 9},
		CameraOffset:        mgl32.Vec3{0, 4.5, 9},
		CameraSmoothingRate: 2.0,

		SpawnPeriod:      5 * time.Second,
		SpawnXRange:      4.0,
		ObstacleY:        0.5,
		ObstacleZ:        -10.0,
		ObstacleVelocity: mgl32.Vec3{0, 0, 4},
	}
}

// LoadTuning reads path if it exists, otherwise the embedded defaults file.
// Keys missing from the document keep their compiled-in values.
func LoadTuning(path string) (Tuning, error) {
	data := embeddedTuning
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			data = b
		case !errors.Is(err, os.ErrNotExist):
			return Tuning{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return ParseTuning(data)
}

// ParseTuning decodes a YAML document over DefaultTuning and validates the result
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate reports every field that would make the simulation ill-formed
func (t Tuning) Validate() error {
	var errs []error
	if t.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("move_speed must be >= 0, got %v", t.MoveSpeed))
	}
	if t.JumpImpulse <= 0 {
		errs = append(errs, fmt.Errorf("jump_impulse must be > 0, got %v", t.JumpImpulse))
	}
	if t.GravityAccel >= 0 {
		errs = append(errs, fmt.Errorf("gravity_accel must be < 0, got %v", t.GravityAccel))
	}
	if t.PlatformHalfWidth <= 0 || t.PlatformHalfLength <= 0 {
		errs = append(errs, fmt.Errorf("platform half extents must be > 0, got %v x %v", t.PlatformHalfWidth, t.PlatformHalfLength))
	}
	// bodies start and respawn grounded at the spawn point
	if t.SpawnPosition.Y() != t.GroundHeight {
		errs = append(errs, fmt.Errorf("spawn_position y must equal ground_height %v, got %v", t.GroundHeight, t.SpawnPosition.Y()))
	}
	if math.Abs(float64(t.SpawnPosition.X())) > float64(t.PlatformHalfWidth) ||
		math.Abs(float64(t.SpawnPosition.Z())) > float64(t.PlatformHalfLength) {
		errs = append(errs, fmt.Errorf("spawn_position %v is off the platform", t.SpawnPosition))
	}
	switch t.FallPolicy {
	case FallPolicyTimer:
		if t.FallThreshold <= 0 {
			errs = append(errs, fmt.Errorf("fall_threshold must be > 0, got %v", t.FallThreshold))
		}
	case FallPolicyThreshold:
		if t.FallYThreshold >= t.GroundHeight {
			errs = append(errs, fmt.Errorf("fall_y_threshold must be below ground_height, got %v", t.FallYThreshold))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown fall_policy %q", t.FallPolicy))
	}
	if t.CameraSmoothingRate < 0 {
		errs = append(errs, fmt.Errorf("camera_smoothing_rate must be >= 0, got %v", t.CameraSmoothingRate))
	}
	if t.SpawnPeriod <= 0 {
		errs = append(errs, fmt.Errorf("spawn_period must be > 0, got %v", t.SpawnPeriod))
	}
	if t.SpawnXRange < 0 {
		errs = append(errs, fmt.Errorf("spawn_x_range must be >= 0, got %v", t.SpawnXRange))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}
