package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all simulation and window tunables. Values can be overridden
// from a YAML file; anything left unset keeps its default.
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// ViewHeight is the vertical extent of the camera view in world units
	ViewHeight float64 `yaml:"view_height"`

	// Gravity is the vertical acceleration in units per second^2 (negative = down)
	Gravity float64 `yaml:"gravity"`

	// MoveSpeed is the horizontal run speed in units per second
	MoveSpeed float64 `yaml:"move_speed"`

	// JumpVelocity is the upward speed applied on a grounded jump
	JumpVelocity float64 `yaml:"jump_velocity"`

	// ScrollSpeed is the constant leftward world scroll in units per second
	ScrollSpeed float64 `yaml:"scroll_speed"`

	// MaxDelta clamps the per-frame timestep in seconds to bound displacement
	MaxDelta float64 `yaml:"max_delta"`

	// CameraTargetX is the world X the camera eases toward
	CameraTargetX float64 `yaml:"camera_target_x"`

	// CameraLerp is the per-frame interpolation factor for camera easing
	CameraLerp float64 `yaml:"camera_lerp"`

	// RetireBuffer is how far past the camera's left edge a platform may
	// trail before it is removed
	RetireBuffer float64 `yaml:"retire_buffer"`

	// Lookahead is how far past the camera's right edge the generator keeps
	// the level populated
	Lookahead float64 `yaml:"lookahead"`

	// MinGap and MaxGap bound the random horizontal gap between platforms
	MinGap float64 `yaml:"min_gap"`
	MaxGap float64 `yaml:"max_gap"`

	// MinWidth and MaxWidth bound the random platform width
	MinWidth float64 `yaml:"min_width"`
	MaxWidth float64 `yaml:"max_width"`

	// MaxHeightDelta bounds the random top-edge offset from the previous
	// platform, keeping every platform reachable by a jump
	MaxHeightDelta float64 `yaml:"max_height_delta"`

	// PlatformHeight is the platform thickness in world units
	PlatformHeight float64 `yaml:"platform_height"`

	// PlatformDepth is the cosmetic platform depth in world units
	PlatformDepth float64 `yaml:"platform_depth"`

	// InitialPlatforms is how many procedural platforms are placed after the
	// starting ground before the frame loop begins
	InitialPlatforms int `yaml:"initial_platforms"`

	// Seed for the level generator; 0 means derive from the current time
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1024,
		ScreenHeight:     768,
		ViewHeight:       10.0,
		Gravity:          -25.0,
		MoveSpeed:        5.0,
		JumpVelocity:     10.0,
		ScrollSpeed:      2.0,
		MaxDelta:         0.05,
		CameraTargetX:    2.0,
		CameraLerp:       0.05,
		RetireBuffer:     5.0,
		Lookahead:        5.0,
		MinGap:           1.5,
		MaxGap:           3.5,
		MinWidth:         2.0,
		MaxWidth:         5.0,
		MaxHeightDelta:   1.5,
		PlatformHeight:   0.5,
		PlatformDepth:    2.0,
		InitialPlatforms: 10,
	}
}

// LoadConfig reads a YAML file and overlays it on the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.ViewHeight <= 0:
		return fmt.Errorf("view height must be positive, got %v", c.ViewHeight)
	case c.Gravity >= 0:
		return fmt.Errorf("gravity must be negative, got %v", c.Gravity)
	case c.MaxDelta <= 0:
		return fmt.Errorf("max delta must be positive, got %v", c.MaxDelta)
	case c.MinGap > c.MaxGap:
		return fmt.Errorf("gap bounds inverted: [%v, %v]", c.MinGap, c.MaxGap)
	case c.MinWidth > c.MaxWidth || c.MinWidth <= 0:
		return fmt.Errorf("width bounds invalid: [%v, %v]", c.MinWidth, c.MaxWidth)
	case c.PlatformHeight <= 0:
		return fmt.Errorf("platform height must be positive, got %v", c.PlatformHeight)
	}
	return nil
}
