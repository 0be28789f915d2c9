// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig contains configuration for a game session
type GameConfig struct {
	Window     WindowConfig     `json:"window" yaml:"window"`
	Camera     CameraConfig     `json:"camera" yaml:"camera"`
	Player     PlayerConfig     `json:"player" yaml:"player"`
	Enemy      EnemyConfig      `json:"enemy" yaml:"enemy"`
	Meteorite  MeteoriteConfig  `json:"meteorite" yaml:"meteorite"`
	LifeSphere LifeSphereConfig `json:"lifeSphere" yaml:"lifeSphere"`
	Laser      LaserConfig      `json:"laser" yaml:"laser"`
	Physics    PhysicsConfig    `json:"physics" yaml:"physics"`
	World      WorldConfig      `json:"world" yaml:"world"`
	Colors     ColorConfig      `json:"colors" yaml:"colors"`
}

// WindowConfig contains window and frame pacing settings
type WindowConfig struct {
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	Title      string `json:"title" yaml:"title"`
	FPS        int    `json:"fps" yaml:"fps"`
	Fullscreen bool   `json:"fullscreen" yaml:"fullscreen"`
}

// CameraConfig contains projection and look constraints
type CameraConfig struct {
	FOV        float64 `json:"fov" yaml:"fov"`
	NearPlane  float64 `json:"nearPlane" yaml:"nearPlane"`
	FarPlane   float64 `json:"farPlane" yaml:"farPlane"`
	PitchLimit float64 `json:"pitchLimit" yaml:"pitchLimit"` // degrees, prevents camera flip
}

// PlayerConfig contains player movement, lives and cockpit animation settings
type PlayerConfig struct {
	Speed            float64 `json:"speed" yaml:"speed"`
	StrafeSpeed      float64 `json:"strafeSpeed" yaml:"strafeSpeed"`
	MouseSensitivity float64 `json:"mouseSensitivity" yaml:"mouseSensitivity"`
	StartingLives    int     `json:"startingLives" yaml:"startingLives"`
	ShootCooldown    float64 `json:"shootCooldown" yaml:"shootCooldown"`

	// Cockpit ship animation
	RollSensitivity  float64 `json:"rollSensitivity" yaml:"rollSensitivity"`
	PitchSensitivity float64 `json:"pitchSensitivity" yaml:"pitchSensitivity"`
	AnimationDamping float64 `json:"animationDamping" yaml:"animationDamping"`
	MaxRoll          float64 `json:"maxRoll" yaml:"maxRoll"`                   // degrees
	MaxPitchOffset   float64 `json:"maxPitchOffset" yaml:"maxPitchOffset"`     // degrees
	ShipOffsetWeight float64 `json:"shipOffsetWeight" yaml:"shipOffsetWeight"` // cockpit model distance ahead of camera
	ShipScale        float64 `json:"shipScale" yaml:"shipScale"`
}

// EnemyConfig contains enemy AI tuning
type EnemyConfig struct {
	Speed         float64 `json:"speed" yaml:"speed"`
	SpawnDistance float64 `json:"spawnDistance" yaml:"spawnDistance"`
	SpawnInterval float64 `json:"spawnInterval" yaml:"spawnInterval"`
	FireInterval  float64 `json:"fireInterval" yaml:"fireInterval"`
	FireRange     float64 `json:"fireRange" yaml:"fireRange"`
	StandoffRange float64 `json:"standoffRange" yaml:"standoffRange"`
	Health        int     `json:"health" yaml:"health"`
	Points        int     `json:"points" yaml:"points"`
}

// MeteoriteConfig contains the meteorite field settings
type MeteoriteConfig struct {
	MinSize          float64 `json:"minSize" yaml:"minSize"`
	MaxSize          float64 `json:"maxSize" yaml:"maxSize"`
	Count            int     `json:"count" yaml:"count"`
	CollisionPenalty int     `json:"collisionPenalty" yaml:"collisionPenalty"`
}

// LifeSphereConfig contains life pickup settings
type LifeSphereConfig struct {
	Size          float64 `json:"size" yaml:"size"`
	SpawnDistance float64 `json:"spawnDistance" yaml:"spawnDistance"`
	SpawnInterval float64 `json:"spawnInterval" yaml:"spawnInterval"`
	RotationSpeed float64 `json:"rotationSpeed" yaml:"rotationSpeed"`
}

// LaserConfig contains projectile ballistics
type LaserConfig struct {
	Speed    float64 `json:"speed" yaml:"speed"`
	Lifetime float64 `json:"lifetime" yaml:"lifetime"`
	Length   float64 `json:"length" yaml:"length"`
}

// PhysicsConfig contains collision response settings
type PhysicsConfig struct {
	CollisionPushBack   float64 `json:"collisionPushBack" yaml:"collisionPushBack"`
	BoundingSphereScale float64 `json:"boundingSphereScale" yaml:"boundingSphereScale"`
}

// WorldConfig contains world extent settings
type WorldConfig struct {
	Size float64 `json:"size" yaml:"size"`
}

// Color is an RGB triple with channels in [0, 1]
type Color [3]float64

// ColorConfig assigns a wireframe color to each entity kind
type ColorConfig struct {
	Player      Color `json:"player" yaml:"player"`
	Enemy       Color `json:"enemy" yaml:"enemy"`
	Meteorite   Color `json:"meteorite" yaml:"meteorite"`
	LifeSphere  Color `json:"lifeSphere" yaml:"lifeSphere"`
	PlayerLaser Color `json:"playerLaser" yaml:"playerLaser"`
	EnemyLaser  Color `json:"enemyLaser" yaml:"enemyLaser"`
	HUD         Color `json:"hud" yaml:"hud"`
}

// LoadConfig loads a configuration from a file. The format is chosen by
// extension: .yaml/.yml parse as YAML, everything else as JSON.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return config, nil
}

// SaveConfig saves a configuration to a file as indented JSON
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Wireframe Space Shooter",
			FPS:    60,
		},
		Camera: CameraConfig{
			FOV:        70.0,
			NearPlane:  0.1,
			FarPlane:   1000.0,
			PitchLimit: 89.0,
		},
		Player: PlayerConfig{
			Speed:            30.0,
			StrafeSpeed:      20.0,
			MouseSensitivity: 0.2,
			StartingLives:    3,
			ShootCooldown:    0.3,
			RollSensitivity:  1.0,
			PitchSensitivity: 0.5,
			AnimationDamping: 10.0,
			MaxRoll:          15.0,
			MaxPitchOffset:   8.0,
			ShipOffsetWeight: 0.1,
			ShipScale:        1.2,
		},
		Enemy: EnemyConfig{
			Speed:         15.0,
			SpawnDistance: 100.0,
			SpawnInterval: 3.0,
			FireInterval:  2.0,
			FireRange:     50.0,
			StandoffRange: 10.0,
			Health:        1,
			Points:        1,
		},
		Meteorite: MeteoriteConfig{
			MinSize:          2.0,
			MaxSize:          5.0,
			Count:            10,
			CollisionPenalty: 1,
		},
		LifeSphere: LifeSphereConfig{
			Size:          1.5,
			SpawnDistance: 70.0,
			SpawnInterval: 10.0,
			RotationSpeed: 2.0,
		},
		Laser: LaserConfig{
			Speed:    80.0,
			Lifetime: 5.0,
			Length:   2.0,
		},
		Physics: PhysicsConfig{
			CollisionPushBack:   5.0,
			BoundingSphereScale: 1.2,
		},
		World: WorldConfig{
			Size: 200.0,
		},
		Colors: ColorConfig{
			Player:      Color{0, 1, 0},
			Enemy:       Color{1, 0, 0},
			Meteorite:   Color{0.5, 0.5, 0.5},
			LifeSphere:  Color{0, 1, 1},
			PlayerLaser: Color{0, 1, 0},
			EnemyLaser:  Color{1, 0, 0},
			HUD:         Color{1, 1, 1},
		},
	}
}
