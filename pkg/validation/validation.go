// Package validation checks loaded game configuration before the engine
// consumes it, so a bad config file fails at startup instead of deep in
// a frame.
package validation

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-starfighter/pkg/config"
)

// Window size limits. The lower bound keeps the HUD layout usable, the
// upper bound rejects obvious typos.
const (
	MinWindowDimension = 320
	MaxWindowDimension = 16384
)

// ValidateGameConfig checks every section of the configuration and
// collects all problems found, not just the first.
func ValidateGameConfig(cfg *config.GameConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []error

	if err := validateWindow(&cfg.Window); err != nil {
		errs = append(errs, err)
	}
	if err := validateCamera(&cfg.Camera); err != nil {
		errs = append(errs, err)
	}
	if err := validatePlayer(&cfg.Player); err != nil {
		errs = append(errs, err)
	}
	if err := validateEnemy(&cfg.Enemy); err != nil {
		errs = append(errs, err)
	}
	if err := validateMeteorite(&cfg.Meteorite); err != nil {
		errs = append(errs, err)
	}
	if err := validateLifeSphere(&cfg.LifeSphere); err != nil {
		errs = append(errs, err)
	}
	if err := validateLaser(&cfg.Laser); err != nil {
		errs = append(errs, err)
	}
	if err := validateWorld(cfg); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func validateWindow(w *config.WindowConfig) error {
	if w.Width < MinWindowDimension || w.Width > MaxWindowDimension {
		return fmt.Errorf("window width %d outside [%d, %d]", w.Width, MinWindowDimension, MaxWindowDimension)
	}
	if w.Height < MinWindowDimension || w.Height > MaxWindowDimension {
		return fmt.Errorf("window height %d outside [%d, %d]", w.Height, MinWindowDimension, MaxWindowDimension)
	}
	if w.FPS <= 0 {
		return fmt.Errorf("window FPS must be positive, got %d", w.FPS)
	}
	return nil
}

func validateCamera(c *config.CameraConfig) error {
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("camera FOV %f outside (0, 180)", c.FOV)
	}
	if c.NearPlane <= 0 {
		return fmt.Errorf("camera near plane must be positive, got %f", c.NearPlane)
	}
	if c.FarPlane <= c.NearPlane {
		return fmt.Errorf("camera far plane %f must exceed near plane %f", c.FarPlane, c.NearPlane)
	}
	if c.PitchLimit <= 0 || c.PitchLimit >= 90 {
		return fmt.Errorf("camera pitch limit %f outside (0, 90)", c.PitchLimit)
	}
	return nil
}

func validatePlayer(p *config.PlayerConfig) error {
	if p.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %f", p.Speed)
	}
	if p.StrafeSpeed <= 0 {
		return fmt.Errorf("player strafe speed must be positive, got %f", p.StrafeSpeed)
	}
	if p.MouseSensitivity <= 0 {
		return fmt.Errorf("player mouse sensitivity must be positive, got %f", p.MouseSensitivity)
	}
	if p.StartingLives < 1 {
		return fmt.Errorf("player starting lives must be at least 1, got %d", p.StartingLives)
	}
	if p.ShootCooldown <= 0 {
		return fmt.Errorf("player shoot cooldown must be positive, got %f", p.ShootCooldown)
	}
	return nil
}

func validateEnemy(e *config.EnemyConfig) error {
	if e.Speed <= 0 {
		return fmt.Errorf("enemy speed must be positive, got %f", e.Speed)
	}
	if e.SpawnInterval <= 0 {
		return fmt.Errorf("enemy spawn interval must be positive, got %f", e.SpawnInterval)
	}
	if e.SpawnDistance <= 0 {
		return fmt.Errorf("enemy spawn distance must be positive, got %f", e.SpawnDistance)
	}
	if e.FireInterval <= 0 {
		return fmt.Errorf("enemy fire interval must be positive, got %f", e.FireInterval)
	}
	if e.FireRange <= 0 {
		return fmt.Errorf("enemy fire range must be positive, got %f", e.FireRange)
	}
	if e.Health < 1 {
		return fmt.Errorf("enemy health must be at least 1, got %d", e.Health)
	}
	return nil
}

func validateMeteorite(m *config.MeteoriteConfig) error {
	if m.MinSize <= 0 {
		return fmt.Errorf("meteorite min size must be positive, got %f", m.MinSize)
	}
	if m.MaxSize < m.MinSize {
		return fmt.Errorf("meteorite max size %f below min size %f", m.MaxSize, m.MinSize)
	}
	if m.Count < 0 {
		return fmt.Errorf("meteorite count must not be negative, got %d", m.Count)
	}
	return nil
}

func validateLifeSphere(l *config.LifeSphereConfig) error {
	if l.Size <= 0 {
		return fmt.Errorf("life sphere size must be positive, got %f", l.Size)
	}
	if l.SpawnInterval <= 0 {
		return fmt.Errorf("life sphere spawn interval must be positive, got %f", l.SpawnInterval)
	}
	if l.SpawnDistance <= 0 {
		return fmt.Errorf("life sphere spawn distance must be positive, got %f", l.SpawnDistance)
	}
	return nil
}

func validateLaser(l *config.LaserConfig) error {
	if l.Speed <= 0 {
		return fmt.Errorf("laser speed must be positive, got %f", l.Speed)
	}
	if l.Lifetime <= 0 {
		return fmt.Errorf("laser lifetime must be positive, got %f", l.Lifetime)
	}
	if l.Length <= 0 {
		return fmt.Errorf("laser length must be positive, got %f", l.Length)
	}
	return nil
}

func validateWorld(cfg *config.GameConfig) error {
	if cfg.World.Size <= 0 {
		return fmt.Errorf("world size must be positive, got %f", cfg.World.Size)
	}
	if cfg.Physics.CollisionPushBack <= 0 {
		return fmt.Errorf("collision push-back must be positive, got %f", cfg.Physics.CollisionPushBack)
	}
	if cfg.Physics.BoundingSphereScale < 1 {
		return fmt.Errorf("bounding sphere scale must be at least 1, got %f", cfg.Physics.BoundingSphereScale)
	}
	return nil
}
