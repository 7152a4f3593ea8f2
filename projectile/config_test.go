package projectile

import (
	"math"
	"testing"

	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
)

func TestNormalizeLegacyAngleSpeed(t *testing.T) {
	cfg := Normalize(FireRequest{Angle: 0, Speed: 100})
	if math.Abs(cfg.VelX-100) > 1e-9 || math.Abs(cfg.VelY) > 1e-9 {
		t.Errorf("Expected velocity (100, 0), got (%.2f, %.2f)", cfg.VelX, cfg.VelY)
	}

	cfg = Normalize(FireRequest{Angle: math.Pi / 2, Speed: 100})
	if math.Abs(cfg.VelX) > 1e-9 || math.Abs(cfg.VelY-100) > 1e-9 {
		t.Errorf("Expected velocity (0, 100), got (%.2f, %.2f)", cfg.VelX, cfg.VelY)
	}
}

func TestNormalizeStructuredVelocityWins(t *testing.T) {
	cfg := Normalize(FireRequest{VelX: 10, Angle: math.Pi / 2, Speed: 100})
	if cfg.VelX != 10 || cfg.VelY != 0 {
		t.Errorf("Expected structured velocity (10, 0), got (%.2f, %.2f)", cfg.VelX, cfg.VelY)
	}
}

func TestNormalizeSanitizesNumerics(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	cfg := Normalize(FireRequest{
		Damage:          nan,
		Radius:          -2,
		VelX:            nan,
		Speed:           50,
		ChainRange:      inf,
		PiercingCharges: -3,
		MaxChains:       -1,
	})

	if cfg.Damage != 0 {
		t.Errorf("Expected NaN damage sanitized to 0, got %.2f", cfg.Damage)
	}
	if cfg.Radius != parameter.ProjectileDefaultRadius {
		t.Errorf("Expected negative radius replaced by default, got %.2f", cfg.Radius)
	}
	// NaN structured velocity falls back to the legacy form
	if math.Abs(cfg.VelX-50) > 1e-9 {
		t.Errorf("Expected legacy fallback velocity 50, got %.2f", cfg.VelX)
	}
	if cfg.ChainRange != parameter.ChainDefaultRange {
		t.Errorf("Expected infinite chain range replaced by default, got %.2f", cfg.ChainRange)
	}
	if cfg.PiercingCharges != 0 || cfg.MaxChains != 0 {
		t.Errorf("Expected negative budgets clamped, got %d and %d", cfg.PiercingCharges, cfg.MaxChains)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := Normalize(FireRequest{Speed: 100})

	if cfg.Radius != parameter.ProjectileDefaultRadius {
		t.Errorf("Expected default radius, got %.2f", cfg.Radius)
	}
	if cfg.TravelEstimate != parameter.ProjectileDefaultTravel {
		t.Errorf("Expected default travel estimate, got %.2f", cfg.TravelEstimate)
	}
	if cfg.ChainDamageMult != parameter.ChainDefaultFalloff {
		t.Errorf("Expected default chain falloff, got %.2f", cfg.ChainDamageMult)
	}
	if cfg.ExplosionDamageMult != 1.0 {
		t.Errorf("Expected default explosion multiplier 1.0, got %.2f", cfg.ExplosionDamageMult)
	}
	if cfg.RicochetRange != parameter.RicochetDefaultRange {
		t.Errorf("Expected default ricochet range, got %.2f", cfg.RicochetRange)
	}
	if cfg.HomingTurnRate != parameter.HomingDefaultTurnRate {
		t.Errorf("Expected default homing turn rate, got %.2f", cfg.HomingTurnRate)
	}
	if cfg.BurnDuration != parameter.BurnDefaultDurationSec {
		t.Errorf("Expected default burn duration, got %.2f", cfg.BurnDuration)
	}
}

func TestNormalizeCritModifiers(t *testing.T) {
	cfg := Normalize(FireRequest{Speed: 100, Radius: 2, Crit: true})

	wantVel := 100 * parameter.ProjectileCritSpeedBonus
	if math.Abs(cfg.VelX-wantVel) > 1e-9 {
		t.Errorf("Expected crit speed %.2f, got %.2f", wantVel, cfg.VelX)
	}
	wantRadius := 2 * parameter.ProjectileCritRadiusBonus
	if math.Abs(cfg.Radius-wantRadius) > 1e-9 {
		t.Errorf("Expected crit radius %.2f, got %.2f", wantRadius, cfg.Radius)
	}
}
