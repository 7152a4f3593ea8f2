package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions; terminals without true color degrade through
// tcell's color mapping
var (
	RgbBackground = tcell.NewRGBColor(16, 16, 28)    // Near-black night blue
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHudLabel   = tcell.NewRGBColor(150, 150, 170) // Muted gray

	RgbTargetHealthy  = tcell.NewRGBColor(80, 220, 100) // Green
	RgbTargetHurt     = tcell.NewRGBColor(255, 200, 60) // Amber
	RgbTargetCritical = tcell.NewRGBColor(255, 90, 90)  // Red
	RgbTargetBurning  = tcell.NewRGBColor(255, 140, 40) // Ember orange

	RgbProjectile     = tcell.NewRGBColor(120, 200, 255) // Light cyan
	RgbProjectileCrit = tcell.NewRGBColor(255, 220, 80)  // Bright gold
	RgbTrail          = tcell.NewRGBColor(80, 130, 170)  // Dim steel blue

	RgbExplosion   = tcell.NewRGBColor(255, 160, 60)  // Blast orange
	RgbChainArc    = tcell.NewRGBColor(150, 220, 255) // Electric blue
	RgbBounceFlash = tcell.NewRGBColor(255, 255, 180) // Pale yellow
	RgbIgnite      = tcell.NewRGBColor(255, 120, 40)  // Flame
	RgbKillPop     = tcell.NewRGBColor(255, 70, 70)   // Hot red
	RgbImpactSpark = tcell.NewRGBColor(220, 220, 255) // Spark white

	RgbHazard     = tcell.NewRGBColor(200, 70, 30)  // Scorched ground
	RgbHealthFill = tcell.NewRGBColor(90, 230, 120) // Owner health bar
	RgbStreak     = tcell.NewRGBColor(255, 210, 90) // Kill streak gold

	RgbAudioMuted   = tcell.NewRGBColor(255, 70, 70) // Bright red when muted
	RgbAudioUnmuted = tcell.NewRGBColor(70, 255, 70) // Bright green when live
)

// targetColor maps remaining health to a readable tint
func targetColor(frac float64) tcell.Color {
	switch {
	case frac > 0.66:
		return RgbTargetHealthy
	case frac > 0.33:
		return RgbTargetHurt
	default:
		return RgbTargetCritical
	}
}
