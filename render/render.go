// Package render draws the game state directly onto a tcell screen.
// Layout: HUD row on top, arena cells in the middle, status bar at the
// bottom. Arena coordinates map 1:1 onto terminal cells.
package render

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mcjdh/galactic-ring-cannon-sub002/arena"
	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/game"
	"github.com/mcjdh/galactic-ring-cannon-sub002/projectile"
)

const healthBarWidth = 20

var trailRunes = [3]rune{'░', '▒', '▓'}

// Renderer owns the terminal surface and the transient effect store
type Renderer struct {
	screen  tcell.Screen
	effects *Effects

	width   int // arena columns
	height  int // arena rows
	originX int
	originY int

	baseStyle tcell.Style
	statKills *atomic.Int64

	// FPS tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewRenderer creates a renderer sized to the current screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{
		screen:        screen,
		effects:       NewEffects(),
		lastFpsUpdate: time.Now(),
	}
	r.Resize()
	return r
}

// Resize recomputes the arena viewport from the screen size.
// One row each is reserved for the HUD and the status bar.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.width = w
	r.height = h - 2
	if r.width < 1 {
		r.width = 1
	}
	if r.height < 1 {
		r.height = 1
	}
	r.originX = 0
	r.originY = 1
}

// GameArea returns the arena bounds matching the current viewport
func (r *Renderer) GameArea() core.Area {
	return core.Area{X: 0, Y: 0, Width: float64(r.width), Height: float64(r.height)}
}

// Effects exposes the transient store so the shell can feed it events
func (r *Renderer) Effects() *Effects {
	return r.effects
}

// RenderFrame draws one complete frame.
// aimDX, aimDY is the fire direction marker; zero hides it.
func (r *Renderer) RenderFrame(g *game.Game, aimDX, aimDY float64, weapon string, muted bool) {
	r.frameCount++
	now := time.Now()
	if now.Sub(r.lastFpsUpdate) >= time.Second {
		r.currentFps = r.frameCount
		r.frameCount = 0
		r.lastFpsUpdate = now
	}

	if r.statKills == nil {
		r.statKills = g.Status().Ints.Get("arena.kills")
	}

	r.screen.Clear()
	r.baseStyle = tcell.StyleDefault.Background(RgbBackground)

	r.drawHazards(g.Arena())
	r.drawTargets(g.Arena())
	r.drawEffects()

	g.EachProjectile(func(p *projectile.Projectile) bool {
		p.Render(r)
		return true
	})

	r.drawOwner(g, aimDX, aimDY)
	r.drawHud(g)
	r.drawStatusBar(g, weapon, muted)

	r.screen.Show()
}

// --- Surface ---

// DrawTrailPoint renders one trail cell, densest nearest the head
func (r *Renderer) DrawTrailPoint(x, y float64, index, count int) {
	band := index * len(trailRunes) / count
	if band >= len(trailRunes) {
		band = len(trailRunes) - 1
	}
	sx, sy := r.cell(x, y)
	r.put(sx, sy, trailRunes[band], r.baseStyle.Foreground(RgbTrail))
}

// DrawProjectile renders the projectile head
func (r *Renderer) DrawProjectile(x, y, radius float64, crit bool) {
	ch := '•'
	style := r.baseStyle.Foreground(RgbProjectile)
	if crit {
		ch = '◆'
		style = r.baseStyle.Foreground(RgbProjectileCrit).Bold(true)
	}
	sx, sy := r.cell(x, y)
	r.put(sx, sy, ch, style)
}

// --- World Layers ---

func (r *Renderer) drawHazards(a *arena.Arena) {
	a.EachHazard(func(h *arena.Hazard) bool {
		style := r.baseStyle.Foreground(RgbHazard)
		if h.Remaining() < 1.0 {
			style = style.Dim(true)
		}
		rr := int(h.Radius + 0.5)
		for dy := -rr; dy <= rr; dy++ {
			for dx := -rr; dx <= rr; dx++ {
				if dx*dx+dy*dy > rr*rr {
					continue
				}
				sx, sy := r.cell(h.X+float64(dx), h.Y+float64(dy))
				r.put(sx, sy, '░', style)
			}
		}
		return true
	})
}

func (r *Renderer) drawTargets(a *arena.Arena) {
	a.EachLiveTarget(func(t *arena.Target) bool {
		color := targetColor(t.HPFraction())
		if a.IsBurning(t.ID()) {
			color = RgbTargetBurning
		}
		x, y := t.Position()
		sx, sy := r.cell(x, y)
		r.put(sx, sy, '●', r.baseStyle.Foreground(color))
		return true
	})
}

func (r *Renderer) drawOwner(g *game.Game, aimDX, aimDY float64) {
	x, y := g.Owner().Position()
	sx, sy := r.cell(x, y)
	r.put(sx, sy, '◉', r.baseStyle.Foreground(RgbStatusBar).Bold(true))

	if aimDX != 0 || aimDY != 0 {
		ax, ay := r.cell(x+aimDX*2, y+aimDY*2)
		r.put(ax, ay, '+', r.baseStyle.Foreground(RgbHudLabel))
	}
}

// --- Transient Effects ---

func (r *Renderer) drawEffects() {
	for i := range r.effects.active {
		fx := &r.effects.active[i]
		switch fx.kind {
		case effectRing:
			r.drawRing(fx.x, fx.y, fx.radius*fx.progress(), r.baseStyle.Foreground(RgbExplosion))
		case effectArc:
			r.drawLine(fx.x, fx.y, fx.x2, fx.y2, '·', r.baseStyle.Foreground(RgbChainArc).Bold(true))
		case effectFlash:
			ch := '*'
			if fx.progress() > 0.5 {
				ch = '+'
			}
			sx, sy := r.cell(fx.x, fx.y)
			r.put(sx, sy, ch, r.baseStyle.Foreground(RgbBounceFlash).Bold(true))
		case effectIgnite:
			sx, sy := r.cell(fx.x, fx.y)
			r.put(sx, sy-1, '^', r.baseStyle.Foreground(RgbIgnite))
		case effectKillPop:
			ch := 'X'
			switch {
			case fx.progress() > 0.66:
				ch = '·'
			case fx.progress() > 0.33:
				ch = 'x'
			}
			sx, sy := r.cell(fx.x, fx.y)
			r.put(sx, sy, ch, r.baseStyle.Foreground(RgbKillPop).Bold(true))
		case effectSpark:
			sx, sy := r.cell(fx.x, fx.y)
			r.put(sx, sy, '+', r.baseStyle.Foreground(RgbImpactSpark))
		}
	}
}

func (r *Renderer) drawRing(cx, cy, radius float64, style tcell.Style) {
	steps := int(radius*8) + 8
	for i := 0; i < steps; i++ {
		ang := 2 * math.Pi * float64(i) / float64(steps)
		sx, sy := r.cell(cx+math.Cos(ang)*radius, cy+math.Sin(ang)*radius)
		r.put(sx, sy, '◦', style)
	}
}

func (r *Renderer) drawLine(x1, y1, x2, y2 float64, ch rune, style tcell.Style) {
	steps := int(math.Max(math.Abs(x2-x1), math.Abs(y2-y1))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		sx, sy := r.cell(x1+(x2-x1)*t, y1+(y2-y1)*t)
		r.put(sx, sy, ch, style)
	}
}

// --- Chrome ---

// drawHud draws the top row: owner health bar left, kill streak right
func (r *Renderer) drawHud(g *game.Game) {
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, r.baseStyle)
	}

	hp, maxHP := g.Owner().HP()
	frac := 0.0
	if maxHP > 0 {
		frac = hp / maxHP
	}
	filled := int(frac*healthBarWidth + 0.5)

	x := r.drawText(0, 0, " HP ", r.baseStyle.Foreground(RgbHudLabel))
	for i := 0; i < healthBarWidth; i++ {
		style := r.baseStyle.Foreground(RgbHealthFill)
		ch := '█'
		if i >= filled {
			ch = '░'
			style = r.baseStyle.Foreground(RgbHudLabel).Dim(true)
		}
		r.screen.SetContent(x+i, 0, ch, nil, style)
	}
	x += healthBarWidth
	r.drawText(x+1, 0, fmt.Sprintf("%.0f/%.0f", hp, maxHP), r.baseStyle.Foreground(RgbStatusBar))

	streakText := fmt.Sprintf(" Streak: %d ", g.Owner().KillStreak())
	r.drawText(r.width-len(streakText), 0, streakText, r.baseStyle.Foreground(RgbStreak).Bold(true))
}

// drawStatusBar draws the bottom row: controls and weapon left,
// counters right
func (r *Renderer) drawStatusBar(g *game.Game, weapon string, muted bool) {
	statusY := r.originY + r.height
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, statusY, ' ', nil, r.baseStyle)
	}

	x := r.drawText(0, statusY, " hjkl aim  space fire  1-8 weapon  m mute  q quit ", r.baseStyle.Foreground(RgbHudLabel))
	if weapon != "" {
		r.drawText(x, statusY, " ["+weapon+"] ", r.baseStyle.Foreground(RgbProjectileCrit).Bold(true))
	}

	audioText := " snd "
	audioStyle := r.baseStyle.Foreground(RgbAudioUnmuted)
	if muted {
		audioText = " mute "
		audioStyle = r.baseStyle.Foreground(RgbAudioMuted)
	}
	countText := fmt.Sprintf(" FPS: %d  Shots: %d  Targets: %d  Kills: %d ",
		r.currentFps, g.Pool().ActiveCount(), g.Arena().TargetCount(), r.statKills.Load())

	startX := r.width - len(countText) - len(audioText)
	if startX < 0 {
		startX = 0
	}
	x = r.drawText(startX, statusY, countText, r.baseStyle.Foreground(RgbStatusBar))
	r.drawText(x, statusY, audioText, audioStyle)
}

// --- Cell Plumbing ---

// cell maps arena coordinates to screen cells
func (r *Renderer) cell(x, y float64) (int, int) {
	return r.originX + int(math.Round(x)), r.originY + int(math.Round(y))
}

// put writes a rune if the cell lies inside the arena viewport
func (r *Renderer) put(sx, sy int, ch rune, style tcell.Style) {
	if sx < r.originX || sx >= r.originX+r.width {
		return
	}
	if sy < r.originY || sy >= r.originY+r.height {
		return
	}
	r.screen.SetContent(sx, sy, ch, nil, style)
}

// drawText writes a string and returns the x after its last cell
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	for i, ch := range text {
		if x+i >= 0 && x+i < r.width {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
	return x + len(text)
}
