// Command ring-cannon is the playable terminal demo: a fixed cannon at
// the arena center, drifting targets, and the full projectile behavior
// set on number keys. Aim with vi keys, hold autofire with space.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mcjdh/galactic-ring-cannon-sub002/arena"
	"github.com/mcjdh/galactic-ring-cannon-sub002/audio"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/game"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/projectile"
	"github.com/mcjdh/galactic-ring-cannon-sub002/render"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

// --- Demo Tuning ---

const (
	fireCooldownSec    = 0.18
	spawnIntervalSec   = 1.1
	maxDemoTargets     = 14
	initialTargets     = 5
	ownerContactDamage = 8.0
	ownerHP            = 100.0
)

var (
	seedFlag  = flag.Uint64("seed", 0, "RNG seed; 0 derives one from the clock")
	muteFlag  = flag.Bool("mute", false, "Start with audio muted")
	debugFlag = flag.Bool("debug", false, "Write log output to ring-cannon.log")
	colorFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

// --- Weapon Presets ---

// weaponPreset is a firing template; position, velocity and the crit
// roll are filled per shot
type weaponPreset struct {
	name       string
	speed      float64
	critChance float64
	req        projectile.FireRequest
}

var presets = []weaponPreset{
	{name: "slug", critChance: 0.15, req: projectile.FireRequest{
		Damage: 14,
	}},
	{name: "lance", critChance: 0.10, req: projectile.FireRequest{
		Damage: 9, PiercingCharges: 3,
	}},
	{name: "bounce", critChance: 0.10, req: projectile.FireRequest{
		Damage: 10, RicochetChance: 1, RicochetBounces: 2, RicochetRange: 45, RicochetDamageMult: 0.85,
	}},
	{name: "tesla", critChance: 0.10, req: projectile.FireRequest{
		Damage: 8, ChainChance: 0.8, MaxChains: 3, ChainRange: 28, ChainDamageMult: 0.7,
	}},
	{name: "mortar", speed: 120, critChance: 0.10, req: projectile.FireRequest{
		Damage: 12, ExplosiveChance: 1, ExplosionRadius: 9, ExplosionDamageMult: 0.8,
		ExplodeOnContact: true, ExplodeOnTimeout: true,
	}},
	{name: "ember", critChance: 0.10, req: projectile.FireRequest{
		Damage: 6, BurnChance: 0.9, BurnDamage: 4, BurnDuration: 3,
		BurnCanExplode: true, BurnExplosionDamage: 20, BurnExplosionRadius: 7,
	}},
	{name: "seeker", speed: 140, critChance: 0.10, req: projectile.FireRequest{
		Damage: 10, HomingChance: 1, HomingTurnRate: 6, HomingRange: 40,
	}},
	{name: "leech", critChance: 0.15, req: projectile.FireRequest{
		Damage: 10, LifeDrainRate: 0.35,
	}},
}

// --- Shell ---

// shell couples the engine to terminal input, rendering and audio
type shell struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *render.Renderer
	sound    *audio.SoundManager
	rng      *vmath.FastRand

	aimX, aimY float64
	weapon     int
	autofire   bool
	fireTimer  float64
	spawnTimer float64
}

func newShell(screen tcell.Screen, seed uint64) *shell {
	renderer := render.NewRenderer(screen)
	bounds := renderer.GameArea()

	g := game.New(game.Config{
		Bounds: bounds,
		Seed:   seed,
		Owner: arena.OwnerSpec{
			X: bounds.Width / 2, Y: bounds.Height / 2,
			HP:             ownerHP,
			ScorchedGround: true,
		},
	})

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	sound.SetMuted(*muteFlag)

	s := &shell{
		screen:   screen,
		game:     g,
		renderer: renderer,
		sound:    sound,
		rng:      vmath.NewFastRand(seed ^ 0x9e3779b97f4a7c15),
		aimX:     1,
	}
	for i := 0; i < initialTargets; i++ {
		s.spawnTarget()
	}
	return s
}

func (s *shell) cleanup() {
	s.sound.Cleanup()
	s.screen.Fini()
}

func (s *shell) run() {
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}

		case <-ticker.C:
			s.tick(parameter.TickSeconds)
		}
	}
}

func (s *shell) tick(dt float64) {
	s.spawnTimer -= dt
	if s.spawnTimer <= 0 && s.game.Arena().TargetCount() < maxDemoTargets {
		s.spawnTimer = spawnIntervalSec
		s.spawnTarget()
	}

	s.fireTimer -= dt
	if s.autofire && s.fireTimer <= 0 && !s.ownerDown() {
		s.fireTimer = fireCooldownSec
		s.fire()
	}

	s.game.Update(dt)
	s.ownerContact()
	s.renderer.Effects().Update(dt)
	s.pumpEvents()

	s.renderer.RenderFrame(s.game, s.aimX, s.aimY, presets[s.weapon].name, s.sound.Muted())
	if s.ownerDown() {
		s.drawDownBanner()
	}
}

// pumpEvents drains the engine queue into effects and audio.
// Pooled impact payloads are released here, after the last reader.
func (s *shell) pumpEvents() {
	for _, ev := range s.game.Events().Consume() {
		s.renderer.Effects().HandleEvent(ev)

		switch ev.Type {
		case event.EventProjectileSpawned:
			s.sound.PlayFire()
		case event.EventImpact:
			if p, ok := ev.Payload.(*event.ImpactPayload); ok {
				s.sound.PlayImpact(p.Crit)
				event.ReleaseImpact(p)
			}
		case event.EventRicochetBounce:
			s.sound.PlayBounce()
		case event.EventChainArc:
			s.sound.PlayChain()
		case event.EventExplosion:
			s.sound.PlayExplosion()
		case event.EventBurnIgnited:
			s.sound.PlayIgnite()
		case event.EventTargetKilled:
			s.sound.PlayKill()
		}
	}
}

func (s *shell) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			s.setAim(-1, 0)
		case 'l':
			s.setAim(1, 0)
		case 'k':
			s.setAim(0, -1)
		case 'j':
			s.setAim(0, 1)
		case 'y':
			s.setAim(-1, -1)
		case 'u':
			s.setAim(1, -1)
		case 'b':
			s.setAim(-1, 1)
		case 'n':
			s.setAim(1, 1)
		case ' ':
			s.autofire = !s.autofire
		case 'f':
			if !s.ownerDown() {
				s.fire()
			}
		case 'm':
			s.sound.Toggle()
		case 'r':
			if s.ownerDown() {
				s.game.Owner().Heal(ownerHP)
			}
		case '1', '2', '3', '4', '5', '6', '7', '8':
			s.weapon = int(ev.Rune() - '1')
		}

	case *tcell.EventResize:
		s.screen.Sync()
		s.renderer.Resize()
	}
	return true
}

func (s *shell) setAim(dx, dy float64) {
	length := math.Hypot(dx, dy)
	s.aimX, s.aimY = dx/length, dy/length
}

func (s *shell) ownerDown() bool {
	hp, _ := s.game.Owner().HP()
	return hp <= 0
}

func (s *shell) fire() {
	preset := presets[s.weapon]
	speed := preset.speed
	if speed == 0 {
		speed = parameter.ProjectileDefaultSpeed
	}

	ox, oy := s.game.Owner().Position()
	req := preset.req
	req.X, req.Y = ox+s.aimX*2, oy+s.aimY*2
	req.VelX, req.VelY = s.aimX*speed, s.aimY*speed
	req.Crit = s.rng.Chance(preset.critChance)
	s.game.Fire(req)
}

// spawnTarget drops a drifting target on a random arena edge
func (s *shell) spawnTarget() {
	bounds := s.game.Arena().Bounds()
	along := s.rng.Range(0.1, 0.9)
	drift := s.rng.Range(-4, 4)
	inward := s.rng.Range(3, 9)

	spec := arena.TargetSpec{
		Radius: s.rng.Range(1, 2.5),
		HP:     s.rng.Range(20, 60),
	}
	switch s.rng.Intn(4) {
	case 0: // top edge
		spec.X, spec.Y = bounds.X+bounds.Width*along, bounds.Y+1
		spec.VelX, spec.VelY = drift, inward
	case 1: // bottom edge
		spec.X, spec.Y = bounds.X+bounds.Width*along, bounds.Y+bounds.Height-1
		spec.VelX, spec.VelY = drift, -inward
	case 2: // left edge
		spec.X, spec.Y = bounds.X+1, bounds.Y+bounds.Height*along
		spec.VelX, spec.VelY = inward, drift
	default: // right edge
		spec.X, spec.Y = bounds.X+bounds.Width-1, bounds.Y+bounds.Height*along
		spec.VelX, spec.VelY = -inward, drift
	}
	s.game.Arena().AddTarget(spec)
}

// ownerContact rams targets that reach the cannon: the owner takes a
// hit and the target dies
func (s *shell) ownerContact() {
	ox, oy := s.game.Owner().Position()
	s.game.Arena().EachLiveTarget(func(t *arena.Target) bool {
		tx, ty := t.Position()
		reach := t.Radius() + 1
		dx, dy := tx-ox, ty-oy
		if dx*dx+dy*dy <= reach*reach {
			s.game.Owner().Damage(ownerContactDamage)
			t.ApplyDamage(1e9, false)
		}
		return true
	})
}

func (s *shell) drawDownBanner() {
	w, h := s.screen.Size()
	text := " CANNON DOWN - press r "
	style := tcell.StyleDefault.Background(render.RgbKillPop).Foreground(tcell.ColorWhite).Bold(true)
	startX := (w - len(text)) / 2
	for i, ch := range text {
		s.screen.SetContent(startX+i, h/2, ch, nil, style)
	}
	s.screen.Show()
}

// --- Entry ---

// emergencyReset restores the terminal with raw escape sequences when
// tcell teardown cannot be trusted
func emergencyReset(w io.Writer) {
	fmt.Fprint(w, "\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l") // mouse tracking off
	fmt.Fprint(w, "\x1b[?25h")                                    // cursor visible
	fmt.Fprint(w, "\x1b[?1049l")                                  // leave alt screen
	fmt.Fprint(w, "\x1b[0m")                                      // reset attributes
	fmt.Fprint(w, "\x1b[?7h")                                     // autowrap on
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			emergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\nRING-CANNON CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if *debugFlag {
		logFile, err := os.OpenFile("ring-cannon.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	switch *colorFlag {
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Unsetenv("COLORTERM")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("ring-cannon starting: seed=%d", seed)

	s := newShell(screen, seed)
	defer s.cleanup()
	s.run()
}
