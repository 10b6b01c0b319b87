package duelpong

import (
	"fmt"
	"hash/fnv"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/sim"
)

// Snapshot is a read-only view of the simulation for the render path and
// for determinism tests. It copies every slice so holding one across ticks
// is safe.
type Snapshot struct {
	Phase       core.Phase
	Balls       []Ball
	Player      Paddle
	CPU         Paddle
	Pickups     []Pickup
	Particles   []sim.Particle
	Flashes     []Flash
	ScorePlayer int
	ScoreCPU    int
	Rally       int
	Tick        int
	Shake       float64
	RNGState    uint64

	// Remaining ticks per timed effect, zero when inactive.
	Effects map[PowerUpType]int
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	balls := make([]Ball, len(g.balls))
	copy(balls, g.balls)

	pickups := make([]Pickup, len(g.powerups.Pickups))
	copy(pickups, g.powerups.Pickups)

	flashes := make([]Flash, len(g.flashes))
	copy(flashes, g.flashes)

	effects := make(map[PowerUpType]int)
	for _, t := range []PowerUpType{PowerBigPaddle, PowerSlowBall, PowerDouble} {
		if r := g.powerups.Remaining(t, g.tick); r > 0 {
			effects[t] = r
		}
	}

	return Snapshot{
		Phase:       g.phase,
		Balls:       balls,
		Player:      g.player,
		CPU:         g.cpu,
		Pickups:     pickups,
		Particles:   g.particles.Snapshot(),
		Flashes:     flashes,
		ScorePlayer: g.scorePlayer,
		ScoreCPU:    g.scoreCPU,
		Rally:       g.rally,
		Tick:        g.tick,
		Shake:       g.shake,
		RNGState:    g.rng.State(),
		Effects:     effects,
	}
}

// Hash folds the gameplay-relevant state into a single value. Two runs
// with the same seed and inputs must produce identical hashes tick for
// tick. Float values are quantized to 1e-6 so the hash is stable across
// formatting changes.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()

	q := func(f float64) int64 { return int64(f * 1e6) }

	// The generator state is part of the hash so two runs that diverge
	// only in consumed randomness are caught at the tick it happens.
	fmt.Fprintf(h, "p%d t%d s%d:%d r%d g%d\n", s.Phase, s.Tick, s.ScorePlayer, s.ScoreCPU, s.Rally, s.RNGState)
	fmt.Fprintf(h, "pl %d %d %d\n", q(s.Player.Y), q(s.Player.Height), q(s.CPU.Y))

	for _, b := range s.Balls {
		fmt.Fprintf(h, "b %d %d %d %d\n", q(b.Pos.X), q(b.Pos.Y), q(b.Vel.X), q(b.Vel.Y))
	}
	for _, pk := range s.Pickups {
		fmt.Fprintf(h, "k %d %d %d\n", pk.Type, q(pk.Pos.X), q(pk.Pos.Y))
	}
	for _, t := range []PowerUpType{PowerBigPaddle, PowerSlowBall, PowerDouble} {
		fmt.Fprintf(h, "e %d %d\n", t, s.Effects[t])
	}

	return h.Sum64()
}

// Render draws the snapshot into the screen buffer. Field units are scaled
// to cells; the simulation state is never written.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	s := g.Snapshot()
	w, h := dst.Width(), dst.Height()
	if w < 10 || h < 6 {
		return
	}

	// One HUD row on top; the rest is the field.
	fieldH := h - 1
	sx := func(x float64) int { return int(x / FieldW * float64(w)) }
	sy := func(y float64) int { return 1 + int(y/FieldH*float64(fieldH)) }

	// Screen shake offsets the whole field by up to one cell.
	dx := 0
	if s.Shake > 2 {
		if s.Tick%2 == 0 {
			dx = 1
		} else {
			dx = -1
		}
	}

	for y := 1; y < h; y += 2 {
		dst.SetColored(w/2+dx, y, NetChar, core.ColorGray)
	}

	drawPaddle := func(p Paddle, c core.Color) {
		x := sx(p.X) + dx
		top, bottom := sy(p.Y), sy(p.Y+p.Height)
		for y := top; y <= bottom && y < h; y++ {
			dst.SetColored(x, y, PaddleChar, c)
		}
	}
	drawPaddle(s.Player, core.ColorBrightCyan)
	drawPaddle(s.CPU, core.ColorBrightMagenta)

	for _, p := range s.Particles {
		r := '·'
		switch {
		case p.Size >= 2.5:
			r = '✦'
		case p.Size >= 1.5:
			r = '•'
		}
		c := p.Color
		if p.Glow && p.Life > p.MaxLife/2 {
			c = core.ColorBrightWhite
		}
		dst.SetColored(sx(p.Pos.X)+dx, sy(p.Pos.Y), r, c)
	}

	for _, f := range s.Flashes {
		dst.SetColored(sx(f.Pos.X)+dx, sy(f.Pos.Y), FlashChar, core.ColorBrightYellow)
	}

	for _, pk := range s.Pickups {
		dst.SetColored(sx(pk.Pos.X)+dx, sy(pk.Pos.Y), pk.Type.Glyph(), core.ColorBrightGreen)
	}

	for _, b := range s.Balls {
		dst.SetColored(sx(b.Pos.X)+dx, sy(b.Pos.Y), BallChar, core.ColorBrightWhite)
	}

	g.renderHUD(dst, s, w)

	switch s.Phase {
	case core.PhaseIdle:
		dst.DrawTextCentered(h/2, "Press W/S or ↑/↓ to serve")
	case core.PhasePaused:
		dst.DrawTextCentered(h/2, "── PAUSED ──")
	case core.PhaseGameOver:
		msg := "YOU WIN!"
		if s.ScoreCPU > s.ScorePlayer {
			msg = "CPU WINS"
		}
		dst.DrawTextCentered(h/2-1, msg)
		dst.DrawTextCentered(h/2+1, "R to restart · Q to quit")
	}
}

// renderHUD draws the score line and the active effect countdowns.
func (g *Game) renderHUD(dst *core.Screen, s Snapshot, w int) {
	dst.DrawTextColored(2, 0, fmt.Sprintf("YOU %d", s.ScorePlayer), core.ColorBrightCyan)
	cpu := fmt.Sprintf("%d CPU", s.ScoreCPU)
	dst.DrawTextColored(w-len(cpu)-2, 0, cpu, core.ColorBrightMagenta)

	if s.Rally >= 3 {
		dst.DrawTextCentered(0, fmt.Sprintf("rally ×%d", s.Rally))
	}

	x := w/2 + 8
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	for _, t := range []PowerUpType{PowerBigPaddle, PowerSlowBall, PowerDouble} {
		r, ok := s.Effects[t]
		if !ok {
			continue
		}
		label := fmt.Sprintf("[%c %ds]", t.Glyph(), (r+tickRate-1)/tickRate)
		dst.DrawText(x, 0, label)
		x += len(label) + 1
	}
}
