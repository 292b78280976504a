package game

import (
	"fmt"

	"github.com/mfarouk/metro-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlayerHead   = '◆'
	PlatformChar = '═'
	GroundObs    = '▓'
	FlyingObs    = '▼'
	CoinChar     = '●'
)

// characterColor returns the body color used for a character everywhere
// it is drawn.
func characterColor(c Character) core.Color {
	switch c {
	case BigJoe:
		return core.ColorBlue
	case AliAloka:
		return core.ColorGreen
	case Hamda:
		return core.ColorMagenta
	case Speedy:
		return core.ColorRed
	default:
		return core.ColorWhite
	}
}

// Render draws the current session screen into dst. World coordinates are
// logical (config screen units, y-down); they are scaled to the cell grid
// here and nowhere else.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	switch s.state {
	case StateStartScreen:
		s.renderStartScreen(dst)
	case StateCharacterSelect:
		s.renderCharacterSelect(dst)
	case StatePlaying:
		s.renderPlaying(dst)
	case StateGameOver:
		s.renderPlaying(dst)
		s.renderGameOver(dst)
	}
}

// cellX converts a logical x coordinate to a cell column.
func (s *Session) cellX(dst *core.Screen, x float64) int {
	return int(x / s.cfg.Screen.Width * float64(dst.Width()))
}

// cellY converts a logical y coordinate to a cell row.
func (s *Session) cellY(dst *core.Screen, y float64) int {
	return int(y / s.cfg.Screen.Height * float64(dst.Height()))
}

// cellSpan converts a logical horizontal length to a cell count, at
// least one cell so thin entities stay visible.
func (s *Session) cellSpan(dst *core.Screen, w float64) int {
	n := int(w / s.cfg.Screen.Width * float64(dst.Width()))
	return core.Max(n, 1)
}

// cellSpanY converts a logical vertical length to a cell count.
func (s *Session) cellSpanY(dst *core.Screen, h float64) int {
	n := int(h / s.cfg.Screen.Height * float64(dst.Height()))
	return core.Max(n, 1)
}

func (s *Session) renderStartScreen(dst *core.Screen) {
	midY := dst.Height() / 2
	dst.DrawTextCentered(midY-2, "M E T R O   R U N N E R", core.ColorYellow)
	dst.DrawTextCentered(midY, "Press any key to start", core.ColorWhite)
	if s.record.BestScore > 0 {
		dst.DrawTextCentered(midY+2,
			fmt.Sprintf("Best: %d   Coins: %d", s.record.BestScore, s.record.TotalCoins),
			core.ColorGray)
	}
}

func (s *Session) renderCharacterSelect(dst *core.Screen) {
	dst.DrawTextCentered(1, "CHOOSE YOUR RUNNER", core.ColorYellow)

	n := int(CharacterCount)
	slotW := dst.Width() / n
	for i := 0; i < n; i++ {
		c := Character(i)
		x := i*slotW + slotW/2
		midY := dst.Height() / 2

		color := characterColor(c)
		name := c.String()
		nameX := core.Clamp(x-len(name)/2, 0, dst.Width()-len(name))

		// Small standing figure
		dst.SetCell(x, midY-2, PlayerHead, color)
		dst.SetCell(x, midY-1, PlayerChar, color)
		dst.SetCell(x, midY, PlayerChar, color)

		dst.DrawTextColor(nameX, midY+2, name, color)

		ability := c.AbilityName()
		abilityX := core.Clamp(x-len(ability)/2, 0, dst.Width()-len(ability))
		dst.DrawTextColor(abilityX, midY+3, ability, core.ColorGray)

		if c == s.selected {
			marker := "> " + name + " <"
			markerX := core.Clamp(x-len(marker)/2, 0, dst.Width()-len(marker))
			dst.DrawTextColor(markerX, midY+2, marker, core.ColorYellow)
		}
	}

	dst.DrawTextCentered(dst.Height()-2, "arrows: select   SPACE: confirm", core.ColorGray)
}

func (s *Session) renderPlaying(dst *core.Screen) {
	// Platforms
	for _, m := range s.world.Platforms() {
		y := s.cellY(dst, s.cfg.World.PlatformY)
		x := s.cellX(dst, m.X)
		w := s.cellSpan(dst, m.Width)
		dst.DrawHLine(x, y, w, PlatformChar, core.ColorCyan)
	}

	// Obstacles
	for _, o := range s.world.Obstacles() {
		ch := GroundObs
		color := core.ColorRed
		if o.Flying {
			ch = FlyingObs
			color = core.ColorMagenta
		}
		x := s.cellX(dst, o.X)
		y := s.cellY(dst, o.Y)
		w := s.cellSpan(dst, o.Width)
		h := s.cellSpanY(dst, o.Height)
		dst.DrawRect(core.NewRect(x, y, w, h), ch, color)
	}

	// Coins
	for _, c := range s.world.Coins() {
		dst.SetCell(s.cellX(dst, c.X), s.cellY(dst, c.Y), CoinChar, core.ColorYellow)
	}

	s.renderPlayer(dst)
	s.renderHUD(dst)
}

// renderPlayer draws the runner as a 1-wide column of body cells with a
// head on top; ducking halves the column.
func (s *Session) renderPlayer(dst *core.Screen) {
	p := s.player
	if p == nil {
		return
	}

	color := characterColor(p.Character)
	if p.Character == BigJoe && p.Ability.Active {
		color = core.ColorYellow // shield glow
	}

	x := s.cellX(dst, p.X+p.Width/2)
	top := s.cellY(dst, p.Y)
	h := s.cellSpanY(dst, p.Height)

	dst.SetCell(x, top, PlayerHead, color)
	for dy := 1; dy < h; dy++ {
		dst.SetCell(x, top+dy, PlayerChar, color)
	}
}

// renderHUD draws the score line and the ability status.
func (s *Session) renderHUD(dst *core.Screen) {
	p := s.player
	coins := s.world.CoinsCollected()

	left := fmt.Sprintf(" Coins: %d  Best: %d ", coins, s.record.BestScore)
	dst.DrawTextColor(1, 0, left, core.ColorWhite)

	right := fmt.Sprintf(" Spd: %.1f ", s.world.Speed())
	dst.DrawTextColor(dst.Width()-len(right)-1, 0, right, core.ColorGray)

	if p != nil {
		var status string
		var color core.Color
		switch {
		case p.Ability.Active:
			status = fmt.Sprintf(" %s %.1fs ", p.Character.AbilityName(), p.Ability.Timer)
			color = core.ColorGreen
		case !p.Ability.Ready():
			status = fmt.Sprintf(" %s in %.1fs ", p.Character.AbilityName(), p.Ability.Cooldown)
			color = core.ColorGray
		default:
			status = fmt.Sprintf(" %s ready (Q) ", p.Character.AbilityName())
			color = core.ColorCyan
		}
		dst.DrawTextColor(1, 1, status, color)
	}

	if s.Muted() {
		dst.DrawTextColor(dst.Width()-8, 1, " MUTED ", core.ColorGray)
	}
}

// renderGameOver draws the summary box over the frozen playfield.
func (s *Session) renderGameOver(dst *core.Screen) {
	title := "GAME OVER"
	line1 := fmt.Sprintf("Score: %d   Best: %d", s.lastScore, s.record.BestScore)
	line2 := "Press SPACE to continue"

	w := dst.Width()
	h := dst.Height()
	boxW := core.Max(core.Max(len(title), len(line1)), len(line2)) + 4
	boxH := 7
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorRed)
	dst.DrawTextColor(boxX+(boxW-len(line1))/2, boxY+3, line1, core.ColorWhite)
	dst.DrawTextColor(boxX+(boxW-len(line2))/2, boxY+5, line2, core.ColorGray)
}
