// Package entity holds the movable things that live on top of the tile map.
package entity

import (
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/gfx"
)

// Player is the single controllable character.
// Position and Velocity are in canvas pixels and pixels per tick.
type Player struct {
	Position core.Vec2f
	Velocity core.Vec2f
	Width    int
	Height   int

	sprite *gfx.SpriteSheet
}

// NewPlayer places a player of the given on-screen size at pos, at rest.
// The sprite's cell (0, 0) is drawn scaled to Width x Height.
func NewPlayer(sprite *gfx.SpriteSheet, pos core.Vec2f, width, height int) *Player {
	return &Player{
		Position: pos,
		Width:    width,
		Height:   height,
		sprite:   sprite,
	}
}

// Update advances the player by one fixed tick: velocity loses the damping
// fraction of itself, then moves the position.
func (p *Player) Update(damping float32) {
	p.Velocity.SubAssign(p.Velocity.MulScalar(damping))
	p.Position.AddAssign(p.Velocity)
}

// Accelerate adds accel to the velocity along every held direction.
// Opposite directions cancel.
func (p *Player) Accelerate(in core.InputFrame, accel float32) {
	if in.Has(core.ActionMoveLeft) {
		p.Velocity.X -= accel
	}
	if in.Has(core.ActionMoveRight) {
		p.Velocity.X += accel
	}
	if in.Has(core.ActionMoveUp) {
		p.Velocity.Y -= accel
	}
	if in.Has(core.ActionMoveDown) {
		p.Velocity.Y += accel
	}
}

// Bounds returns the on-screen rectangle, truncating the position.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(int(p.Position.X), int(p.Position.Y), p.Width, p.Height)
}

// Draw blits the player sprite at its current position.
func (p *Player) Draw(dst core.RenderTarget) error {
	return p.sprite.DrawCellTo(dst, 0, 0, p.Bounds())
}
