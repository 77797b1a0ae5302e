package viewer

import "math"

type Camera struct {
	X, Y float64 // world-pixel space, camera centre
	Zoom float64 // screen pixels per world pixel
}

// Follow eases the camera toward the target. The exponential form keeps
// the lag frame-rate independent.
func (c *Camera) Follow(tx, ty, dt float64) {
	k := 1.0 - math.Exp(-dt*8.0)
	c.X += (tx - c.X) * k
	c.Y += (ty - c.Y) * k
}

// Snap recentres instantly, used after teleports so the camera doesn't
// sweep across half the world.
func (c *Camera) Snap(tx, ty float64) {
	c.X = tx
	c.Y = ty
}

func (c *Camera) ClampZoom() {
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}
