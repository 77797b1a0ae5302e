package viewer

import (
	"math"
	"testing"
)

func TestFollowEasesTowardTarget(t *testing.T) {
	cam := Camera{X: 0, Y: 0, Zoom: DefaultZoom}
	prev := math.Hypot(100, 50)
	for i := 0; i < 60; i++ {
		cam.Follow(100, 50, 1.0/60.0)
		d := math.Hypot(100-cam.X, 50-cam.Y)
		if d >= prev {
			t.Fatalf("step %d moved away from the target: %v -> %v", i, prev, d)
		}
		prev = d
	}
	if prev > 1.0 {
		t.Fatalf("camera still %v pixels away after a second of easing", prev)
	}
}

func TestFollowIsFrameRateIndependent(t *testing.T) {
	coarse := Camera{}
	coarse.Follow(100, 0, 0.1)

	fine := Camera{}
	for i := 0; i < 10; i++ {
		fine.Follow(100, 0, 0.01)
	}
	if math.Abs(coarse.X-fine.X) > 1e-6 {
		t.Fatalf("one 100ms step reached %v, ten 10ms steps reached %v", coarse.X, fine.X)
	}
}

func TestSnapRecentresInstantly(t *testing.T) {
	cam := Camera{X: 5, Y: 5}
	cam.Snap(99999, -3)
	if cam.X != 99999 || cam.Y != -3 {
		t.Fatalf("snap left the camera at (%v,%v)", cam.X, cam.Y)
	}
}

func TestClampZoomBounds(t *testing.T) {
	cam := Camera{Zoom: 1000}
	cam.ClampZoom()
	if cam.Zoom != MaxZoom {
		t.Fatalf("zoom = %v, want clamped to %v", cam.Zoom, MaxZoom)
	}
	cam.Zoom = 0.001
	cam.ClampZoom()
	if cam.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want clamped to %v", cam.Zoom, MinZoom)
	}
	cam.Zoom = 3
	cam.ClampZoom()
	if cam.Zoom != 3 {
		t.Fatalf("zoom = %v, want untouched", cam.Zoom)
	}
}
