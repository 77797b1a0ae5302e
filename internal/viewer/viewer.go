package viewer

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"tilestream/internal/world"
)

// Run opens a window and walks an observer through a streamed tile world.
func Run() {
	runtime.LockOSThread()

	cfg := LoadConfig()

	window, err := initWindow(cfg.WindowW, cfg.WindowH)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if !cfg.Mute {
		if err := InitAudio(); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			go func() {
				time.Sleep(100 * time.Millisecond) // let audio context initialize
				PlaySound(SoundStartup)
			}()
		}
	}

	tiles, art := BuildTileSet(cfg.ArtSeed)

	var level *world.LegacyLevel
	obsX, obsY := 0.0, 0.0
	if !cfg.NoIsland {
		level = IslandLevel()
		obsX, obsY = IslandSpawn()
	}

	m := world.NewManager(world.Config{
		ChunkSize:      cfg.ChunkSize,
		TileSize:       cfg.TileSize,
		RenderDistance: cfg.RenderDistance,
	}, level, tiles)
	if err := m.Update(obsX, obsY); err != nil {
		panic(fmt.Errorf("world setup: %w", err))
	}

	rend, err := NewRenderer(tiles, art)
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.Void.R)/255.0,
		float32(Palette.Void.G)/255.0,
		float32(Palette.Void.B)/255.0,
		1.0,
	)

	cam := Camera{X: obsX, Y: obsY, Zoom: DefaultZoom}
	input := NewInput()
	showHUD := true

	lastCX := world.WorldToChunk(int(math.Floor(obsX)), m.ChunkSize(), m.TileWidth())
	lastCY := world.WorldToChunk(int(math.Floor(obsY)), m.ChunkSize(), m.TileHeight())

	frameMS := 0.0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		dx, dy := MoveDelta(window, dt)
		obsX += dx
		obsY += dy

		if input.JustPressed(window, glfw.KeyT) {
			obsX += TeleportJump
			cam.Snap(obsX, obsY)
			PlaySound(SoundWarp)
		}
		if input.JustPressed(window, glfw.KeyTab) {
			showHUD = !showHUD
		}
		UpdateCameraZoom(&cam, window, dt)

		if err := m.Update(obsX, obsY); err != nil {
			panic(fmt.Errorf("stream update: %w", err))
		}

		cx := world.WorldToChunk(int(math.Floor(obsX)), m.ChunkSize(), m.TileWidth())
		cy := world.WorldToChunk(int(math.Floor(obsY)), m.ChunkSize(), m.TileHeight())
		if cx != lastCX || cy != lastCY {
			lastCX, lastCY = cx, cy
			PlaySound(SoundCross)
		}

		rend.SyncChunks(m)
		cam.Follow(obsX, obsY, dt)

		rend.BeginFrame(cam, fbW, fbH)
		rend.DrawChunks(m, cam, fbW, fbH)
		rend.DrawMarker(obsX, obsY)

		frameMS = frameMS*0.9 + dt*1000*0.1
		if showHUD {
			legacy := level != nil && level.Overlaps(cx, cy, m.ChunkSize())
			RenderHUD(rend, m, cam, obsX, obsY, frameMS, legacy, fbW, fbH)
		}
		rend.FlushText(fbW, fbH)

		window.SwapBuffers()
	}
}
