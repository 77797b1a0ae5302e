package viewer

import (
	"fmt"
	"math"

	"tilestream/internal/world"
)

// RenderHUD draws the status overlay using the font atlas.
func RenderHUD(r *Renderer, m *world.Manager, cam Camera, obsX, obsY float64, frameMS float64, legacy bool, fbW, fbH int) {
	s := float32(2.0)
	lineH := int(float32(FontCellH)*s) + 4

	cx := world.WorldToChunk(int(math.Floor(obsX)), m.ChunkSize(), m.TileWidth())
	cy := world.WorldToChunk(int(math.Floor(obsY)), m.ChunkSize(), m.TileHeight())

	posStr := fmt.Sprintf("POS %.0f,%.0f  CHUNK %d,%d  LOADED %d", obsX, obsY, cx, cy, m.ChunkCount())
	r.DrawString(posStr, 8, 8, s, Palette.Text)

	statStr := fmt.Sprintf("ZOOM %.2f  FRAME %.1f MS", cam.Zoom, frameMS)
	r.DrawString(statStr, 8, 8+lineH, s, Palette.Text)

	mode := "PROCEDURAL"
	col := Palette.Text
	if legacy {
		mode = "ISLAND"
		col = Palette.Marker
	}
	r.DrawString(mode, fbW-TextWidth(mode, s)-8, 8, s, col)

	help := "WASD MOVE  SHIFT SPRINT  E/R ZOOM  T TELEPORT  TAB HUD  ESC QUIT"
	hs := float32(1.5)
	r.DrawString(help, fbW/2-TextWidth(help, hs)/2, fbH-int(float32(FontCellH)*hs)-8, hs, Palette.TextDim)
}
