package viewer

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"

	"tilestream/internal/world"
)

// SyncChunks reconciles the texture cache with the manager's loaded set:
// chunks that streamed in are rasterized and uploaded, evicted chunks
// drop their textures. Chunk tile data never mutates, so each chunk is
// uploaded at most once in its cache life.
func (r *Renderer) SyncChunks(m *world.Manager) {
	r.chunkBuf = m.Chunks(r.chunkBuf)
	clear(r.loaded)
	for _, c := range r.chunkBuf {
		r.loaded[c.Key()] = true
	}
	for k, tex := range r.chunkTex {
		if !r.loaded[k] {
			gl.DeleteTextures(1, &tex)
			delete(r.chunkTex, k)
		}
	}
	for _, c := range r.chunkBuf {
		if _, ok := r.chunkTex[c.Key()]; !ok {
			r.chunkTex[c.Key()] = r.uploadChunkTexture(c, m.TileWidth(), m.TileHeight())
		}
	}
}

// uploadChunkTexture stamps every placement's art into one RGBA image
// and uploads it. Cells with no tile keep zero alpha; the fragment
// shader discards them so the void colour shows through.
func (r *Renderer) uploadChunkTexture(c *world.Chunk, tileW, tileH int) uint32 {
	w := c.Size() * tileW
	h := c.Size() * tileH
	pix := make([]uint8, w*h*4)

	baseX, baseY := c.Origin()
	r.placeBuf = c.AppendPlacements(r.placeBuf[:0])
	for _, pl := range r.placeBuf {
		info, ok := r.tiles[pl.ID]
		if !ok {
			continue
		}
		art := r.art.Pixels(info.Handle)
		if art == nil {
			continue
		}
		stampTile(pix, w, (pl.X-baseX)*tileW, (pl.Y-baseY)*tileH, tileW, tileH, art, info.W, info.H)
	}
	return newPixelTexture(w, h, pix)
}

// stampTile blits tile art into the chunk image at (dx,dy), scaled
// nearest-neighbour to the cell size. Transparent art pixels leave the
// cell untouched so decorations layer over ground.
func stampTile(pix []uint8, imgW, dx, dy, cellW, cellH int, art []uint8, artW, artH int) {
	for y := 0; y < cellH; y++ {
		sy := y * artH / cellH
		for x := 0; x < cellW; x++ {
			sx := x * artW / cellW
			si := (sy*artW + sx) * 4
			if art[si+3] == 0 {
				continue
			}
			di := ((dy+y)*imgW + dx + x) * 4
			pix[di+0] = art[si+0]
			pix[di+1] = art[si+1]
			pix[di+2] = art[si+2]
			pix[di+3] = art[si+3]
		}
	}
}

// DrawChunks renders every loaded chunk as one textured quad (assumes
// BeginFrame set up the chunk program).
func (r *Renderer) DrawChunks(m *world.Manager, cam Camera, fbW, fbH int) {
	tileW := m.TileWidth()
	tileH := m.TileHeight()

	gl.UseProgram(r.chunkProg)
	gl.BindVertexArray(r.chunkVAO)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform2f(r.uChunkSize, float32(m.ChunkSize()*tileW), float32(m.ChunkSize()*tileH))

	r.chunkBuf = m.Chunks(r.chunkBuf)
	for _, c := range r.chunkBuf {
		tex := r.chunkTex[c.Key()]
		if tex == 0 {
			continue
		}
		baseX, baseY := c.Origin()
		gl.Uniform2f(r.uChunkOrigin, float32(baseX*tileW), float32(baseY*tileH))
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
}

// DrawMarker draws the observer marker over the world (assumes chunk
// program; DrawChunks restores the chunk quad size next frame).
func (r *Renderer) DrawMarker(x, y float64) {
	const size = 14.0
	gl.Uniform2f(r.uChunkSize, size, size)
	gl.Uniform2f(r.uChunkOrigin, float32(x-size/2), float32(y-size/2))
	gl.BindTexture(gl.TEXTURE_2D, r.markerTex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// makeMarkerTexture draws the observer marker, a bordered diamond.
func makeMarkerTexture() uint32 {
	const s = 16
	pix := make([]uint8, s*s*4)
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			d := math.Abs(float64(x)-7.5) + math.Abs(float64(y)-7.5)
			if d > 7.5 {
				continue
			}
			col := Palette.Marker
			if d > 5.8 {
				col = RGB{R: 20, G: 20, B: 20}
			}
			i := (y*s + x) * 4
			pix[i+0] = col.R
			pix[i+1] = col.G
			pix[i+2] = col.B
			pix[i+3] = 255
		}
	}
	return newPixelTexture(s, s, pix)
}
