package viewer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"tilestream/internal/world"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// newPixelTexture uploads an RGBA image set up for nearest-filtered
// pixel art. Every texture in the viewer goes through here.
func newPixelTexture(w, h int, pix []uint8) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix),
	)
	return tex
}

type Renderer struct {
	tiles world.TileSet
	art   *TileArt

	// Chunk program.
	chunkProg uint32
	chunkVAO  uint32
	chunkVBO  uint32

	uChunkOrigin int32
	uChunkSize   int32
	uCamera      int32
	uZoom        int32
	uResolution  int32
	uTex         int32

	// Per-chunk textures, keyed like the streaming cache.
	chunkTex  map[world.ChunkKey]uint32
	markerTex uint32

	// Font/text rendering.
	fontTex    uint32
	textProg   uint32
	textVAO    uint32
	textVBO    uint32
	textURes   int32
	textUAtlas int32
	textBuf    []float32
	textCap    int // allocated VBO bytes

	// Reusable buffers to avoid per-frame heap allocations.
	chunkBuf []*world.Chunk
	placeBuf []world.TilePlacement
	loaded   map[world.ChunkKey]bool
}

func NewRenderer(tiles world.TileSet, art *TileArt) (*Renderer, error) {
	chunkProg, err := linkProgram(chunkVertSrc, chunkFragSrc)
	if err != nil {
		return nil, fmt.Errorf("chunk program: %w", err)
	}

	r := &Renderer{
		tiles:     tiles,
		art:       art,
		chunkProg: chunkProg,
		chunkTex:  make(map[world.ChunkKey]uint32),
		loaded:    make(map[world.ChunkKey]bool),
	}

	// Chunk VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var cVAO, cVBO uint32
	gl.GenVertexArrays(1, &cVAO)
	gl.GenBuffers(1, &cVBO)
	gl.BindVertexArray(cVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, cVBO)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.chunkVAO = cVAO
	r.chunkVBO = cVBO

	// Chunk uniforms.
	gl.UseProgram(chunkProg)
	r.uChunkOrigin = gl.GetUniformLocation(chunkProg, gl.Str("uChunkOrigin\x00"))
	r.uChunkSize = gl.GetUniformLocation(chunkProg, gl.Str("uChunkSize\x00"))
	r.uCamera = gl.GetUniformLocation(chunkProg, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(chunkProg, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(chunkProg, gl.Str("uResolution\x00"))
	r.uTex = gl.GetUniformLocation(chunkProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	r.markerTex = makeMarkerTexture()

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for k, tex := range r.chunkTex {
		gl.DeleteTextures(1, &tex)
		delete(r.chunkTex, k)
	}
	for _, id := range []uint32{r.markerTex, r.fontTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
	for _, id := range []uint32{r.chunkVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.chunkVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.chunkProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.chunkProg)
	gl.BindVertexArray(r.chunkVAO)

	gl.Uniform2f(r.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE0)
}
