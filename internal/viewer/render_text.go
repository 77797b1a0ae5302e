package viewer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// textQuadCorners covers a glyph cell as two triangles, in cell units.
var textQuadCorners = [6][2]float32{
	{0, 0}, {1, 0}, {0, 1},
	{1, 0}, {1, 1}, {0, 1},
}

// InitFont uploads the synthesized glyph atlas and sets up the text
// rendering pipeline.
func (r *Renderer) InitFont() error {
	r.fontTex = newPixelTexture(FontAtlasW, FontAtlasH, buildFontAtlas())

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUAtlas = gl.GetUniformLocation(prog, gl.Str("uAtlas\x00"))
	gl.Uniform1i(r.textUAtlas, 1) // texture unit 1

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + tint(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	const stride = 8 * 4
	r.textCap = 512 * 6 * stride
	gl.BufferData(gl.ARRAY_BUFFER, r.textCap, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aTint
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// DrawChar queues one character as a textured quad in screen pixel
// space. The atlas folds lowercase into uppercase cells, so no folding
// happens here.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col RGB) {
	if ch < ' ' || ch > '~' {
		return
	}
	cell := int(ch) - 32
	du := float32(FontCellW) / float32(FontAtlasW)
	dv := float32(FontCellH) / float32(FontAtlasH)
	u := float32(cell%FontCols) * du
	v := float32(cell/FontCols) * dv
	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale
	tr := float32(col.R) / 255.0
	tg := float32(col.G) / 255.0
	tb := float32(col.B) / 255.0

	for _, c := range textQuadCorners {
		r.textBuf = append(r.textBuf,
			sx+c[0]*w, sy+c[1]*h,
			u+c[0]*du, v+c[1]*dv,
			tr, tg, tb, 1,
		)
	}
}

// DrawString queues a string at screen pixel position (sx, sy), advancing
// a fixed cell per character and resetting on newlines.
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	column, line := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			column = 0
			line++
			continue
		}
		px := float32(sx) + float32(column)*float32(FontCellW)*scale
		py := float32(sy) + float32(line)*float32(FontCellH)*scale
		r.DrawChar(ch, px, py, scale, col)
		column++
	}
}

// TextWidth returns the width in screen pixels of a string at given
// scale, counting its longest line.
func TextWidth(text string, scale float32) int {
	longest := 0
	for _, line := range strings.Split(text, "\n") {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}
	return int(float32(longest*FontCellW) * scale)
}

// FlushText draws all buffered text quads and clears the buffer. The VBO
// grows when a frame queues more text than any frame before it.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}

	gl.UseProgram(r.textProg)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	need := len(r.textBuf) * 4
	if need > r.textCap {
		gl.BufferData(gl.ARRAY_BUFFER, need, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
		r.textCap = need
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, need, gl.Ptr(r.textBuf))
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textBuf)/8))
	gl.Disable(gl.BLEND)

	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}
