package viewer

import (
	"bytes"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Chunk vertex shader: VBO-based unit quad stretched to the chunk's
// pixel rectangle, camera and zoom applied in screen space.
const chunkVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos; // 0..1 quad vertex

uniform vec2 uChunkOrigin;
uniform vec2 uChunkSize;
uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec2 vUV;

void main() {
    vUV = aPos;
    vec2 worldPos = uChunkOrigin + aPos * uChunkSize;
    vec2 screenPos = (worldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = vec2(screenPos.x, -screenPos.y) / uResolution * 2.0 + vec2(-1.0, 1.0);
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

// Chunk fragment shader: empty cells carry zero alpha and are discarded
// so the void colour shows between legacy content and the level edge.
const chunkFragSrc = `#version 410 core

uniform sampler2D uTex;

in vec2 vUV;
out vec4 outColor;

void main() {
    vec4 t = texture(uTex, vUV);
    if (t.a < 0.01) discard;
    outColor = vec4(t.rgb, 1.0);
}
` + "\x00"

// Text vertex shader: glyph quads positioned in screen pixel space.
const textVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aTint;

uniform vec2 uResolution;

out vec2 vUV;
out vec4 vTint;

void main() {
    vec2 ndc = vec2(aPos.x, -aPos.y) / uResolution * 2.0 + vec2(-1.0, 1.0);
    gl_Position = vec4(ndc, 0.0, 1.0);
    vUV = aUV;
    vTint = aTint;
}
` + "\x00"

// Text fragment shader: the atlas is white on transparent, so only its
// alpha matters and the tint supplies the colour.
const textFragSrc = `#version 410 core

uniform sampler2D uAtlas;

in vec2 vUV;
in vec4 vTint;
out vec4 outColor;

void main() {
    float a = texture(uAtlas, vUV).a;
    if (a < 0.01) discard;
    outColor = vec4(vTint.rgb, a * vTint.a);
}
` + "\x00"

func compileShader(src string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var ok int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &msg[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", bytes.TrimRight(msg, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetProgramInfoLog(program, n, nil, &msg[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", bytes.TrimRight(msg, "\x00"))
	}
	return program, nil
}
