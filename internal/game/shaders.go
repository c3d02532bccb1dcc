//go:build !android

package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Model vertex shader: static mesh transformed by a per-draw model matrix
// and a shared view-projection matrix.
const modelVertSrc = `#version 410 core

layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
    vec4 worldPos = uModel * vec4(aPos, 1.0);
    vWorldPos = worldPos.xyz;
    vNormal = normalize(mat3(uModel) * aNormal);
    gl_Position = uViewProj * worldPos;
}
` + "\x00"

// Model fragment shader: single directional light (the system's star) plus
// a flat ambient term, modulated by a flat tint colour.
const modelFragSrc = `#version 410 core

uniform vec3 uTint;
uniform vec3 uLightDir;
uniform float uAmbient;

in vec3 vNormal;
in vec3 vWorldPos;
out vec4 FragColor;

void main() {
    float diffuse = max(dot(normalize(vNormal), -normalize(uLightDir)), 0.0);
    float shade = uAmbient + (1.0 - uAmbient) * diffuse;
    FragColor = vec4(uTint * shade, 1.0);
}
` + "\x00"

// Billboard vertex shader: point sprites for ring particles and explosion
// flashes, sized in world units and projected like any other 3D point.
const billboardVertSrc = `#version 410 core

layout(location = 0) in vec3 aWorldPos;
layout(location = 1) in float aWorldRadius;
layout(location = 2) in vec4 aColor;

uniform mat4 uViewProj;
uniform float uViewportHeight;

out vec4 vColor;

void main() {
    gl_Position = uViewProj * vec4(aWorldPos, 1.0);
    float clipRadius = aWorldRadius / max(gl_Position.w, 0.001);
    gl_PointSize = max(1.0, clipRadius * uViewportHeight);
    vColor = aColor;
}
` + "\x00"

// Billboard fragment shader: soft circular falloff so point sprites read as
// spheres/flashes rather than squares.
const billboardFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0;
    if (dist > 1.0) discard;
    float falloff = 1.0 - dist * dist;
    FragColor = vec4(vColor.rgb, vColor.a * falloff);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
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

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
