//go:build !js
// +build !js

// Package gles implements glhelpers.Driver on the OpenGL ES 2 class API of
// github.com/goxjs/gl. That API has no vertex array objects and only
// vertex and fragment stages, which the driver reports as capabilities.
package gles

import (
	"github.com/goxjs/gl"
)

// Driver issues calls through goxjs/gl on the current context.
type Driver struct{}

// New returns a driver. The goxjs/gl context must already be current,
// e.g. through glfw.Init(gl.ContextWatcher) and MakeContextCurrent.
func New() *Driver {
	return &Driver{}
}

func (d *Driver) SupportsShaderType(glType uint32) bool {
	t := gl.Enum(glType)
	return t == gl.VERTEX_SHADER || t == gl.FRAGMENT_SHADER
}

func (d *Driver) SupportsVertexArrays() bool {
	return false
}

func (d *Driver) CreateBuffer() uint32 {
	return gl.CreateBuffer().Value
}

// NamedBufferData has no direct state access equivalent here; the buffer
// is bound to ARRAY_BUFFER for the upload and unbound afterwards.
func (d *Driver) NamedBufferData(buffer uint32, data []byte, usage uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{Value: buffer})
	if len(data) == 0 {
		gl.BufferInit(gl.ARRAY_BUFFER, 0, gl.Enum(usage))
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, data, gl.Enum(usage))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{})
}

func (d *Driver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffer(gl.Buffer{Value: buffer})
}

func (d *Driver) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(gl.Enum(target), gl.Buffer{Value: buffer})
}

func (d *Driver) CreateVertexArray() uint32 {
	return 0
}

func (d *Driver) BindVertexArray(vao uint32) {}

func (d *Driver) DeleteVertexArray(vao uint32) {}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(gl.Attrib{Value: uint(index)}, int(size), gl.Enum(xtype), normalized, int(stride), offset)
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(gl.Attrib{Value: uint(index)})
}

func (d *Driver) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(gl.Enum(xtype)).Value
}

func (d *Driver) ShaderSource(shader uint32, src string) {
	gl.ShaderSource(gl.Shader{Value: shader}, src)
}

func (d *Driver) CompileShader(shader uint32) {
	gl.CompileShader(gl.Shader{Value: shader})
}

func (d *Driver) GetShaderiv(shader, pname uint32) int32 {
	return int32(gl.GetShaderi(gl.Shader{Value: shader}, gl.Enum(pname)))
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	return trimLog(gl.GetShaderInfoLog(gl.Shader{Value: shader}))
}

func (d *Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(gl.Shader{Value: shader})
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram().Value
}

func (d *Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(gl.Program{Value: program}, gl.Shader{Value: shader})
}

func (d *Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(gl.Program{Value: program}, gl.Shader{Value: shader})
}

func (d *Driver) LinkProgram(program uint32) {
	gl.LinkProgram(gl.Program{Value: program})
}

func (d *Driver) ValidateProgram(program uint32) {
	gl.ValidateProgram(gl.Program{Value: program})
}

func (d *Driver) GetProgramiv(program, pname uint32) int32 {
	return int32(gl.GetProgrami(gl.Program{Value: program}, gl.Enum(pname)))
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	return trimLog(gl.GetProgramInfoLog(gl.Program{Value: program}))
}

func (d *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(gl.Program{Value: program})
}

func (d *Driver) GetAttribLocation(program uint32, name string) int32 {
	return int32(gl.GetAttribLocation(gl.Program{Value: program}, name).Value)
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(gl.Program{Value: program}, name).Value
}

func (d *Driver) GetError() uint32 {
	return uint32(gl.GetError())
}
