// Package glcore implements glhelpers.Driver on desktop OpenGL 4.5 core
// profile through go-gl. Buffers use direct state access.
package glcore

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Driver issues calls on the OpenGL context current on the calling thread.
type Driver struct {
	Version  string
	Renderer string
}

// Init loads the GL entry points. A context must be current on the calling
// OS thread.
func Init() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "could not initialise OpenGL context")
	}
	d := &Driver{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}
	logrus.WithFields(logrus.Fields{"version": d.Version, "renderer": d.Renderer}).Debug("OpenGL initialised")
	return d, nil
}

func (d *Driver) CreateBuffer() uint32 {
	var buffer uint32
	gl.CreateBuffers(1, &buffer)
	return buffer
}

func (d *Driver) NamedBufferData(buffer uint32, data []byte, usage uint32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.NamedBufferData(buffer, len(data), ptr, usage)
}

func (d *Driver) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *Driver) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (d *Driver) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Driver) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Driver) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Driver) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (d *Driver) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (d *Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *Driver) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	n := d.GetShaderiv(shader, gl.INFO_LOG_LENGTH)
	if n <= 1 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetShaderInfoLog(shader, n, nil, &buf[0])
	return trimLog(buf)
}

func (d *Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (d *Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Driver) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (d *Driver) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	n := d.GetProgramiv(program, gl.INFO_LOG_LENGTH)
	if n <= 1 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(program, n, nil, &buf[0])
	return trimLog(buf)
}

func (d *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Driver) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) GetError() uint32 {
	return gl.GetError()
}

// trimLog cuts an info log at its NUL terminator.
func trimLog(buf []byte) string {
	s := string(buf)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s
}
