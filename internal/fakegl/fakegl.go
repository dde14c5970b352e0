// Package fakegl is an in-memory stand-in for a graphics driver. It hands
// out handles, records every call and lets tests script compile, link and
// validate results.
package fakegl

import (
	"fmt"
	"strings"
)

// Enum values the fake answers queries for.
const (
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	ValidateStatus = 0x8B83
	InfoLogLength  = 0x8B84
)

// Shader is the state of a fake shader object.
type Shader struct {
	Type     uint32
	Source   string
	Compiled bool
	Deleted  bool
}

// Program is the state of a fake program object.
type Program struct {
	Attached []uint32
	Linked   bool
	Deleted  bool
}

// Buffer is the state of a fake buffer object.
type Buffer struct {
	Data    []byte
	Usage   uint32
	Deleted bool
}

// AttribPointer records one VertexAttribPointer call.
type AttribPointer struct {
	Index      uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     int
	Enabled    bool
}

// Driver records calls. The zero value is not usable; call New.
type Driver struct {
	// CompileErrors maps a marker substring to a compile log: a shader
	// whose source contains the marker fails with that log.
	CompileErrors map[string]string
	// LinkLog, when set, makes every link fail with this log.
	LinkLog string
	// ValidateLog, when set, makes every validation fail with this log.
	ValidateLog string
	// Attribs and Uniforms map names to locations; missing names give -1.
	Attribs  map[string]int32
	Uniforms map[string]int32
	// Errors is drained by GetError, one code per call.
	Errors []uint32
	// NoVertexArrays and ShaderTypes are reported through Restricted.
	NoVertexArrays bool
	ShaderTypes    map[uint32]bool

	Calls    []string
	Shaders  map[uint32]*Shader
	Programs map[uint32]*Program
	Buffers  map[uint32]*Buffer
	Pointers map[uint32]*AttribPointer

	BoundVertexArray uint32
	BoundBuffers     map[uint32]uint32

	next uint32
}

// New returns a driver with everything succeeding.
func New() *Driver {
	return &Driver{
		CompileErrors: make(map[string]string),
		Attribs:       make(map[string]int32),
		Uniforms:      make(map[string]int32),
		Shaders:       make(map[uint32]*Shader),
		Programs:      make(map[uint32]*Program),
		Buffers:       make(map[uint32]*Buffer),
		Pointers:      make(map[uint32]*AttribPointer),
		BoundBuffers:  make(map[uint32]uint32),
	}
}

func (d *Driver) record(format string, args ...interface{}) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Driver) handle() uint32 {
	d.next++
	return d.next
}

// Called reports whether a call starting with prefix was recorded.
func (d *Driver) Called(prefix string) bool {
	return d.Count(prefix) > 0
}

// Count returns how many recorded calls start with prefix.
func (d *Driver) Count(prefix string) int {
	n := 0
	for _, c := range d.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// LiveShaders returns the number of shaders not deleted.
func (d *Driver) LiveShaders() int {
	n := 0
	for _, s := range d.Shaders {
		if !s.Deleted {
			n++
		}
	}
	return n
}

func (d *Driver) CreateBuffer() uint32 {
	h := d.handle()
	d.Buffers[h] = &Buffer{}
	d.record("CreateBuffer() = %d", h)
	return h
}

func (d *Driver) NamedBufferData(buffer uint32, data []byte, usage uint32) {
	d.record("NamedBufferData(%d, %d, %#x)", buffer, len(data), usage)
	if b, ok := d.Buffers[buffer]; ok {
		b.Data = append([]byte(nil), data...)
		b.Usage = usage
	}
}

func (d *Driver) DeleteBuffer(buffer uint32) {
	d.record("DeleteBuffer(%d)", buffer)
	if b, ok := d.Buffers[buffer]; ok {
		b.Deleted = true
	}
}

func (d *Driver) BindBuffer(target, buffer uint32) {
	d.record("BindBuffer(%#x, %d)", target, buffer)
	d.BoundBuffers[target] = buffer
}

func (d *Driver) CreateVertexArray() uint32 {
	h := d.handle()
	d.record("CreateVertexArray() = %d", h)
	return h
}

func (d *Driver) BindVertexArray(vao uint32) {
	d.record("BindVertexArray(%d)", vao)
	d.BoundVertexArray = vao
}

func (d *Driver) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray(%d)", vao)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	d.record("VertexAttribPointer(%d, %d, %#x, %t, %d, %d)", index, size, xtype, normalized, stride, offset)
	d.Pointers[index] = &AttribPointer{
		Index:      index,
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	}
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray(%d)", index)
	if p, ok := d.Pointers[index]; ok {
		p.Enabled = true
	}
}

func (d *Driver) CreateShader(xtype uint32) uint32 {
	h := d.handle()
	d.Shaders[h] = &Shader{Type: xtype}
	d.record("CreateShader(%#x) = %d", xtype, h)
	return h
}

func (d *Driver) ShaderSource(shader uint32, src string) {
	d.record("ShaderSource(%d)", shader)
	if s, ok := d.Shaders[shader]; ok {
		s.Source = src
	}
}

func (d *Driver) CompileShader(shader uint32) {
	d.record("CompileShader(%d)", shader)
	s, ok := d.Shaders[shader]
	if !ok {
		return
	}
	s.Compiled = d.compileLog(s) == ""
}

func (d *Driver) compileLog(s *Shader) string {
	for marker, log := range d.CompileErrors {
		if strings.Contains(s.Source, marker) {
			return log
		}
	}
	return ""
}

func (d *Driver) GetShaderiv(shader, pname uint32) int32 {
	d.record("GetShaderiv(%d, %#x)", shader, pname)
	s, ok := d.Shaders[shader]
	if !ok {
		return 0
	}
	switch pname {
	case CompileStatus:
		if s.Compiled {
			return 1
		}
		return 0
	case InfoLogLength:
		if log := d.compileLog(s); log != "" {
			return int32(len(log) + 1)
		}
	}
	return 0
}

func (d *Driver) GetShaderInfoLog(shader uint32) string {
	d.record("GetShaderInfoLog(%d)", shader)
	if s, ok := d.Shaders[shader]; ok {
		return d.compileLog(s)
	}
	return ""
}

func (d *Driver) DeleteShader(shader uint32) {
	d.record("DeleteShader(%d)", shader)
	if s, ok := d.Shaders[shader]; ok {
		s.Deleted = true
	}
}

func (d *Driver) CreateProgram() uint32 {
	h := d.handle()
	d.Programs[h] = &Program{}
	d.record("CreateProgram() = %d", h)
	return h
}

func (d *Driver) AttachShader(program, shader uint32) {
	d.record("AttachShader(%d, %d)", program, shader)
	if p, ok := d.Programs[program]; ok {
		p.Attached = append(p.Attached, shader)
	}
}

func (d *Driver) DetachShader(program, shader uint32) {
	d.record("DetachShader(%d, %d)", program, shader)
	p, ok := d.Programs[program]
	if !ok {
		return
	}
	for i, s := range p.Attached {
		if s == shader {
			p.Attached = append(p.Attached[:i], p.Attached[i+1:]...)
			break
		}
	}
}

func (d *Driver) LinkProgram(program uint32) {
	d.record("LinkProgram(%d)", program)
	p, ok := d.Programs[program]
	if !ok {
		return
	}
	p.Linked = d.LinkLog == ""
	for _, s := range p.Attached {
		if sh, ok := d.Shaders[s]; !ok || !sh.Compiled {
			p.Linked = false
		}
	}
}

func (d *Driver) ValidateProgram(program uint32) {
	d.record("ValidateProgram(%d)", program)
}

func (d *Driver) GetProgramiv(program, pname uint32) int32 {
	d.record("GetProgramiv(%d, %#x)", program, pname)
	p, ok := d.Programs[program]
	if !ok {
		return 0
	}
	switch pname {
	case LinkStatus:
		if p.Linked {
			return 1
		}
	case ValidateStatus:
		if d.ValidateLog == "" {
			return 1
		}
	case InfoLogLength:
		return int32(len(d.programLog(p)) + 1)
	}
	return 0
}

func (d *Driver) programLog(p *Program) string {
	if !p.Linked {
		return d.LinkLog
	}
	return d.ValidateLog
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	d.record("GetProgramInfoLog(%d)", program)
	if p, ok := d.Programs[program]; ok {
		return d.programLog(p)
	}
	return ""
}

func (d *Driver) DeleteProgram(program uint32) {
	d.record("DeleteProgram(%d)", program)
	if p, ok := d.Programs[program]; ok {
		p.Deleted = true
	}
}

func (d *Driver) GetAttribLocation(program uint32, name string) int32 {
	d.record("GetAttribLocation(%d, %s)", program, name)
	if loc, ok := d.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	d.record("GetUniformLocation(%d, %s)", program, name)
	if loc, ok := d.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) GetError() uint32 {
	if len(d.Errors) == 0 {
		return 0
	}
	err := d.Errors[0]
	d.Errors = d.Errors[1:]
	return err
}

// Restricted wraps a Driver so it reports NoVertexArrays and ShaderTypes
// as its capabilities.
type Restricted struct {
	*Driver
}

func (r Restricted) SupportsShaderType(glType uint32) bool {
	return r.ShaderTypes[glType]
}

func (r Restricted) SupportsVertexArrays() bool {
	return !r.NoVertexArrays
}
