package glhelpers

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// ShaderType is a programmable pipeline stage.
type ShaderType int

const (
	// VertexShader stage
	VertexShader ShaderType = iota
	// FragmentShader stage
	FragmentShader
	// TessControlShader stage
	TessControlShader
	// TessEvalShader stage
	TessEvalShader
	// GeometryShader stage
	GeometryShader
	// ComputeShader stage
	ComputeShader

	numShaderTypes = iota
)

var shaderTypes = [numShaderTypes]ShaderType{
	VertexShader, FragmentShader, TessControlShader, TessEvalShader, GeometryShader, ComputeShader,
}

var shaderInfo = [numShaderTypes]struct {
	glType uint32
	name   string
	ext    string
}{
	VertexShader:      {glVERTEX_SHADER, "vertex", ".vert"},
	FragmentShader:    {glFRAGMENT_SHADER, "fragment", ".frag"},
	TessControlShader: {glTESS_CONTROL_SHADER, "tess control", ".tesc"},
	TessEvalShader:    {glTESS_EVALUATION_SHADER, "tess eval", ".tese"},
	GeometryShader:    {glGEOMETRY_SHADER, "geometry", ".geom"},
	ComputeShader:     {glCOMPUTE_SHADER, "compute", ".comp"},
}

// ShaderTypes returns every stage in the order programs are built.
func ShaderTypes() []ShaderType {
	types := shaderTypes
	return types[:]
}

// Valid reports whether t is a known stage.
func (t ShaderType) Valid() bool {
	return t >= 0 && t < numShaderTypes
}

// GLEnum returns the driver constant for t, or 0 when t is invalid.
func (t ShaderType) GLEnum() uint32 {
	if !t.Valid() {
		return 0
	}
	return shaderInfo[t].glType
}

func (t ShaderType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return shaderInfo[t].name
}

// Ext returns the conventional GLSL file extension of t, dot included.
func (t ShaderType) Ext() string {
	if !t.Valid() {
		return ""
	}
	return shaderInfo[t].ext
}

// ShaderTypeFromExt maps a file extension (".vert", "frag", ...) to a stage.
func ShaderTypeFromExt(ext string) (ShaderType, bool) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	ext = strings.ToLower(ext)
	for _, t := range shaderTypes {
		if shaderInfo[t].ext == ext {
			return t, true
		}
	}
	return 0, false
}

// CompileShader compiles src as a shader of the given stage. On failure
// the shader is deleted and a *CompileError holding the driver log is
// returned.
func (c *Context) CompileShader(src string, typ ShaderType) (uint32, error) {
	if !typ.Valid() {
		return 0, ErrInvalidShaderType
	}
	if !supportsShaderType(c.gl, typ.GLEnum()) {
		return 0, ErrUnsupported
	}

	shader := c.gl.CreateShader(typ.GLEnum())
	c.gl.ShaderSource(shader, src)
	c.gl.CompileShader(shader)

	if c.gl.GetShaderiv(shader, glCOMPILE_STATUS) == glFALSE {
		err := &CompileError{Stage: typ, Log: c.gl.GetShaderInfoLog(shader)}
		c.gl.DeleteShader(shader)
		return 0, c.dumpError(logrus.Fields{"op": "compile", "stage": typ.String()}, err)
	}
	c.checkError("compile " + typ.String())
	return shader, nil
}

// CreateProgram links shaders into a new program. The shaders are detached
// after linking and, unless the context has KeepShaders, deleted whether
// the link succeeds or not. On failure the program is deleted and a
// *LinkError holding the driver log is returned.
func (c *Context) CreateProgram(shaders []uint32) (uint32, error) {
	return c.createProgram(shaders, c.flags&KeepShaders == 0)
}

func (c *Context) createProgram(shaders []uint32, deleteShaders bool) (uint32, error) {
	program := c.gl.CreateProgram()
	for _, shader := range shaders {
		c.gl.AttachShader(program, shader)
	}
	c.gl.LinkProgram(program)

	for _, shader := range shaders {
		c.gl.DetachShader(program, shader)
		if deleteShaders {
			c.gl.DeleteShader(shader)
		}
	}

	if c.gl.GetProgramiv(program, glLINK_STATUS) == glFALSE {
		err := &LinkError{Log: c.gl.GetProgramInfoLog(program)}
		c.gl.DeleteProgram(program)
		return 0, c.dumpError(logrus.Fields{"op": "link"}, err)
	}
	c.checkError("link")

	if c.flags&ValidatePrograms != 0 {
		if err := c.ValidateProgram(program); err != nil {
			c.gl.DeleteProgram(program)
			return 0, err
		}
	}
	return program, nil
}

// ValidateProgram checks whether program can execute in the current GL
// state. A failing program is left alive.
func (c *Context) ValidateProgram(program uint32) error {
	c.gl.ValidateProgram(program)
	if c.gl.GetProgramiv(program, glVALIDATE_STATUS) == glFALSE {
		err := &ValidateError{Program: program, Log: c.gl.GetProgramInfoLog(program)}
		return c.dumpError(logrus.Fields{"op": "validate", "program": program}, err)
	}
	return nil
}

// DeleteShader deletes a shader object.
func (c *Context) DeleteShader(shader uint32) {
	c.gl.DeleteShader(shader)
}

// DeleteProgram deletes a program object.
func (c *Context) DeleteProgram(program uint32) {
	c.gl.DeleteProgram(program)
}

// AttribLocation returns the location of the named vertex attribute.
func (c *Context) AttribLocation(program uint32, name string) (int32, error) {
	if strings.IndexByte(name, 0) >= 0 {
		return -1, ErrInvalidName
	}
	loc := c.gl.GetAttribLocation(program, name)
	if loc == -1 {
		return -1, &LocationError{Kind: Attribute, Program: program, Name: name}
	}
	return loc, nil
}

// UniformLocation returns the location of the named uniform.
func (c *Context) UniformLocation(program uint32, name string) (int32, error) {
	if strings.IndexByte(name, 0) >= 0 {
		return -1, ErrInvalidName
	}
	loc := c.gl.GetUniformLocation(program, name)
	if loc == -1 {
		return -1, &LocationError{Kind: Uniform, Program: program, Name: name}
	}
	return loc, nil
}
