package glhelpers

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blindley/gl-helpers/internal/fakegl"
)

func newTestContext(t *testing.T, flags CreateFlags) (*Context, *fakegl.Driver, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	d := fakegl.New()
	c, err := NewContext(d, flags, WithLogger(logger))
	require.NoError(t, err)
	return c, d, hook
}

func TestShaderTypes(t *testing.T) {
	assert.Equal(t, []ShaderType{
		VertexShader, FragmentShader, TessControlShader, TessEvalShader, GeometryShader, ComputeShader,
	}, ShaderTypes())

	names := []string{"vertex", "fragment", "tess control", "tess eval", "geometry", "compute"}
	enums := []uint32{0x8B31, 0x8B30, 0x8E88, 0x8E87, 0x8DD9, 0x91B9}
	for i, typ := range ShaderTypes() {
		assert.Equal(t, names[i], typ.String())
		assert.Equal(t, enums[i], typ.GLEnum())
		back, ok := ShaderTypeFromExt(typ.Ext())
		assert.True(t, ok)
		assert.Equal(t, typ, back)
	}

	typ, ok := ShaderTypeFromExt("FRAG")
	assert.True(t, ok)
	assert.Equal(t, FragmentShader, typ)
	_, ok = ShaderTypeFromExt(".glsl")
	assert.False(t, ok)
	assert.Equal(t, uint32(0), ShaderType(17).GLEnum())
}

func TestCompileShader(t *testing.T) {
	c, d, hook := newTestContext(t, 0)

	shader, err := c.CompileShader("void main() {}", VertexShader)
	require.NoError(t, err)
	require.Contains(t, d.Shaders, shader)
	assert.Equal(t, uint32(glVERTEX_SHADER), d.Shaders[shader].Type)
	assert.Equal(t, "void main() {}", d.Shaders[shader].Source)
	assert.False(t, d.Shaders[shader].Deleted)
	assert.Empty(t, hook.AllEntries())
}

func TestCompileShaderError(t *testing.T) {
	c, d, hook := newTestContext(t, 0)
	d.CompileErrors["BROKEN"] = "0:1(1): error: syntax error"

	shader, err := c.CompileShader("BROKEN", FragmentShader)
	assert.Zero(t, shader)
	var cerr *CompileError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, FragmentShader, cerr.Stage)
	assert.Equal(t, "0:1(1): error: syntax error", cerr.Log)
	assert.EqualError(t, err, "error in fragment shader : 0:1(1): error: syntax error")
	assert.Equal(t, 0, d.LiveShaders())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "fragment", entry.Data["stage"])
	assert.Equal(t, "compile", entry.Data["op"])
}

func TestCompileShaderUnsupported(t *testing.T) {
	d := fakegl.New()
	d.ShaderTypes = map[uint32]bool{glVERTEX_SHADER: true, glFRAGMENT_SHADER: true}
	c, err := NewContext(fakegl.Restricted{Driver: d}, 0)
	require.NoError(t, err)

	_, err = c.CompileShader("", GeometryShader)
	assert.ErrorIs(t, err, ErrUnsupported)
	_, err = c.CompileShader("", VertexShader)
	assert.NoError(t, err)
	_, err = c.CompileShader("", ShaderType(-1))
	assert.ErrorIs(t, err, ErrInvalidShaderType)
}

func TestCreateProgram(t *testing.T) {
	c, d, _ := newTestContext(t, 0)
	vs, err := c.CompileShader("vs", VertexShader)
	require.NoError(t, err)
	fs, err := c.CompileShader("fs", FragmentShader)
	require.NoError(t, err)

	program, err := c.CreateProgram([]uint32{vs, fs})
	require.NoError(t, err)
	require.Contains(t, d.Programs, program)
	assert.True(t, d.Programs[program].Linked)
	assert.Empty(t, d.Programs[program].Attached)
	assert.Equal(t, 0, d.LiveShaders())
	assert.False(t, d.Called("ValidateProgram"))
}

func TestCreateProgramKeepShaders(t *testing.T) {
	c, d, _ := newTestContext(t, KeepShaders)
	vs, _ := c.CompileShader("vs", VertexShader)
	_, err := c.CreateProgram([]uint32{vs})
	require.NoError(t, err)
	assert.Equal(t, 1, d.LiveShaders())
	assert.True(t, d.Called("DetachShader("))
}

func TestCreateProgramLinkError(t *testing.T) {
	c, d, hook := newTestContext(t, 0)
	d.LinkLog = "error: no main in vertex shader"
	vs, _ := c.CompileShader("vs", VertexShader)

	program, err := c.CreateProgram([]uint32{vs})
	assert.Zero(t, program)
	var lerr *LinkError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "error: no main in vertex shader", lerr.Log)
	assert.EqualError(t, err, "shader program linking error: error: no main in vertex shader")
	assert.Equal(t, 0, d.LiveShaders())
	assert.Equal(t, 1, d.Count("DeleteProgram("))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "link", hook.LastEntry().Data["op"])
}

func TestCreateProgramValidate(t *testing.T) {
	c, d, _ := newTestContext(t, ValidatePrograms)
	vs, _ := c.CompileShader("vs", VertexShader)
	program, err := c.CreateProgram([]uint32{vs})
	require.NoError(t, err)
	assert.True(t, d.Called("ValidateProgram("))
	assert.False(t, d.Programs[program].Deleted)

	d.ValidateLog = "sampler type mismatch"
	vs, _ = c.CompileShader("vs", VertexShader)
	program, err = c.CreateProgram([]uint32{vs})
	assert.Zero(t, program)
	var verr *ValidateError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sampler type mismatch", verr.Log)
}

func TestValidateProgramKeepsProgram(t *testing.T) {
	c, d, _ := newTestContext(t, 0)
	program, err := c.CreateProgram(nil)
	require.NoError(t, err)

	d.ValidateLog = "bad state"
	err = c.ValidateProgram(program)
	assert.EqualError(t, err, "shader program 1 validation error: bad state")
	assert.False(t, d.Programs[program].Deleted)
}

func TestLocations(t *testing.T) {
	c, d, _ := newTestContext(t, 0)
	d.Attribs["position"] = 0
	d.Attribs["normal"] = 2
	d.Uniforms["mvp"] = 5

	loc, err := c.AttribLocation(1, "normal")
	require.NoError(t, err)
	assert.Equal(t, int32(2), loc)
	loc, err = c.UniformLocation(1, "mvp")
	require.NoError(t, err)
	assert.Equal(t, int32(5), loc)

	loc, err = c.AttribLocation(1, "color")
	assert.Equal(t, int32(-1), loc)
	assert.EqualError(t, err, "could not find attribute color")
	var lerr *LocationError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, Attribute, lerr.Kind)

	_, err = c.UniformLocation(1, "time")
	assert.EqualError(t, err, "could not find uniform time")

	_, err = c.UniformLocation(1, "bad\x00name")
	assert.ErrorIs(t, err, ErrInvalidName)
	_, err = c.AttribLocation(1, "bad\x00name")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, 0, d.Count("GetUniformLocation(1, bad"))
}
