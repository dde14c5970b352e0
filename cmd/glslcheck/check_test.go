package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glhelpers "github.com/blindley/gl-helpers"
	"github.com/blindley/gl-helpers/internal/fakegl"
)

func TestCheckAndReport(t *testing.T) {
	d := fakegl.New()
	d.CompileErrors["bad"] = "0:2(5): error: `x' undeclared\n"
	logger, _ := test.NewNullLogger()
	c, err := glhelpers.NewContext(d, 0, glhelpers.WithLogger(logger))
	require.NoError(t, err)

	var good, broken glhelpers.ShaderCode
	good.Set(glhelpers.VertexShader, "vs")
	good.Set(glhelpers.FragmentShader, "fs")
	broken.Set(glhelpers.FragmentShader, "bad")

	results := check(c, []program{{name: "sprite", code: good}, {name: "post", code: broken}})
	require.Len(t, results, 2)
	assert.NoError(t, results[0].err)
	assert.Error(t, results[1].err)
	assert.Equal(t, 1, failed(results))
	assert.Equal(t, 1, d.Count("DeleteProgram("))

	var out bytes.Buffer
	report(&out, results)
	assert.Equal(t, "sprite: ok\npost: FAIL\n    error in fragment shader : 0:2(5): error: `x' undeclared\n", out.String())
}

func TestProgramsFromFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quad.vert"), []byte("vs"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quad.frag"), []byte("fs"), 0o644))

	progs, err := programsFromFiles([]string{filepath.Join(dir, "quad.vert"), filepath.Join(dir, "quad.frag")})
	require.NoError(t, err)
	require.Len(t, progs, 1)
	assert.Equal(t, "quad", progs[0].name)
	assert.Equal(t, []glhelpers.ShaderType{glhelpers.VertexShader, glhelpers.FragmentShader}, progs[0].code.Stages())
}

func TestProgramsFromManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := "[program.a]\nvertex = \"a.vert\"\n[program.b]\ncompute = \"b.comp\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shaders.toml"), []byte(manifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.vert"), []byte("vs"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.comp"), []byte("cs"), 0o644))

	progs, err := programsFromManifest(filepath.Join(dir, "shaders.toml"), nil)
	require.NoError(t, err)
	require.Len(t, progs, 2)
	assert.Equal(t, "a", progs[0].name)
	assert.Equal(t, "b", progs[1].name)

	progs, err = programsFromManifest(filepath.Join(dir, "shaders.toml"), []string{"b"})
	require.NoError(t, err)
	require.Len(t, progs, 1)

	_, err = programsFromManifest(filepath.Join(dir, "shaders.toml"), []string{"zzz"})
	assert.Error(t, err)
}
