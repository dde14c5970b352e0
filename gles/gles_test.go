//go:build !js
// +build !js

package gles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	glhelpers "github.com/blindley/gl-helpers"
)

var (
	_ glhelpers.Driver       = (*Driver)(nil)
	_ glhelpers.Capabilities = (*Driver)(nil)
)

func TestCapabilities(t *testing.T) {
	d := New()
	assert.True(t, d.SupportsShaderType(glhelpers.VertexShader.GLEnum()))
	assert.True(t, d.SupportsShaderType(glhelpers.FragmentShader.GLEnum()))
	assert.False(t, d.SupportsShaderType(glhelpers.GeometryShader.GLEnum()))
	assert.False(t, d.SupportsShaderType(glhelpers.ComputeShader.GLEnum()))
	assert.False(t, d.SupportsVertexArrays())
}

func TestTrimLog(t *testing.T) {
	assert.Equal(t, "ERROR: 0:3\n", trimLog("ERROR: 0:3\n\x00"))
	assert.Equal(t, "", trimLog(""))
}
