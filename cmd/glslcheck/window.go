package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	glhelpers "github.com/blindley/gl-helpers"
	"github.com/blindley/gl-helpers/glcore"
)

// newHeadlessContext opens an invisible 4.5 core window to get a context.
func newHeadlessContext(validate bool) (*glhelpers.Context, func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, errors.Wrap(err, "glfw init")
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 5)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(1, 1, "glslcheck", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, errors.Wrap(err, "create context")
	}
	window.MakeContextCurrent()
	cleanup := func() {
		window.Destroy()
		glfw.Terminate()
	}

	driver, err := glcore.Init()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	var flags glhelpers.CreateFlags
	if validate {
		flags |= glhelpers.ValidatePrograms
	}
	ctx, err := glhelpers.NewContext(driver, flags)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return ctx, cleanup, nil
}
