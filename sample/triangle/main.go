//go:build !js
// +build !js

package main

import (
	"log"

	"github.com/goxjs/gl"
	"github.com/goxjs/glfw"
	"github.com/sirupsen/logrus"

	glhelpers "github.com/blindley/gl-helpers"
	"github.com/blindley/gl-helpers/gles"
)

var wireframe bool

func key(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	} else if key == glfw.KeySpace && action == glfw.Press {
		wireframe = !wireframe
	}
}

var vertexShader = `
#version 100
attribute vec2 position;
attribute vec3 color;
varying vec3 fcolor;
void main(void) {
	fcolor = color;
	gl_Position = vec4(position, 0.0, 1.0);
}`

var fragmentShader = `
#version 100
precision mediump float;
varying vec3 fcolor;
void main(void) {
	gl_FragColor = vec4(fcolor, 1.0);
}`

// x, y, r, g, b
var vertexes = []float32{
	-0.6, -0.5, 1, 0, 0,
	0.6, -0.5, 0, 1, 0,
	0.0, 0.6, 0, 0, 1,
}

func main() {
	err := glfw.Init(gl.ContextWatcher)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := glfw.CreateWindow(640, 480, "gl-helpers", nil, nil)
	if err != nil {
		panic(err)
	}
	window.SetKeyCallback(key)
	window.MakeContextCurrent()

	logrus.SetLevel(logrus.DebugLevel)
	driver := gles.New()
	ctx, err := glhelpers.NewContext(driver, glhelpers.Debug|glhelpers.ValidatePrograms)
	if err != nil {
		panic(err)
	}

	program, err := glhelpers.NewProgramBuilder().
		Vertex(vertexShader).
		Fragment(fragmentShader).
		Build(ctx)
	if err != nil {
		log.Fatalln(err)
	}
	defer ctx.DeleteProgram(program)

	buffer, err := glhelpers.CreateBufferOf(ctx, vertexes, glhelpers.StaticDraw)
	if err != nil {
		log.Fatalln(err)
	}
	defer ctx.DeleteBuffer(buffer)

	// GLES2 has no vertex array objects; point the attributes by location
	layout, err := glhelpers.AttribLayout([]int32{2, 3})
	if err != nil {
		log.Fatalln(err)
	}
	var locs [2]int32
	for i, name := range []string{"position", "color"} {
		locs[i], err = ctx.AttribLocation(program, name)
		if err != nil {
			log.Fatalln(err)
		}
	}

	glfw.SwapInterval(1)

	for !window.ShouldClose() {
		fbWidth, fbHeight := window.GetFramebufferSize()
		gl.Viewport(0, 0, fbWidth, fbHeight)
		gl.ClearColor(0.3, 0.3, 0.32, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(gl.Program{Value: program})
		driver.BindBuffer(uint32(gl.ARRAY_BUFFER), buffer)
		for i, a := range layout.Attribs {
			loc := uint32(locs[i])
			driver.VertexAttribPointer(loc, a.Size, uint32(gl.FLOAT), false, layout.Stride, a.Offset)
			driver.EnableVertexAttribArray(loc)
		}
		if wireframe {
			gl.DrawArrays(gl.LINE_LOOP, 0, 3)
		} else {
			gl.DrawArrays(gl.TRIANGLES, 0, 3)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}
