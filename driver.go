package glhelpers

// Driver is the set of native graphics calls the helpers are built on.
// Handles are the driver's own opaque integers; the helpers never track
// them beyond a single call.
//
// Implementations must be used from the goroutine (OS thread) owning the
// current graphics context.
type Driver interface {
	CreateBuffer() uint32
	NamedBufferData(buffer uint32, data []byte, usage uint32)
	DeleteBuffer(buffer uint32)
	BindBuffer(target, buffer uint32)

	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	// GetShaderInfoLog returns the log without its NUL terminator.
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	// GetProgramInfoLog returns the log without its NUL terminator.
	GetProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32

	GetError() uint32
}

// Capabilities is optionally implemented by drivers for APIs that lack
// some of the objects the helpers create (GLES2, WebGL).
type Capabilities interface {
	SupportsShaderType(glType uint32) bool
	SupportsVertexArrays() bool
}

func supportsShaderType(d Driver, glType uint32) bool {
	if c, ok := d.(Capabilities); ok {
		return c.SupportsShaderType(glType)
	}
	return true
}

func supportsVertexArrays(d Driver) bool {
	if c, ok := d.(Capabilities); ok {
		return c.SupportsVertexArrays()
	}
	return true
}
