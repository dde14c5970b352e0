package glhelpers

// ShaderCode holds optional source text for each stage.
type ShaderCode struct {
	code [numShaderTypes]*string
}

// Set stores src for stage typ, replacing any previous source.
func (sc *ShaderCode) Set(typ ShaderType, src string) {
	if !typ.Valid() {
		return
	}
	sc.code[typ] = &src
}

// Get returns the source for typ and whether one is present.
func (sc *ShaderCode) Get(typ ShaderType) (string, bool) {
	if !typ.Valid() || sc.code[typ] == nil {
		return "", false
	}
	return *sc.code[typ], true
}

// Clear removes the source for typ.
func (sc *ShaderCode) Clear(typ ShaderType) {
	if typ.Valid() {
		sc.code[typ] = nil
	}
}

// Merge copies every stage present in other over sc.
func (sc *ShaderCode) Merge(other ShaderCode) {
	for _, t := range shaderTypes {
		if src, ok := other.Get(t); ok {
			sc.Set(t, src)
		}
	}
}

// Stages returns the stages with source, in build order.
func (sc *ShaderCode) Stages() []ShaderType {
	var stages []ShaderType
	for _, t := range shaderTypes {
		if sc.code[t] != nil {
			stages = append(stages, t)
		}
	}
	return stages
}

// Empty reports whether no stage has source.
func (sc *ShaderCode) Empty() bool {
	return len(sc.Stages()) == 0
}

// ProgramBuilder collects stage sources and builds them into a program.
type ProgramBuilder struct {
	code ShaderCode
}

// NewProgramBuilder returns an empty builder.
func NewProgramBuilder() *ProgramBuilder {
	return &ProgramBuilder{}
}

// Stage sets the source of stage typ.
func (b *ProgramBuilder) Stage(typ ShaderType, src string) *ProgramBuilder {
	b.code.Set(typ, src)
	return b
}

// Vertex sets the vertex shader source.
func (b *ProgramBuilder) Vertex(src string) *ProgramBuilder {
	return b.Stage(VertexShader, src)
}

// Fragment sets the fragment shader source.
func (b *ProgramBuilder) Fragment(src string) *ProgramBuilder {
	return b.Stage(FragmentShader, src)
}

// Geometry sets the geometry shader source.
func (b *ProgramBuilder) Geometry(src string) *ProgramBuilder {
	return b.Stage(GeometryShader, src)
}

// TessControl sets the tessellation control shader source.
func (b *ProgramBuilder) TessControl(src string) *ProgramBuilder {
	return b.Stage(TessControlShader, src)
}

// TessEval sets the tessellation evaluation shader source.
func (b *ProgramBuilder) TessEval(src string) *ProgramBuilder {
	return b.Stage(TessEvalShader, src)
}

// Compute sets the compute shader source.
func (b *ProgramBuilder) Compute(src string) *ProgramBuilder {
	return b.Stage(ComputeShader, src)
}

// Code merges every stage present in code into the builder.
func (b *ProgramBuilder) Code(code ShaderCode) *ProgramBuilder {
	b.code.Merge(code)
	return b
}

// ShaderCode returns a copy of the collected sources.
func (b *ProgramBuilder) ShaderCode() ShaderCode {
	return b.code
}

// Build compiles every present stage and links them into a program.
// The compiled shaders are always deleted, KeepShaders only applies to
// CreateProgram. If a stage fails to compile, the stages compiled before
// it are deleted.
func (b *ProgramBuilder) Build(c *Context) (uint32, error) {
	stages := b.code.Stages()
	if len(stages) == 0 {
		return 0, ErrNoShaders
	}
	shaders := make([]uint32, 0, len(stages))
	for _, t := range stages {
		src, _ := b.code.Get(t)
		shader, err := c.CompileShader(src, t)
		if err != nil {
			for _, s := range shaders {
				c.gl.DeleteShader(s)
			}
			return 0, err
		}
		shaders = append(shaders, shader)
	}
	return c.createProgram(shaders, true)
}
