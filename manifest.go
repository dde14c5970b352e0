package glhelpers

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ProgramFiles names the source file of each stage of one program. Paths
// are relative to the manifest directory unless absolute.
type ProgramFiles struct {
	Vertex      string `toml:"vertex"`
	Fragment    string `toml:"fragment"`
	TessControl string `toml:"tess_control"`
	TessEval    string `toml:"tess_eval"`
	Geometry    string `toml:"geometry"`
	Compute     string `toml:"compute"`
}

func (pf ProgramFiles) stage(t ShaderType) string {
	switch t {
	case VertexShader:
		return pf.Vertex
	case FragmentShader:
		return pf.Fragment
	case TessControlShader:
		return pf.TessControl
	case TessEvalShader:
		return pf.TessEval
	case GeometryShader:
		return pf.Geometry
	case ComputeShader:
		return pf.Compute
	}
	return ""
}

// Manifest lists the shader programs of an application:
//
//	[program.sprite]
//	vertex = "sprite.vert"
//	fragment = "sprite.frag"
type Manifest struct {
	Program map[string]ProgramFiles `toml:"program"`

	dir string
}

// LoadManifest reads a TOML manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load manifest %q", path)
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "load manifest %q", path)
	}
	m, err := ParseManifest(data, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "load manifest %q", path)
	}
	return m, nil
}

// ParseManifest decodes a TOML manifest whose relative paths resolve
// against baseDir.
func ParseManifest(data []byte, baseDir string) (*Manifest, error) {
	m := &Manifest{dir: baseDir}
	md, err := toml.Decode(string(data), m)
	if err != nil {
		return nil, errors.Wrap(err, "parse manifest")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("parse manifest: unknown key %q", undecoded[0].String())
	}
	for _, name := range m.Programs() {
		if len(m.Files(name)) == 0 {
			return nil, errors.Errorf("parse manifest: program %q has no shader files", name)
		}
	}
	return m, nil
}

// Programs returns the program names in sorted order.
func (m *Manifest) Programs() []string {
	names := make([]string, 0, len(m.Program))
	for name := range m.Program {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Files returns the resolved source paths of a program, in build order.
func (m *Manifest) Files(name string) []string {
	pf, ok := m.Program[name]
	if !ok {
		return nil
	}
	var files []string
	for _, t := range shaderTypes {
		if f := pf.stage(t); f != "" {
			files = append(files, m.resolve(f))
		}
	}
	return files
}

// Code loads the sources of the named program.
func (m *Manifest) Code(name string) (ShaderCode, error) {
	pf, ok := m.Program[name]
	if !ok {
		return ShaderCode{}, errors.Errorf("manifest: no program %q", name)
	}
	var code ShaderCode
	for _, t := range shaderTypes {
		f := pf.stage(t)
		if f == "" {
			continue
		}
		path := m.resolve(f)
		b, err := os.ReadFile(path)
		if err != nil {
			return ShaderCode{}, errors.Wrapf(err, "program %q: %s shader", name, t)
		}
		code.Set(t, string(b))
	}
	return code, nil
}

func (m *Manifest) resolve(f string) string {
	if filepath.IsAbs(f) || m.dir == "" {
		return filepath.Clean(f)
	}
	return filepath.Join(m.dir, f)
}
