package glhelpers

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LoadShaderFile reads a GLSL file whose stage is given by its extension.
func LoadShaderFile(path string) (ShaderType, string, error) {
	typ, ok := ShaderTypeFromExt(filepath.Ext(path))
	if !ok {
		return 0, "", errors.Errorf("load shader %q: unknown shader extension", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, "", errors.Wrapf(err, "load shader %q", path)
	}
	return typ, string(b), nil
}

// LoadShaderCode reads each file into the stage named by its extension.
// Two files for the same stage are an error.
func LoadShaderCode(paths ...string) (ShaderCode, error) {
	var code ShaderCode
	for _, path := range paths {
		typ, src, err := LoadShaderFile(path)
		if err != nil {
			return ShaderCode{}, err
		}
		if _, dup := code.Get(typ); dup {
			return ShaderCode{}, errors.Errorf("load shader %q: duplicate %s shader", path, typ)
		}
		code.Set(typ, src)
	}
	return code, nil
}

// LoadShaderDir reads every existing <base><ext> file in dir, e.g.
// "sprite.vert" and "sprite.frag" for base "sprite".
func LoadShaderDir(dir, base string) (ShaderCode, error) {
	var paths []string
	for _, t := range shaderTypes {
		path := filepath.Join(dir, base+t.Ext())
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return ShaderCode{}, errors.Wrapf(err, "load shader %q", path)
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return ShaderCode{}, errors.Wrapf(ErrNoShaders, "load shader dir %q base %q", dir, base)
	}
	return LoadShaderCode(paths...)
}
