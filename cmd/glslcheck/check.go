package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	glhelpers "github.com/blindley/gl-helpers"
)

type program struct {
	name string
	code glhelpers.ShaderCode
}

type result struct {
	name string
	err  error
}

func programsFromFiles(paths []string) ([]program, error) {
	code, err := glhelpers.LoadShaderCode(paths...)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(paths[0])
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return []program{{name: name, code: code}}, nil
}

func programsFromManifest(path string, names []string) ([]program, error) {
	m, err := glhelpers.LoadManifest(path)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		names = m.Programs()
	}
	progs := make([]program, 0, len(names))
	for _, name := range names {
		code, err := m.Code(name)
		if err != nil {
			return nil, err
		}
		progs = append(progs, program{name: name, code: code})
	}
	return progs, nil
}

// check builds every program and deletes the ones that succeed.
func check(c *glhelpers.Context, progs []program) []result {
	results := make([]result, 0, len(progs))
	for _, p := range progs {
		handle, err := glhelpers.NewProgramBuilder().Code(p.code).Build(c)
		if err == nil {
			c.DeleteProgram(handle)
		}
		results = append(results, result{name: p.name, err: err})
	}
	return results
}

func report(w io.Writer, results []result) {
	for _, r := range results {
		if r.err == nil {
			fmt.Fprintf(w, "%s: ok\n", r.name)
			continue
		}
		fmt.Fprintf(w, "%s: FAIL\n", r.name)
		for _, line := range strings.Split(strings.TrimRight(r.err.Error(), "\n"), "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

func failed(results []result) int {
	n := 0
	for _, r := range results {
		if r.err != nil {
			n++
		}
	}
	return n
}
