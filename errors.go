package glhelpers

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoDriver is returned by NewContext when no driver is given
	ErrNoDriver = errors.New("glhelpers: nil driver")
	// ErrInvalidUsage is returned for an unknown BufferUsage
	ErrInvalidUsage = errors.New("glhelpers: invalid buffer usage")
	// ErrInvalidComponents is returned for an attribute size outside 1..4
	ErrInvalidComponents = errors.New("glhelpers: attribute component count must be 1..4")
	// ErrInvalidName is returned for names the driver cannot receive as C strings
	ErrInvalidName = errors.New("glhelpers: name contains NUL byte")
	// ErrInvalidShaderType is returned for an unknown ShaderType
	ErrInvalidShaderType = errors.New("glhelpers: invalid shader type")
	// ErrNoShaders is returned when building a program without any stage
	ErrNoShaders = errors.New("glhelpers: no shader code to build")
	// ErrUnsupported is returned when the driver lacks the requested object
	ErrUnsupported = errors.New("glhelpers: not supported by driver")
)

// CompileError carries the driver log of a failed shader compilation.
type CompileError struct {
	Stage ShaderType
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("error in %s shader : %s", e.Stage, e.Log)
}

// LinkError carries the driver log of a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader program linking error: " + e.Log
}

// ValidateError carries the driver log of a failed program validation.
type ValidateError struct {
	Program uint32
	Log     string
}

func (e *ValidateError) Error() string {
	return fmt.Sprintf("shader program %d validation error: %s", e.Program, e.Log)
}

// LocationKind tells attribute lookups from uniform lookups.
type LocationKind int

const (
	// Attribute is a vertex input
	Attribute LocationKind = iota
	// Uniform is a uniform variable
	Uniform
)

func (k LocationKind) String() string {
	if k == Uniform {
		return "uniform"
	}
	return "attribute"
}

// LocationError is returned when the driver reports no location for a name.
type LocationError struct {
	Kind    LocationKind
	Program uint32
	Name    string
}

func (e *LocationError) Error() string {
	return fmt.Sprintf("could not find %s %s", e.Kind, e.Name)
}
