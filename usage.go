package glhelpers

import (
	"strconv"
	"strings"
)

// BufferUsage is the access hint given when a buffer store is allocated.
type BufferUsage int

const (
	// StreamDraw data is set once and drawn a few times
	StreamDraw BufferUsage = iota
	// StreamRead data is read back a few times
	StreamRead
	// StreamCopy data is copied between GL objects a few times
	StreamCopy
	// StaticDraw data is set once and drawn many times
	StaticDraw
	// StaticRead data is read back many times
	StaticRead
	// StaticCopy data is copied many times
	StaticCopy
	// DynamicDraw data is modified repeatedly and drawn many times
	DynamicDraw
	// DynamicRead data is modified repeatedly and read back many times
	DynamicRead
	// DynamicCopy data is modified repeatedly and copied many times
	DynamicCopy
)

var usageEnums = [...]uint32{
	StreamDraw:  glSTREAM_DRAW,
	StreamRead:  glSTREAM_READ,
	StreamCopy:  glSTREAM_COPY,
	StaticDraw:  glSTATIC_DRAW,
	StaticRead:  glSTATIC_READ,
	StaticCopy:  glSTATIC_COPY,
	DynamicDraw: glDYNAMIC_DRAW,
	DynamicRead: glDYNAMIC_READ,
	DynamicCopy: glDYNAMIC_COPY,
}

var usageNames = [...]string{
	StreamDraw:  "StreamDraw",
	StreamRead:  "StreamRead",
	StreamCopy:  "StreamCopy",
	StaticDraw:  "StaticDraw",
	StaticRead:  "StaticRead",
	StaticCopy:  "StaticCopy",
	DynamicDraw: "DynamicDraw",
	DynamicRead: "DynamicRead",
	DynamicCopy: "DynamicCopy",
}

// Valid reports whether u is one of the declared usages.
func (u BufferUsage) Valid() bool {
	return u >= StreamDraw && u <= DynamicCopy
}

// GLEnum returns the driver constant for u, or 0 when u is invalid.
func (u BufferUsage) GLEnum() uint32 {
	if !u.Valid() {
		return 0
	}
	return usageEnums[u]
}

func (u BufferUsage) String() string {
	if !u.Valid() {
		return "BufferUsage(" + strconv.Itoa(int(u)) + ")"
	}
	return usageNames[u]
}

// ParseBufferUsage accepts "StaticDraw", "static_draw", "static-draw" and
// "STATIC_DRAW" spellings.
func ParseBufferUsage(s string) (BufferUsage, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
	for i, name := range usageNames {
		if strings.ToLower(name) == key {
			return BufferUsage(i), nil
		}
	}
	return 0, ErrInvalidUsage
}

// UnmarshalText lets usages be read from TOML documents and flags.
func (u *BufferUsage) UnmarshalText(text []byte) error {
	v, err := ParseBufferUsage(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (u BufferUsage) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, ErrInvalidUsage
	}
	return []byte(usageNames[u]), nil
}
