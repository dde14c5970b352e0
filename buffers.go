package glhelpers

import (
	"unsafe"
)

// Bytes reinterprets data as its raw bytes without copying. The result
// aliases data and has length len(data)*sizeof(T).
func Bytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := len(data) * int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), size)
}

// CreateBuffer creates a buffer object and fills its store with data.
func (c *Context) CreateBuffer(data []byte, usage BufferUsage) (uint32, error) {
	if !usage.Valid() {
		return 0, ErrInvalidUsage
	}
	buffer := c.gl.CreateBuffer()
	if err := c.NamedBufferData(buffer, data, usage); err != nil {
		c.gl.DeleteBuffer(buffer)
		return 0, err
	}
	return buffer, nil
}

// NamedBufferData (re)allocates the store of buffer with a copy of data.
// Empty data allocates a zero-sized store.
func (c *Context) NamedBufferData(buffer uint32, data []byte, usage BufferUsage) error {
	if !usage.Valid() {
		return ErrInvalidUsage
	}
	c.gl.NamedBufferData(buffer, data, usage.GLEnum())
	c.checkError("buffer data")
	return nil
}

// DeleteBuffer deletes a buffer object.
func (c *Context) DeleteBuffer(buffer uint32) {
	c.gl.DeleteBuffer(buffer)
}

// CreateBufferOf creates a buffer holding the elements of data, sized
// len(data) times the element size.
func CreateBufferOf[T any](c *Context, data []T, usage BufferUsage) (uint32, error) {
	return c.CreateBuffer(Bytes(data), usage)
}

// NamedBufferDataOf is the typed form of Context.NamedBufferData.
func NamedBufferDataOf[T any](c *Context, buffer uint32, data []T, usage BufferUsage) error {
	return c.NamedBufferData(buffer, Bytes(data), usage)
}
