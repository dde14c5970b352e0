package glhelpers

const sizeofFloat32 = 4

// AttribPointer describes one float attribute inside an interleaved vertex.
type AttribPointer struct {
	Index  uint32
	Size   int32
	Offset int
}

// Layout is an interleaved float32 vertex format.
type Layout struct {
	Stride  int32
	Attribs []AttribPointer
}

// AttribLayout computes the layout of interleaved float32 attributes with
// the given component counts, in order. Attribute i gets index i.
func AttribLayout(components []int32) (Layout, error) {
	var total int32
	for _, comp := range components {
		if comp < 1 || comp > 4 {
			return Layout{}, ErrInvalidComponents
		}
		total += comp
	}
	layout := Layout{
		Stride:  total * sizeofFloat32,
		Attribs: make([]AttribPointer, len(components)),
	}
	offset := 0
	for i, comp := range components {
		layout.Attribs[i] = AttribPointer{
			Index:  uint32(i),
			Size:   comp,
			Offset: offset,
		}
		offset += int(comp) * sizeofFloat32
	}
	return layout, nil
}

// CreateSingleBufferVertexArray creates a vertex array reading interleaved
// float32 attributes from buffer. The vertex array and the buffer are left
// bound.
func (c *Context) CreateSingleBufferVertexArray(buffer uint32, components []int32) (uint32, error) {
	if !supportsVertexArrays(c.gl) {
		return 0, ErrUnsupported
	}
	layout, err := AttribLayout(components)
	if err != nil {
		return 0, err
	}

	vao := c.gl.CreateVertexArray()
	c.gl.BindVertexArray(vao)
	c.gl.BindBuffer(glARRAY_BUFFER, buffer)
	for _, a := range layout.Attribs {
		c.gl.VertexAttribPointer(a.Index, a.Size, glFLOAT, false, layout.Stride, a.Offset)
		c.gl.EnableVertexAttribArray(a.Index)
	}
	c.checkError("vertex array")
	return vao, nil
}

// DeleteVertexArray deletes a vertex array object.
func (c *Context) DeleteVertexArray(vao uint32) {
	c.gl.DeleteVertexArray(vao)
}
