// Package glhelpers provides small helpers around an OpenGL-family driver:
// buffer creation, single-buffer vertex array layout, and the shader program
// build pipeline (compile, attach, link, validate) with the driver's info
// logs turned into Go errors.
//
// Helpers issue driver calls on the calling goroutine. Like any GL code,
// they must run on the thread that owns the current context.
package glhelpers

import (
	"github.com/sirupsen/logrus"
)

// Context binds a Driver to the helper functions.
type Context struct {
	gl    Driver
	flags CreateFlags
	log   logrus.FieldLogger
}

// Option configures a Context
type Option func(*Context)

// WithLogger sets the logger used for build failures and Debug GL errors.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// NewContext makes new helper context that is entry point of this API
func NewContext(d Driver, flags CreateFlags, opts ...Option) (*Context, error) {
	if d == nil {
		return nil, ErrNoDriver
	}
	c := &Context{
		gl:    d,
		flags: flags,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Driver returns the driver the context issues calls on.
func (c *Context) Driver() Driver {
	return c.gl
}

// Flags returns the flags the context was created with.
func (c *Context) Flags() CreateFlags {
	return c.flags
}

func (c *Context) checkError(op string) {
	if c.flags&Debug == 0 {
		return
	}
	if err := c.gl.GetError(); err != glNO_ERROR {
		c.log.WithField("op", op).Warnf("GL error %08x", err)
	}
}

func (c *Context) dumpError(fields logrus.Fields, err error) error {
	c.log.WithFields(fields).Error(err)
	return err
}
