package glcore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	glhelpers "github.com/blindley/gl-helpers"
)

var _ glhelpers.Driver = (*Driver)(nil)

func TestTrimLog(t *testing.T) {
	assert.Equal(t, "0:1: error\n", trimLog([]byte("0:1: error\n\x00")))
	assert.Equal(t, "abc", trimLog([]byte("abc\x00\x00garbage")))
	assert.Equal(t, "no terminator", trimLog([]byte("no terminator")))
	assert.Equal(t, "", trimLog([]byte{0}))
}
