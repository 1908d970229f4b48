package core

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := Error(EINVALID, "bad table %d", 3)
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "bad table 3", UserMessage(err))
	assert.Equal(t, "[123] invalid: bad table 3", err.Error())
}

func TestWrappedErrorsStayReachable(t *testing.T) {
	err := WrapError(fs.ErrNotExist, EMISSING, "cannot read %s", "x.pxbf")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "cannot read x.pxbf", UserMessage(err))
	err = WrapError(nil, EFORMAT, "truncated")
	assert.Equal(t, "[124] format error: truncated", err.Error())
	err = Error(EINTERNAL, "")
	assert.Equal(t, "[125] internal error", err.Error())
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "internal error", UserMessage(errors.New("x")))
}
