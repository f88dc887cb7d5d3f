package errors_test

import (
	"fmt"
	"testing"

	stderrors "errors"

	"github.com/nvup/nvup/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew_FormatsCodeAndMessage(t *testing.T) {
	err := errors.New(errors.ErrUnsupportedOS, "no supported package manager found")

	assert.Equal(t, "[UNSUPPORTED_OS] no supported package manager found", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWrap_PreservesWrappedError(t *testing.T) {
	cause := fmt.Errorf("exit status 1")
	err := errors.Wrap(cause, errors.ErrPkgInstall, "apt-get install failed")

	assert.Contains(t, err.Error(), "PKG_INSTALL")
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, stderrors.Is(err, cause))
}

func TestWrap_NilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrClone, "should not happen"))
}

func TestIs_MatchesByCode(t *testing.T) {
	a := errors.New(errors.ErrClone, "clone failed")
	b := errors.Newf(errors.ErrClone, "clone of %s failed", "lazy.nvim")
	other := errors.New(errors.ErrFileWrite, "write failed")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, other))
}

func TestIsErrorCode_ThroughWrappingChain(t *testing.T) {
	inner := errors.New(errors.ErrUnsupportedOS, "neither pacman nor apt found")
	outer := fmt.Errorf("bootstrap failed: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrUnsupportedOS))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrClone))
	assert.Equal(t, errors.ErrUnsupportedOS, errors.GetErrorCode(outer))
}

func TestGetErrorCode_PlainError(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrBackup, "rename failed").
		WithDetail("from", "/home/u/.config/nvim").
		WithDetail("to", "/home/u/.config/nvim-backup-20240101-120000")

	assert.Equal(t, "/home/u/.config/nvim", err.Details["from"])
	assert.Len(t, err.Details, 2)
}
