package dochub_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/dochub"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := dochub.Errorf(dochub.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, dochub.ENOTFOUND, dochub.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", dochub.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", dochub.Errorf(dochub.EINVALID, "bad color"))

	assert.Equal(t, dochub.EINVALID, dochub.ErrorCode(err))
	assert.Equal(t, "bad color", dochub.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, dochub.EINTERNAL, dochub.ErrorCode(err))
	assert.Equal(t, "Internal error", dochub.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, dochub.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, dochub.ErrorMessage(nil))
}
