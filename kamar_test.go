package kamar_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/kamar"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := kamar.Errorf(kamar.ENOTFOUND, "no results for %q", "هواتف")

	assert.Equal(t, kamar.ENOTFOUND, kamar.ErrorCode(err))
	assert.Equal(t, "no results for \"هواتف\"", kamar.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, kamar.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, kamar.ErrorMessage(nil))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("search: %w", kamar.Errorf(kamar.EUNAVAILABLE, "HTTP 503"))

	assert.Equal(t, kamar.EUNAVAILABLE, kamar.ErrorCode(err))
	assert.Equal(t, "HTTP 503", kamar.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, kamar.EINTERNAL, kamar.ErrorCode(err))
	assert.Equal(t, "Internal error.", kamar.ErrorMessage(err))
}
