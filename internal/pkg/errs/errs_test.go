//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentwheels/internal/pkg/errs"
)

func TestMarkVisibleToStdlibErrorsIs(t *testing.T) {
	sentinel := errs.New("sentinel")
	cause := errs.New("underlying detail")

	marked := errs.Mark(cause, sentinel)

	assert.True(t, errors.Is(marked, sentinel))
	assert.True(t, errors.Is(marked, cause))
	assert.Contains(t, marked.Error(), "underlying detail")
}

func TestMarkNilCauseReturnsMark(t *testing.T) {
	sentinel := errs.New("sentinel")
	assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
}

func TestMarkChainSurvivesWrap(t *testing.T) {
	sentinel := errs.New("sentinel")
	wrapped := errs.Wrap(errs.Mark(errs.New("detail"), sentinel), "outer context")

	assert.True(t, errors.Is(wrapped, sentinel))
}
