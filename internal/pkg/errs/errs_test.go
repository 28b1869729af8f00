//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicbook/internal/pkg/errs"
)

var errSentinel = errors.New("sentinel")

func TestMark(t *testing.T) {
	t.Run("marked error matches the sentinel with errors.Is", func(t *testing.T) {
		err := errs.Mark(errs.New("slot already held"), errSentinel)

		assert.True(t, errors.Is(err, errSentinel))
		assert.Equal(t, "slot already held", err.Error())
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("no rows"), errSentinel), "failed to load appointment")

		assert.True(t, errors.Is(err, errSentinel))
	})

	t.Run("cause stays matchable alongside the mark", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.Mark(cause, errSentinel)

		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, errSentinel))
	})

	t.Run("nil cause collapses to the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, errSentinel)

		require.Equal(t, errSentinel, err)
	})

	t.Run("verbose format keeps the cause's stack", func(t *testing.T) {
		err := errs.Mark(errs.New("boom"), errSentinel)

		rendered := fmt.Sprintf("%+v", err)
		assert.True(t, strings.Contains(rendered, "boom"))
		assert.True(t, strings.Contains(rendered, "errs_test.go"), "stack frames should survive marking")
	})
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("inner"), "outer")

	lines := errs.ExtractStackLines(err, 3)
	require.Len(t, lines, 3)
	assert.Equal(t, "outer: inner", lines[0])

	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
