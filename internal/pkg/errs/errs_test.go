//go:build unit

package errs_test

import (
	"testing"

	"booking-holds/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("message is prefixed", func(t *testing.T) {
		err := errs.Wrap(errs.New("inner"), "outer")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outer")
		assert.Contains(t, err.Error(), "inner")
	})
}

func TestMark(t *testing.T) {
	sentinel := errs.New("sentinel")

	t.Run("nil cause yields the mark itself", func(t *testing.T) {
		assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
	})

	t.Run("marked error matches the sentinel", func(t *testing.T) {
		err := errs.Mark(errs.New("cause"), sentinel)
		assert.True(t, cr.Is(err, sentinel))
	})
}

func TestExtractStackLines(t *testing.T) {
	t.Run("nil error yields nil", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 10))
	})

	t.Run("first line carries the message", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.New("boom"), 0)
		require.NotEmpty(t, lines)
		assert.Contains(t, lines[0], "boom")
	})

	t.Run("output is capped at maxLines", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.New("boom"), 3)
		assert.LessOrEqual(t, len(lines), 3)
	})
}
