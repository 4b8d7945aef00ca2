package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", Wrap(CodeDataNotFound, "data file not found", errors.New("enoent")))
	require.Equal(t, CodeDataNotFound, CodeOf(wrapped))
	require.True(t, IsCode(wrapped, CodeDataNotFound))
	require.Equal(t, "load: data file not found: enoent", wrapped.Error())

	outer := Wrap(CodeStats, "stats", Wrap(CodeInvalidInput, "inner", nil))
	require.Equal(t, CodeStats, CodeOf(outer))

	require.Empty(t, CodeOf(errors.New("plain")))
	require.Empty(t, CodeOf(nil))
}
