package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryHelpers(t *testing.T) {
	wrapped := fmt.Errorf("section 5 at offset 97: %w", ErrTruncatedMessage)
	require.True(t, IsStructural(wrapped))
	require.False(t, IsContent(wrapped))

	require.True(t, IsContent(fmt.Errorf("template 5.2: %w", ErrUnsupportedPackingType)))
	require.False(t, IsStructural(ErrUnknownParameter))
	require.False(t, IsContent(ErrUnknownParameter))

	require.False(t, IsStructural(errors.New("unrelated")))
	require.False(t, IsStructural(nil))
}

func TestSentinelsDistinct(t *testing.T) {
	require.NotErrorIs(t, ErrTruncatedMessage, ErrTruncatedData)
	require.NotErrorIs(t, ErrUnsupportedGridTemplate, ErrUnsupportedPackingType)
}
