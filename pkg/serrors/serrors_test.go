package serrors_test

import (
	"errors"
	"fmt"
	"genericurl/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type clipboardError struct{ msg string }

func (e clipboardError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNoActiveTab,
		serrors.ErrClipboardDenied,
		serrors.ErrBadRequest,
		serrors.ErrNotFound,
		serrors.ErrInternal,
		serrors.ErrUnavailable,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("xclip not found")

	e1 := serrors.With(serrors.ErrNoActiveTab, "no URL on line %d", 3)
	require.Equal(t, "no URL on line 3", e1.Error())

	e2 := serrors.Wrap(serrors.ErrClipboardDenied, base, "could not write clipboard")
	require.Equal(t, "could not write clipboard: xclip not found", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNoActiveTab)
	require.Equal(t, "NO_ACTIVE_TAB", e3.Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := clipboardError{"denied"}
	e := serrors.Wrap(serrors.ErrClipboardDenied, base, "writing")

	require.ErrorIs(t, e, serrors.ErrClipboardDenied)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNoActiveTab)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &clipboardError{"denied"}
	e := serrors.Wrap(serrors.ErrClipboardDenied, base, "writing")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrClipboardDenied, k)

	var ce *clipboardError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrNoActiveTab, serrors.KindOf(serrors.ErrNoActiveTab))

	wrapped := fmt.Errorf("could not read: %w", serrors.With(serrors.ErrUnavailable, "no clipboard"))
	require.Equal(t, serrors.ErrUnavailable, serrors.KindOf(wrapped))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrClipboardDenied, base, "no permission")
	require.Equal(t, serrors.ErrClipboardDenied, e.Kind())
	require.Equal(t, "no permission", e.Message())
	require.Equal(t, base, e.Cause())
}
