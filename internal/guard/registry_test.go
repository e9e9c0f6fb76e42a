package guard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Empty(t *testing.T) {
	r := NewRegistry()

	require.True(t, r.HasNoErrors())
	require.Equal(t, 0, r.Len())
	require.Empty(t, r.Errors())
	require.Empty(t, r.Messages())
}

func TestRegistry_KeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("b", "second")
	r.Register("a", "first")

	require.False(t, r.HasNoErrors())
	require.Equal(t, []string{"second", "first"}, r.Messages())
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	r.Register("a", "old")
	r.Register("b", "other")
	r.Register("a", "new")

	require.Equal(t, 2, r.Len())
	require.Equal(t, []Error{{Key: "a", Message: "new"}, {Key: "b", Message: "other"}}, r.Errors())
	require.True(t, r.Has("a"))
	require.False(t, r.Has("c"))
}

func TestError_ImplementsError(t *testing.T) {
	var err error = Error{Key: "k", Message: "boom"}
	require.EqualError(t, err, "boom")
}
