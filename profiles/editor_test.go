package profiles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func exps(ids ...string) []Experience {
	out := make([]Experience, 0, len(ids))
	for _, id := range ids {
		out = append(out, Experience{ID: id, Title: "t-" + id})
	}
	return out
}

func TestPrepend(t *testing.T) {
	seq := exps("b", "c")
	got := prepend(seq, Experience{ID: "a"})

	require.Equal(t, []string{"a", "b", "c"}, ids(got))
	require.Equal(t, []string{"b", "c"}, ids(seq), "input must not change")
	require.Equal(t, []string{"a"}, ids(prepend[Experience](nil, Experience{ID: "a"})))
}

func TestRemoveByID(t *testing.T) {
	t.Run("middle element", func(t *testing.T) {
		seq := exps("a", "b", "c")
		got, ok := removeByID(seq, "b")
		require.True(t, ok)
		require.Equal(t, []string{"a", "c"}, ids(got))
		require.Equal(t, []string{"a", "b", "c"}, ids(seq), "input must not change")
	})

	t.Run("first and last", func(t *testing.T) {
		got, ok := removeByID(exps("a", "b", "c"), "a")
		require.True(t, ok)
		require.Equal(t, []string{"b", "c"}, ids(got))

		got, ok = removeByID(exps("a", "b", "c"), "c")
		require.True(t, ok)
		require.Equal(t, []string{"a", "b"}, ids(got))
	})

	t.Run("missing id leaves sequence unchanged", func(t *testing.T) {
		seq := exps("a", "b")
		got, ok := removeByID(seq, "z")
		require.False(t, ok)
		require.Equal(t, seq, got)
	})

	t.Run("duplicate id removes first match only", func(t *testing.T) {
		seq := []Education{{ID: "x", School: "1"}, {ID: "y"}, {ID: "x", School: "2"}}
		got, ok := removeByID(seq, "x")
		require.True(t, ok)
		require.Len(t, got, 2)
		require.Equal(t, "y", got[0].ID)
		require.Equal(t, "2", got[1].School)
	})

	t.Run("prepend then remove restores prior sequence", func(t *testing.T) {
		seq := exps("a", "b")
		got, ok := removeByID(prepend(seq, Experience{ID: "new"}), "new")
		require.True(t, ok)
		require.Equal(t, seq, got)
	})
}

func ids[E entry](seq []E) []string {
	out := make([]string, 0, len(seq))
	for _, e := range seq {
		out = append(out, e.EntryID())
	}
	return out
}
