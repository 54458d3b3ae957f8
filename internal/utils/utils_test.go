package utils_test

import (
	"testing"

	"github.com/jrsteele09/go-profile-server/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestSplitTrim(t *testing.T) {
	require.Equal(t, []string{"Go", "Rust", "Python"}, utils.SplitTrim("Go, Rust ,  Python", ","))
	require.Equal(t, []string{"Go", "", "Go"}, utils.SplitTrim("Go, ,Go", ","))
	require.Equal(t, []string{""}, utils.SplitTrim("", ","))
}

func TestCloneSlice(t *testing.T) {
	require.Nil(t, utils.CloneSlice[int](nil))

	orig := []int{1, 2, 3}
	c := utils.CloneSlice(orig)
	c[0] = 9
	require.Equal(t, []int{1, 2, 3}, orig)
}

func TestPtrValue(t *testing.T) {
	require.Equal(t, "x", utils.Value(utils.Ptr("x")))
	require.Equal(t, "", utils.Value[string](nil))
}
