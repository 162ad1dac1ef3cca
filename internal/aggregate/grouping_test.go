package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/wordnum/internal/subst"
)

func TestGrouping_AppendPreservesArrivalOrder(t *testing.T) {
	g := New()
	g.Append([]subst.Pair{{Digits: "12", Word: "ab"}})
	g.Append([]subst.Pair{{Digits: "12", Word: "ba"}})

	assert.Equal(t, []string{"ab", "ba"}, g["12"])
}

func TestGrouping_DuplicateWordsKept(t *testing.T) {
	g := New()
	g.Add("8453", "base")
	g.Add("8453", "base")

	assert.Equal(t, []string{"base", "base"}, g["8453"],
		"each input occurrence contributes independently")
}

func TestGrouping_Empty(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.Empty(t, g)
	assert.Empty(t, g.Keys())
	assert.Zero(t, g.Words())
}

func TestGrouping_KeysSorted(t *testing.T) {
	g := New()
	g.Add("9", "a")
	g.Add("12", "b")
	g.Add("053", "c")

	assert.Equal(t, []string{"053", "12", "9"}, g.Keys())
	assert.Equal(t, 3, g.Words())
}
