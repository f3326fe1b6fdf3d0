package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCaseInsensitive(t *testing.T) {
	rows := []string{"apple", "banana", "Apple Pie"}

	res := Run(rows, "apple")
	assert.Equal(t, []bool{true, false, true}, res.Marks)
	assert.Equal(t, 0, res.First)

	res = Run(rows, "PIE")
	assert.Equal(t, []bool{false, false, true}, res.Marks)
	assert.Equal(t, 2, res.First)
}

func TestRunNoMatch(t *testing.T) {
	res := Run([]string{"apple", "banana"}, "cherry")
	assert.Equal(t, []bool{false, false}, res.Marks)
	assert.Equal(t, -1, res.First)
}

func TestRunEmptyQueryMatchesEverything(t *testing.T) {
	res := Run([]string{"a", "", "b"}, "")
	assert.Equal(t, []bool{true, true, true}, res.Marks)
	assert.Equal(t, 0, res.First)
}

func TestRunEmptyRows(t *testing.T) {
	res := Run(nil, "anything")
	assert.Empty(t, res.Marks)
	assert.Equal(t, -1, res.First)
}
