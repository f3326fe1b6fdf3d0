package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAddsSpacerRow(t *testing.T) {
	v := New()
	v.Append("first")
	v.Append("second")

	rows := v.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "first", rows[0].Text)
	assert.Equal(t, "", rows[1].Text)
	assert.Equal(t, "second", rows[2].Text)
	assert.Equal(t, "", rows[3].Text)
}

func TestFindMarksAndFirst(t *testing.T) {
	v := New()
	v.Append("apple")
	v.Append("banana")
	v.Append("Apple Pie")

	first := v.Find("apple")
	assert.Equal(t, 0, first)

	rows := v.Rows()
	assert.True(t, rows[0].Match, "apple")
	assert.False(t, rows[1].Match, "spacer")
	assert.False(t, rows[2].Match, "banana")
	assert.True(t, rows[4].Match, "Apple Pie")

	v.ResetFind()
	for i, r := range v.Rows() {
		assert.False(t, r.Match, "row %d after reset", i)
	}
}

func TestFindNoMatch(t *testing.T) {
	v := New()
	v.Append("apple")
	assert.Equal(t, -1, v.Find("cherry"))
}

func TestClearDropsRowsAndMarks(t *testing.T) {
	v := New()
	v.Append("apple")
	v.Find("apple")

	v.Clear()
	assert.Empty(t, v.Rows())
}

func TestToggle(t *testing.T) {
	v := New()
	require.True(t, v.Visible(), "starts visible")
	assert.False(t, v.Toggle())
	assert.True(t, v.Toggle())
	assert.True(t, v.Visible())
}
