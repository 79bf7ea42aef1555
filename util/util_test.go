package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hetarchief/aip-services/util"
)

func TestStringListContains(t *testing.T) {
	list := []string{"apple", "orange", "banana"}
	assert.True(t, util.StringListContains(list, "orange"))
	assert.False(t, util.StringListContains(list, "wedgewood"))
	assert.False(t, util.StringListContains(nil, "apple"))
}

func TestLastPathSegment(t *testing.T) {
	assert.Equal(t, "digitization",
		util.LastPathSegment("https://data.hetarchief.be/id/event-type/digitization"))
	assert.Equal(t, "film",
		util.LastPathSegment("https://data.hetarchief.be/id/sip/2.1/film/"))
	assert.Equal(t, "plain", util.LastPathSegment("plain"))
	assert.Equal(t, "", util.LastPathSegment(""))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"OR-a", "OR-b"}, util.SplitAndTrim(" OR-a, OR-b "))
	assert.Equal(t, []string{"OR-a"}, util.SplitAndTrim("OR-a,,"))
	assert.Equal(t, []string{}, util.SplitAndTrim(""))
}

func TestListContainsFold(t *testing.T) {
	list := []string{" OR-Tape001 ", "OR-disk001"}
	assert.True(t, util.ListContainsFold(list, "or-tape001"))
	assert.True(t, util.ListContainsFold(list, "OR-DISK001 "))
	assert.False(t, util.ListContainsFold(list, "OR-other"))
}
