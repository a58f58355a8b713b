package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListText(t *testing.T) {
	cases := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"Ann"}, "Ann"},
		{[]string{"Ann", "Bo"}, "Ann and Bo"},
		{[]string{"Ann", "Bo", "Cy"}, "Ann, Bo, and Cy"},
		{[]string{"Ann", "Bo", "Cy", "Di", "Ed"}, "Ann, Bo, Cy, and 2 more"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ListText(tc.names))
	}
}

func TestTechnologyStackTextSkipsUnknownKeys(t *testing.T) {
	assert.Equal(t, "Go and PostgreSQL", TechnologyStackText([]string{"go", "cobol", "postgres"}))
	assert.Equal(t, "", TechnologyStackText(nil))
}

func TestMappingOrder(t *testing.T) {
	assert.Equal(t, "beginner", Complexities.First())
	assert.True(t, Complexities.Has("advanced"))
	assert.False(t, Complexities.Has("trivial"))

	label, ok := SortBy.Label("most_favorites")
	assert.True(t, ok)
	assert.Equal(t, SortMostFavorites, label)

	_, ok = SortBy.Label("alphabetical")
	assert.False(t, ok)
}
