package enrich

import (
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/goenrich/expand"
	"github.com/grailbio/goenrich/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssign(t *testing.T) {
	original := []interval.Record{
		gene("chr1", 1000, 2000, "gA"),
		gene("chr1", 5000, 6000, "gB"),
	}
	expanded := interval.Clone(original)
	expand.ExpandByDistance(expanded, 500)
	elements := []interval.Record{
		gene("chr1", 900, 950, "e0"),
		gene("chr1", 2100, 2200, "e1"),
		gene("chr1", 3000, 3100, "e2"),
		gene("chr2", 10, 20, "e3"),
	}
	got, err := Assign(elements, expanded, original)
	require.NoError(t, err)
	assert.Equal(t, []Assignment{
		{Element: elements[0], Assigned: true, Gene: "gA", Distance: 51},
		{Element: elements[1], Assigned: true, Gene: "gA", Distance: 101},
		{Element: elements[2]},
		{Element: elements[3]},
	}, got)
	// The original genes are untouched by expansion.
	assert.Equal(t, interval.PosType(1000), original[0].Start)

	got, err = Assign(elements, nil, nil)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	_, err = Assign(elements, expanded, original[1:])
	assert.True(t, errors.Is(errors.Integrity, err))
}
