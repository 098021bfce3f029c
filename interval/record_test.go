package interval

import (
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePos(t *testing.T) {
	tests := []struct {
		in   string
		want PosType
		ok   bool
	}{
		{"0", 0, true},
		{"12345", 12345, true},
		{"-42", -42, true},
		{"", 0, false},
		{"-", 0, false},
		{"12a", 0, false},
		{"+5", 0, false},
		{" 5", 0, false},
		{"1.5", 0, false},
		{"9223372036854775807", 9223372036854775807, true},
		{"-9223372036854775807", -9223372036854775807, true},
		{"9223372036854775808", 0, false},
		{"123456789012345678901", 0, false},
		{"-99999999999999999999", 0, false},
	}
	for _, tt := range tests {
		got, err := ParsePos(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			assert.True(t, errors.Is(errors.Invalid, err), tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewRecord(t *testing.T) {
	r, err := NewRecord([]string{"chr1", "100", "200"})
	require.NoError(t, err)
	expect.EQ(t, r, Record{Chrom: "chr1", Start: 100, End: 200})

	r, err = NewRecord([]string{"chr2", "5", "10", "geneA", "GO:1,GO:2,,GO:1", "-"})
	require.NoError(t, err)
	expect.EQ(t, r.Name, "geneA")
	expect.EQ(t, r.Terms, []string{"GO:1", "GO:2"})
	expect.EQ(t, r.Strand, byte('-'))

	r, err = NewRecord([]string{"chr2", "5", "10", "elem", "", "+"})
	require.NoError(t, err)
	assert.Nil(t, r.Terms)
	assert.Equal(t, byte('+'), r.Strand)

	for _, row := range [][]string{
		{"chr1", "1"},
		{"chr1", "1", "2", "n", "t", "+", "extra"},
		{"chr1", "x", "2"},
		{"chr1", "1", ""},
	} {
		_, err := NewRecord(row)
		assert.True(t, errors.Is(errors.Invalid, err), "%v", row)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := []Record{
		{Chrom: "chr1", Start: 1, End: 5, Name: "a", Terms: []string{"GO:1"}},
		{Chrom: "chr1", Start: 3, End: 9, Name: "b"},
	}
	cl := Clone(orig)
	require.Equal(t, orig, cl)
	cl[0].Start = 0
	cl[0].Terms[0] = "GO:2"
	cl[1].Name = "c"
	assert.Equal(t, PosType(1), orig[0].Start)
	assert.Equal(t, "GO:1", orig[0].Terms[0])
	assert.Equal(t, "b", orig[1].Name)
	assert.Nil(t, Clone(nil))
}

func TestHasTerm(t *testing.T) {
	r := Record{Chrom: "chr1", Start: 0, End: 1, Terms: []string{"GO:1", "GO:7"}}
	assert.True(t, r.HasTerm("GO:7"))
	assert.False(t, r.HasTerm("GO:3"))
	assert.True(t, r.HasTerm(AnyTerm))
	empty := Record{Chrom: "chr1", Start: 0, End: 1}
	assert.True(t, empty.HasTerm(AnyTerm))
	assert.False(t, empty.HasTerm("GO:1"))
}

func TestOverlapAndCompare(t *testing.T) {
	a := Record{Chrom: "chr1", Start: 10, End: 20}
	tests := []struct {
		b       Record
		overlap bool
		cmpEnd  int
	}{
		{Record{Chrom: "chr1", Start: 19, End: 30}, true, -1},
		{Record{Chrom: "chr1", Start: 20, End: 30}, false, -1},
		{Record{Chrom: "chr1", Start: 0, End: 10}, false, 1},
		{Record{Chrom: "chr1", Start: 12, End: 20}, true, 0},
		{Record{Chrom: "chr2", Start: 10, End: 20}, false, -1},
		{Record{Chrom: "chr0", Start: 10, End: 20}, false, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.overlap, Overlap(&a, &tt.b), "%v", tt.b)
		assert.Equal(t, tt.overlap, Overlap(&tt.b, &a), "%v", tt.b)
		assert.Equal(t, tt.cmpEnd, CompareEnd(&a, &tt.b), "%v", tt.b)
	}
	assert.True(t, CompareStart(&Record{Chrom: "chr10", Start: 0}, &Record{Chrom: "chr2", Start: 0}) < 0)
}

func TestSort(t *testing.T) {
	records := []Record{
		{Chrom: "chr2", Start: 5, End: 6},
		{Chrom: "chr10", Start: 7, End: 8},
		{Chrom: "chr1", Start: 9, End: 10, Name: "first"},
		{Chrom: "chr1", Start: 9, End: 12, Name: "second"},
		{Chrom: "chr1", Start: 1, End: 2},
	}
	assert.False(t, IsSorted(records))
	Sort(records)
	assert.True(t, IsSorted(records))
	var got []string
	for _, r := range records {
		got = append(got, r.String())
	}
	assert.Equal(t, []string{
		"chr1\t1\t2",
		"chr1\t9\t10\tfirst",
		"chr1\t9\t12\tsecond",
		"chr10\t7\t8",
		"chr2\t5\t6",
	}, got)
}

func TestDistance(t *testing.T) {
	gene := Record{Chrom: "chr1", Start: 100, End: 200}
	tests := []struct {
		elem Record
		want PosType
	}{
		{Record{Chrom: "chr1", Start: 150, End: 160}, 0},
		{Record{Chrom: "chr1", Start: 250, End: 260}, 51},
		{Record{Chrom: "chr1", Start: 200, End: 210}, 1},
		{Record{Chrom: "chr1", Start: 10, End: 20}, 81},
		{Record{Chrom: "chr1", Start: 10, End: 100}, 1},
	}
	for _, tt := range tests {
		d, err := Distance(&tt.elem, &gene)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d, "%v", tt.elem)
	}
	_, err := Distance(&Record{Chrom: "chr2", Start: 1, End: 2}, &gene)
	assert.True(t, errors.Is(errors.Integrity, err))
}
