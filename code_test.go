package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	type testRow struct {
		str  string
		size int
	}

	testData := [...]testRow{
		{str: "", size: 0},
		{str: "0", size: 1},
		{str: "1", size: 1},
		{str: "0110", size: 4},
		{str: "10101010", size: 8},
		{str: "101010101", size: 9},
		{str: "111111111111111111111111111111111111111110", size: 42},
	}
	for _, row := range testData {
		t.Run(row.str, func(t *testing.T) {
			hc, err := ParseCode(row.str)
			require.NoError(t, err)
			assert.Equal(t, row.size, hc.Len())
			assert.Equal(t, `"`+row.str+`"`, hc.String())
			for i := 0; i < hc.Len(); i++ {
				assert.Equal(t, row.str[i]-'0', hc.Bit(i))
			}
		})
	}
}

func TestCode_ParseError(t *testing.T) {
	_, err := ParseCode("012")
	assert.EqualError(t, err, `invalid character '2' at index 2 in code "012"`)
}

func TestCode_Append(t *testing.T) {
	base := MustParseCode("1011")
	left := base.Append(0)
	right := base.Append(1)

	assert.Equal(t, `"1011"`, base.String())
	assert.Equal(t, `"10110"`, left.String())
	assert.Equal(t, `"10111"`, right.String())
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MustParseCode("10110")

	assert.True(t, hc.HasPrefix(Code{}))
	assert.True(t, hc.HasPrefix(MustParseCode("1")))
	assert.True(t, hc.HasPrefix(MustParseCode("1011")))
	assert.True(t, hc.HasPrefix(hc))
	assert.False(t, hc.HasPrefix(MustParseCode("0")))
	assert.False(t, hc.HasPrefix(MustParseCode("10111")))
	assert.False(t, hc.HasPrefix(MustParseCode("101100")))

	assert.True(t, hc.Equal(MustParseCode("10110")))
	assert.False(t, hc.Equal(MustParseCode("1011")))
}
