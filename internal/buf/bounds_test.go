package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	sum, ok := AddOverflowSafe(10, 5)
	require.True(t, ok)
	assert.Equal(t, 15, sum)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	assert.False(t, ok, "expected overflow when adding to MaxInt")

	_, ok = AddOverflowSafe(math.MinInt, -1)
	assert.False(t, ok, "expected underflow when subtracting from MinInt")
}

func TestCheckRange(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		offset  int
		length  int
		wantEnd int
		wantErr string
	}{
		{name: "fits", limit: 1024, offset: 64, length: 128, wantEnd: 192},
		{name: "exact end", limit: 1024, offset: 0, length: 1024, wantEnd: 1024},
		{name: "zero length at limit", limit: 1024, offset: 1024, length: 0, wantEnd: 1024},
		{name: "past end", limit: 1024, offset: 1000, length: 25, wantErr: "bounds"},
		{name: "negative offset", limit: 1024, offset: -1, length: 1, wantErr: "negative offset"},
		{name: "negative length", limit: 1024, offset: 0, length: -1, wantErr: "negative length"},
		{name: "overflow", limit: math.MaxInt, offset: math.MaxInt, length: 1, wantErr: "overflow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, err := CheckRange(tt.limit, tt.offset, tt.length)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestSlice(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}

	got, ok := Slice(data, 1, 3)
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, got)
	assert.Equal(t, 3, cap(got), "sub-slice must not expose bytes past its end")

	_, ok = Slice(data, 4, 2)
	assert.False(t, ok, "Slice should fail when extending beyond len")

	_, ok = Slice(data, -1, 1)
	assert.False(t, ok, "Slice should reject negative offset")
	_, ok = Slice(data, 1, -1)
	assert.False(t, ok, "Slice should reject negative length")
}
