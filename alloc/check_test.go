package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_DetectsViolations(t *testing.T) {
	tests := []struct {
		name   string
		blocks []Block
		want   string
	}{
		{
			name:   "out of order",
			blocks: []Block{{Start: 64, Size: 8}, {Start: 0, Size: 8}},
			want:   "not after block",
		},
		{
			name:   "overlap",
			blocks: []Block{{Start: 0, Size: 32}, {Start: 16, Size: 32}},
			want:   "overlaps",
		},
		{
			name:   "past capacity",
			blocks: []Block{{Start: 100, Size: 50}},
			want:   "exceeds capacity",
		},
		{
			name:   "unmerged free neighbors",
			blocks: []Block{{Start: 0, Size: 8, Free: true}, {Start: 8, Size: 8, Free: true}},
			want:   "not merged",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tableWith(t, 128, tt.blocks...)
			err := a.Check()
			require.ErrorIs(t, err, ErrCorrupt)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCheck_CleanTable(t *testing.T) {
	a := tableWith(t, 128,
		Block{Start: 0, Size: 8, Free: true},
		Block{Start: 8, Size: 8},
		Block{Start: 24, Size: 8, Free: true}, // gap before is fine
		Block{Start: 40, Size: 88, Free: true},
	)
	assert.NoError(t, a.Check())
}
