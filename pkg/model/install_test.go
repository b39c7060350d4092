package model

import (
	"testing"

	"github.com/glorpus-work/pylay/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDependencyPolicy(t *testing.T) {
	for _, valid := range []string{"none", "production", "develop", "all"} {
		policy, err := ParseDependencyPolicy(valid)
		require.NoError(t, err)
		assert.Equal(t, DependencyPolicy(valid), policy)
	}

	_, err := ParseDependencyPolicy("everything")
	assert.ErrorIs(t, err, errors.ErrInvalidDepsPolicy)
}

func TestParsePlacementMode(t *testing.T) {
	tests := []struct {
		name     string
		symlink  bool
		pth      bool
		expected PlacementMode
		wantErr  bool
	}{
		{name: "default is copy", expected: PlacementCopy},
		{name: "symlink", symlink: true, expected: PlacementSymlink},
		{name: "pth", pth: true, expected: PlacementPth},
		{name: "both flags conflict", symlink: true, pth: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParsePlacementMode(tt.symlink, tt.pth)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrPlacementConflict)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestPlacementMode_String(t *testing.T) {
	assert.Equal(t, "copy", PlacementCopy.String())
	assert.Equal(t, "symlink", PlacementSymlink.String())
	assert.Equal(t, "pth", PlacementPth.String())
}
