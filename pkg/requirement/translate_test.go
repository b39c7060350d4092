package requirement

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPipRequirement(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "parenthesized spec with marker",
			input:    `pathlib2 (>=2.3); python_version == "2.7"`,
			expected: `pathlib2>=2.3; python_version == "2.7"`,
		},
		{
			name:     "bare name",
			input:    "toml",
			expected: "toml",
		},
		{
			name:     "name with empty marker",
			input:    "toml;",
			expected: "toml;",
		},
		{
			name:     "bare version pin gets equality operator",
			input:    "requests (2.24.0)",
			expected: "requests==2.24.0",
		},
		{
			name:     "unparenthesized spec",
			input:    "requests >= 2.0",
			expected: "requests>=2.0",
		},
		{
			name:     "internal spaces stripped from spec",
			input:    "requests (>= 2.0, < 3.0)",
			expected: "requests>=2.0,<3.0",
		},
		{
			name:     "tilde operator kept",
			input:    "flask (~=1.1)",
			expected: "flask~=1.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPipRequirement(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToPipRequirement_Idempotent(t *testing.T) {
	inputs := []string{
		`pathlib2 (>=2.3); python_version == "2.7"`,
		"requests (2.24.0)",
		"toml;",
		"flask (~=1.1)",
	}
	for _, input := range inputs {
		once, err := ToPipRequirement(input)
		require.NoError(t, err)
		twice, err := ToPipRequirement(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "translating twice must be a no-op for %q", input)
	}
}

func TestToPipRequirement_Malformed(t *testing.T) {
	for _, input := range []string{"", "   ", "(>=2.3)", "; extra == 'dev'"} {
		_, err := ToPipRequirement(input)
		require.Error(t, err, "input %q", input)

		var formatErr *FormatError
		assert.True(t, errors.As(err, &formatErr))
	}
}
