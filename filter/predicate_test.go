package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicateMatch(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		env        map[string]any
		expected   bool
	}{
		{
			name:       "simple comparison",
			expression: `Country == "GB"`,
			env:        map[string]any{"Country": "GB"},
			expected:   true,
		},
		{
			name:       "helper function",
			expression: `contains(MSISDN, "4477")`,
			env:        map[string]any{"MSISDN": "447700900000"},
			expected:   true,
		},
		{
			name:       "boolean combination",
			expression: `Country == "GB" and startsWith(Type, "mobile")`,
			env:        map[string]any{"Country": "GB", "Type": "landline"},
			expected:   false,
		},
		{
			name:       "undefined variables evaluate falsy",
			expression: `Name == "missing"`,
			env:        map[string]any{},
			expected:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := pred.Match(tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Run("empty expression", func(t *testing.T) {
		_, err := Compile("   ")
		var compErr *CompilationError
		require.ErrorAs(t, err, &compErr)
		assert.Equal(t, "empty expression", compErr.Reason)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Compile("Country ==")
		var compErr *CompilationError
		require.ErrorAs(t, err, &compErr)
		assert.Error(t, compErr.Unwrap())
	})

	t.Run("non-boolean result", func(t *testing.T) {
		_, err := Compile(`"just a string"`)
		assert.Error(t, err)
	})
}

func TestCompilerCachesPrograms(t *testing.T) {
	c := NewCompiler()

	first, err := c.Compile(`Country == "GB"`)
	require.NoError(t, err)
	second, err := c.Compile(`Country == "GB"`)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, `Country == "GB"`, first.Expression())
}
