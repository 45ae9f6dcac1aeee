package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
		wantErr string
	}{
		"valid mapping": {
			content: "---\nname: reviewer\ndescription: Reviews code.\n---\n# Body\n",
		},
		"empty block": {
			content: "---\n---\nbody\n",
		},
		"windows line endings": {
			content: "---\r\nname: x\r\n---\r\n",
		},
		"no frontmatter": {
			content: "# Reviewer\n",
			wantErr: "missing YAML frontmatter",
		},
		"delimiter not first": {
			content: "\n---\nname: x\n---\n",
			wantErr: "missing YAML frontmatter",
		},
		"unterminated": {
			content: "---\nname: x\n",
			wantErr: "invalid YAML frontmatter: unterminated block",
		},
		"not a mapping": {
			content: "---\n- a\n- b\n---\n",
			wantErr: "invalid YAML frontmatter: line 1: cannot unmarshal !!seq",
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := parseFrontmatter(tc.content)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseFrontmatterSyntaxErrorIsSingleLine(t *testing.T) {
	t.Parallel()

	err := parseFrontmatter("---\nname: [unclosed\n---\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML frontmatter: ")
	assert.NotContains(t, err.Error(), "\n")
}
