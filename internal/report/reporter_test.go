package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ariel-frischer/claudelint/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReporter(format Format) (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Reporter{Out: &out, Err: &errOut, Format: format}, &out, &errOut
}

func failing() *validation.Result {
	return &validation.Result{
		Root:  ".claude",
		Files: 2,
		Diagnostics: []validation.Diagnostic{
			{Path: ".claude/CLAUDE.md", Layer: validation.LayerRoot, Message: "contains workflow verb 'step 1'"},
			{Path: ".claude/skills/foo/SKILL.md", Layer: validation.LayerSkill, Message: "contains fenced code block"},
		},
	}
}

func TestReportTextClean(t *testing.T) {
	t.Parallel()

	r, out, errOut := newTestReporter(FormatText)
	code, err := r.Report(&validation.Result{Root: ".claude", Files: 4})
	require.NoError(t, err)

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "ok: .claude passes all checks\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestReportTextFailure(t *testing.T) {
	t.Parallel()

	r, out, errOut := newTestReporter(FormatText)
	code, err := r.Report(failing())
	require.NoError(t, err)

	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, out.String())
	assert.Equal(t,
		"error: .claude/CLAUDE.md: contains workflow verb 'step 1'\n"+
			"error: .claude/skills/foo/SKILL.md: contains fenced code block\n"+
			"\n2 error(s)\n",
		errOut.String())
}

func TestReportTextColor(t *testing.T) {
	t.Parallel()

	r, _, errOut := newTestReporter(FormatText)
	r.Color = true
	_, err := r.Report(failing())
	require.NoError(t, err)

	assert.Contains(t, errOut.String(), "\x1b[")
	assert.Contains(t, errOut.String(), ": .claude/CLAUDE.md: contains workflow verb 'step 1'\n")
}

func TestReportJSON(t *testing.T) {
	t.Parallel()

	r, out, errOut := newTestReporter(FormatJSON)
	code, err := r.Report(failing())
	require.NoError(t, err)
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, errOut.String())

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, ".claude", doc["root"])
	assert.Equal(t, false, doc["clean"])
	assert.Equal(t, float64(2), doc["count"])
	assert.Equal(t, float64(2), doc["files"])

	diags := doc["diagnostics"].([]any)
	require.Len(t, diags, 2)
	assert.Equal(t, map[string]any{
		"path":    ".claude/skills/foo/SKILL.md",
		"layer":   "skill",
		"message": "contains fenced code block",
	}, diags[1])
}

func TestReportJSONClean(t *testing.T) {
	t.Parallel()

	r, out, _ := newTestReporter(FormatJSON)
	code, err := r.Report(&validation.Result{Root: ".claude"})
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out.String(), `"diagnostics": []`)
	assert.Contains(t, out.String(), `"clean": true`)
}

func TestFatal(t *testing.T) {
	t.Parallel()

	r, out, errOut := newTestReporter(FormatJSON)
	code := r.Fatal(&validation.RootNotFoundError{Path: "nope"})

	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, out.String())
	assert.Equal(t, "error: nope is not a directory\n", errOut.String())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(&validation.Result{}))
	assert.Equal(t, ExitFailure, ExitCode(failing()))
	assert.Equal(t, ExitFailure, ExitCode(nil))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    Format
		wantErr bool
	}{
		"empty defaults to text": {input: "", want: FormatText},
		"text":                   {input: "text", want: FormatText},
		"json":                   {input: "json", want: FormatJSON},
		"case and space":         {input: " JSON ", want: FormatJSON},
		"unknown":                {input: "yaml", wantErr: true},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid options: text, json")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, string(tc.want), got.String())
		})
	}
}
