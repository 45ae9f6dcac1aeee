// claudelint - layering linter for .claude context directories
// Source: https://github.com/ariel-frischer/claudelint

// Package validation scans a .claude configuration root, classifies each
// candidate file into a Layer and applies that layer's checks.
package validation

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"
)

// CandidateFile is a classified file and its content. It is not modified
// after construction.
type CandidateFile struct {
	Path          string
	RelPath       string
	Layer         Layer
	Content       string
	Lines         int
	HasReferences bool
}

// NewCandidateFile builds a CandidateFile for entry with the given content.
func NewCandidateFile(entry Entry, content string) *CandidateFile {
	return &CandidateFile{
		Path:          entry.Path,
		RelPath:       entry.RelPath,
		Layer:         entry.Layer,
		Content:       content,
		Lines:         CountLines(content),
		HasReferences: entry.HasReferences,
	}
}

// Diagnostic is one violated check on one file.
type Diagnostic struct {
	Path    string `json:"path"`
	Layer   Layer  `json:"layer"`
	Message string `json:"message"`
}

// String formats the diagnostic as "<path>: <message>".
func (d Diagnostic) String() string {
	return d.Path + ": " + d.Message
}

// Result is the complete outcome of one run.
type Result struct {
	Root        string
	Files       int // candidate files that were read and checked
	Diagnostics []Diagnostic
}

// Clean reports whether no diagnostics were produced.
func (r *Result) Clean() bool {
	return len(r.Diagnostics) == 0
}

// Validator applies a RuleTable to candidate files.
type Validator struct {
	rules  RuleTable
	logger *zap.Logger
}

// NewValidator creates a validator. A nil logger disables tracing.
func NewValidator(rules RuleTable, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{rules: rules, logger: logger}
}

// Validate runs every check for f's layer in order and concatenates the
// results. A failing check never stops later checks.
func (v *Validator) Validate(f *CandidateFile) []Diagnostic {
	var diags []Diagnostic
	for _, check := range v.rules.For(f.Layer) {
		msgs := check.Run(f)
		v.logger.Debug("check",
			zap.String("path", f.Path),
			zap.String("check", check.Name),
			zap.Int("violations", len(msgs)))
		for _, msg := range msgs {
			diags = append(diags, Diagnostic{Path: f.Path, Layer: f.Layer, Message: msg})
		}
	}
	return diags
}

// Linter runs the scan, read, validate pipeline over a root.
type Linter struct {
	opts      Options
	validator *Validator
	logger    *zap.Logger
}

// NewLinter creates a linter for opts. A nil logger disables tracing.
func NewLinter(opts Options, logger *zap.Logger) *Linter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Linter{
		opts:      opts,
		validator: NewValidator(NewRuleTable(opts), logger),
		logger:    logger,
	}
}

// Lint validates the tree at root. The only returned errors are a
// *RootNotFoundError or a failure to list the root itself; every per-file
// problem becomes a Diagnostic.
func (l *Linter) Lint(root string) (*Result, error) {
	entries, err := NewScanner(root, l.logger).Scan()
	if err != nil {
		return nil, err
	}

	result := &Result{Root: root}
	for _, entry := range entries {
		switch {
		case entry.Err != nil:
			result.Diagnostics = append(result.Diagnostics, unreadable(entry, entry.Err))
		case entry.Missing:
			if l.opts.Strict {
				result.Diagnostics = append(result.Diagnostics, Diagnostic{
					Path:    filepath.Dir(entry.Path),
					Layer:   entry.Layer,
					Message: "missing " + path.Base(entry.RelPath),
				})
			}
		default:
			data, err := os.ReadFile(entry.Path)
			if err != nil {
				result.Diagnostics = append(result.Diagnostics, unreadable(entry, err))
				continue
			}
			if !utf8.Valid(data) {
				result.Diagnostics = append(result.Diagnostics, unreadable(entry, errInvalidUTF8))
				continue
			}
			result.Files++
			result.Diagnostics = append(result.Diagnostics, l.validator.Validate(NewCandidateFile(entry, string(data)))...)
		}
	}

	l.logger.Debug("lint complete",
		zap.String("root", root),
		zap.Int("files", result.Files),
		zap.Int("diagnostics", len(result.Diagnostics)))
	return result, nil
}

var errInvalidUTF8 = errors.New("invalid UTF-8")

// unreadable reports err without the path, which the diagnostic already carries.
func unreadable(entry Entry, err error) Diagnostic {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return Diagnostic{Path: entry.Path, Layer: entry.Layer, Message: "unreadable: " + err.Error()}
}
