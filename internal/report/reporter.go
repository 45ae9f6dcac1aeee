// Package report writes validation results and derives the exit code.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ariel-frischer/claudelint/internal/validation"
	"github.com/fatih/color"
)

// Exit codes. No others are defined.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ExitCode returns ExitSuccess for a clean result and ExitFailure otherwise.
func ExitCode(res *validation.Result) int {
	if res != nil && res.Clean() {
		return ExitSuccess
	}
	return ExitFailure
}

// Reporter writes results to Out (success, JSON) and Err (diagnostics,
// fatal errors).
type Reporter struct {
	Out    io.Writer
	Err    io.Writer
	Format Format
	// Color enables ANSI colour on the "ok" and "error" prefixes.
	Color bool
}

// jsonReport is the document written in FormatJSON.
type jsonReport struct {
	Root        string                  `json:"root"`
	Clean       bool                    `json:"clean"`
	Files       int                     `json:"files"`
	Count       int                     `json:"count"`
	Diagnostics []validation.Diagnostic `json:"diagnostics"`
}

// Report writes res and returns the exit code for it.
func (r *Reporter) Report(res *validation.Result) (int, error) {
	if r.Format == FormatJSON {
		return ExitCode(res), r.writeJSON(res)
	}
	return ExitCode(res), r.writeText(res)
}

func (r *Reporter) writeText(res *validation.Result) error {
	if res.Clean() {
		_, err := fmt.Fprintf(r.Out, "%s: %s passes all checks\n", r.paint(color.FgGreen, "ok"), res.Root)
		return err
	}

	prefix := r.paint(color.FgRed, "error")
	for _, d := range res.Diagnostics {
		if _, err := fmt.Fprintf(r.Err, "%s: %s\n", prefix, d); err != nil {
			return fmt.Errorf("writing diagnostic: %w", err)
		}
	}
	_, err := fmt.Fprintf(r.Err, "\n%d error(s)\n", len(res.Diagnostics))
	return err
}

func (r *Reporter) writeJSON(res *validation.Result) error {
	diags := res.Diagnostics
	if diags == nil {
		diags = []validation.Diagnostic{}
	}
	doc := jsonReport{
		Root:        res.Root,
		Clean:       res.Clean(),
		Files:       res.Files,
		Count:       len(diags),
		Diagnostics: diags,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintf(r.Out, "%s\n", data)
	return err
}

// Fatal writes "error: <reason>" for a condition that stopped the run and
// returns ExitFailure.
func (r *Reporter) Fatal(err error) int {
	fmt.Fprintf(r.Err, "%s: %v\n", r.paint(color.FgRed, "error"), err)
	return ExitFailure
}

func (r *Reporter) paint(attr color.Attribute, s string) string {
	c := color.New(attr, color.Bold)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
