// Package testutil provides test utilities and helpers for claudelint tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Compliant content for each layer. A tree built only from these passes in
// both default and strict mode.
const (
	CompliantRoot = `# Project context

This repository is a Go service. Prefer small packages and explicit errors.
`
	CompliantAgent = `---
name: reviewer
description: Reviews changes for clarity.
---

# Reviewer

You value readable code and small, focused changes.
`
	CompliantSkill = `---
name: fmt
description: Knows the project's formatting conventions.
---

# Formatting

## Capability

Understands gofmt, goimports and the project's import grouping.
`
	CompliantReference = `# Pricing playbook

This playbook is optional background reading.
`
)

// ClaudeTree builds a .claude configuration root inside t.TempDir().
type ClaudeTree struct {
	t    *testing.T
	root string
}

// NewClaudeTree creates an empty root directory named .claude.
func NewClaudeTree(t *testing.T) *ClaudeTree {
	t.Helper()

	root := filepath.Join(t.TempDir(), ".claude")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create root %s: %v", root, err)
	}
	return &ClaudeTree{t: t, root: root}
}

// Root returns the root directory path.
func (c *ClaudeTree) Root() string {
	return c.root
}

// Path joins slash-separated rel onto the root.
func (c *ClaudeTree) Path(rel string) string {
	return filepath.Join(c.root, filepath.FromSlash(rel))
}

// Write writes content to rel, creating parent directories.
func (c *ClaudeTree) Write(rel, content string) string {
	c.t.Helper()
	p := c.Path(rel)
	WriteFile(c.t, p, content)
	return p
}

// WriteRoot writes CLAUDE.md.
func (c *ClaudeTree) WriteRoot(content string) string {
	c.t.Helper()
	return c.Write("CLAUDE.md", content)
}

// WriteAgent writes agents/<name>.md.
func (c *ClaudeTree) WriteAgent(name, content string) string {
	c.t.Helper()
	return c.Write("agents/"+name+".md", content)
}

// WriteSkill writes skills/<name>/SKILL.md.
func (c *ClaudeTree) WriteSkill(name, content string) string {
	c.t.Helper()
	return c.Write("skills/"+name+"/SKILL.md", content)
}

// WriteReference writes references/<name>.md.
func (c *ClaudeTree) WriteReference(name, content string) string {
	c.t.Helper()
	return c.Write("references/"+name+".md", content)
}

// WriteSkillReference writes skills/<skill>/references/<name>.md.
func (c *ClaudeTree) WriteSkillReference(skill, name, content string) string {
	c.t.Helper()
	return c.Write("skills/"+skill+"/references/"+name+".md", content)
}

// Mkdir creates rel as an empty directory.
func (c *ClaudeTree) Mkdir(rel string) string {
	c.t.Helper()
	p := c.Path(rel)
	if err := os.MkdirAll(p, 0755); err != nil {
		c.t.Fatalf("failed to create directory %s: %v", p, err)
	}
	return p
}

// Compliant fills the tree with one compliant file per layer.
func (c *ClaudeTree) Compliant() *ClaudeTree {
	c.t.Helper()
	c.WriteRoot(CompliantRoot)
	c.WriteAgent("reviewer", CompliantAgent)
	c.WriteSkill("fmt", CompliantSkill)
	c.WriteReference("pricing", CompliantReference)
	return c
}

// Lines returns n newline-terminated lines of filler text.
func Lines(n int) string {
	return strings.Repeat("Plain descriptive prose.\n", n)
}

// CreateTempDir creates a temporary directory with cleanup.
func CreateTempDir(t *testing.T, prefix string) string {
	t.Helper()

	dir, err := os.MkdirTemp("", prefix)
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		os.RemoveAll(dir)
	})

	return dir
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}
