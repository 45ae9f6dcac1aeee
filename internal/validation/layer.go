// claudelint - layering linter for .claude context directories
// Source: https://github.com/ariel-frischer/claudelint

package validation

import (
	"path"
	"path/filepath"
	"strings"
)

// Layer identifies which kind of content a file is allowed to carry.
type Layer int

const (
	// LayerUnknown is the zero value; files never carry it once classified.
	LayerUnknown Layer = iota
	// LayerRoot is the top-level CLAUDE.md: stable facts and norms.
	LayerRoot
	// LayerAgent is agents/<name>.md: perspective and values.
	LayerAgent
	// LayerSkill is skills/<name>/SKILL.md: declared capabilities.
	LayerSkill
	// LayerReference is references/<name>.md (or a skill-local
	// skills/<name>/references/<file>.md): optional playbooks.
	LayerReference
)

// Well-known names in a configuration root.
const (
	RootFileName  = "CLAUDE.md"
	SkillFileName = "SKILL.md"
	AgentsDir     = "agents"
	SkillsDir     = "skills"
	ReferencesDir = "references"
)

// String returns the lower-case layer name used in JSON output.
func (l Layer) String() string {
	switch l {
	case LayerRoot:
		return "root"
	case LayerAgent:
		return "agent"
	case LayerSkill:
		return "skill"
	case LayerReference:
		return "reference"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Classify maps a path relative to the configuration root to its Layer.
// The second return value is false when the path matches none of the known
// shapes; such paths are not candidates and are skipped without error.
//
// Shapes are checked in precedence order: CLAUDE.md, agents/<name>.md,
// skills/<name>/SKILL.md, references/<name>.md and finally
// skills/<name>/references/<name>.md.
func Classify(rel string) (Layer, bool) {
	rel = path.Clean(filepath.ToSlash(rel))
	if rel == "." || path.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, "../") {
		return LayerUnknown, false
	}

	parts := strings.Split(rel, "/")
	switch {
	case len(parts) == 1 && parts[0] == RootFileName:
		return LayerRoot, true
	case len(parts) == 2 && parts[0] == AgentsDir && isMarkdownName(parts[1]):
		return LayerAgent, true
	case len(parts) == 3 && parts[0] == SkillsDir && parts[2] == SkillFileName:
		return LayerSkill, true
	case len(parts) == 2 && parts[0] == ReferencesDir && isMarkdownName(parts[1]):
		return LayerReference, true
	case len(parts) == 4 && parts[0] == SkillsDir && parts[2] == ReferencesDir && isMarkdownName(parts[3]):
		return LayerReference, true
	}
	return LayerUnknown, false
}

// isMarkdownName reports whether name is a non-empty "<stem>.md" file name.
func isMarkdownName(name string) bool {
	return len(name) > len(".md") && strings.HasSuffix(name, ".md")
}
