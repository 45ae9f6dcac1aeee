package config

import "github.com/ariel-frischer/claudelint/internal/validation"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"strict":              false,
		"agent_max_lines":     validation.DefaultAgentMaxLines,
		"skill_max_lines":     validation.DefaultSkillMaxLines,
		"optional_head_lines": validation.DefaultOptionalHeadLines,
		"format":              "text",
		"color":               true,
	}
}
