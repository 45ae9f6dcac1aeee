package validation

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// FrontmatterError describes a missing or malformed YAML frontmatter block.
type FrontmatterError struct {
	Missing bool
	Reason  string
}

func (e *FrontmatterError) Error() string {
	if e.Missing {
		return "missing YAML frontmatter"
	}
	return "invalid YAML frontmatter: " + e.Reason
}

// parseFrontmatter checks that content opens with a "---" delimited block
// holding a YAML mapping. An empty block is accepted.
func parseFrontmatter(content string) error {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(content, frontmatterDelimiter+"\n") {
		return &FrontmatterError{Missing: true}
	}

	lines := strings.Split(content, "\n")
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == frontmatterDelimiter {
			end = i
			break
		}
	}
	if end < 0 {
		return &FrontmatterError{Reason: "unterminated block"}
	}

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &meta); err != nil {
		return &FrontmatterError{Reason: yamlReason(err)}
	}
	return nil
}

// yamlReason flattens a yaml.v3 error onto one line.
func yamlReason(err error) string {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		return strings.Join(typeErr.Errors, "; ")
	}
	msg := strings.TrimPrefix(err.Error(), "yaml: ")
	return strings.Join(strings.Fields(msg), " ")
}
