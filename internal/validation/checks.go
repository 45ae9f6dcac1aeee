package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Check is a single layer-scoped rule. Run returns one message per violation
// it finds; an empty slice means the file passes.
type Check struct {
	Name string
	Run  func(f *CandidateFile) []string
}

// signature is a literal phrase compiled to a case-insensitive pattern.
type signature struct {
	label string
	re    *regexp.Regexp
}

// phrase anchors label on a leading word boundary, and on a trailing one
// when it ends in a digit so "step 1" does not match "step 10" while
// "afterward" still matches "afterwards".
func phrase(label string) signature {
	pattern := regexp.QuoteMeta(label)
	if isWordRune(firstRune(label)) {
		pattern = `\b` + pattern
	}
	if unicode.IsDigit(lastRune(label)) {
		pattern += `\b`
	}
	return signature{label: label, re: regexp.MustCompile(`(?i)` + pattern)}
}

// heading matches label only at the start of a line.
func heading(label string) signature {
	pattern := `(?im)^[ \t]*` + regexp.QuoteMeta(label) + `\b`
	return signature{label: label, re: regexp.MustCompile(pattern)}
}

func phrases(labels ...string) []signature {
	sigs := make([]signature, 0, len(labels))
	for _, l := range labels {
		sigs = append(sigs, phrase(l))
	}
	return sigs
}

// WorkflowVerbs are the directive-opening sequencing phrases rejected in the
// Root and Agent layers, in reporting order.
var WorkflowVerbs = []string{
	"step 1", "step 2", "step one", "step two",
	"first,", "second,", "then,", "next,", "finally,",
	"must then", "afterward", "subsequently",
}

// ProceduralSections are headings that turn an agent into a script.
var ProceduralSections = []string{"## procedure", "## workflow", "## steps"}

// SuccessCriteriaTerms are completion-test phrases rejected in skills.
var SuccessCriteriaTerms = []string{
	"success criteria", "done when", "must ensure", "must verify",
	"requirement:", "requirements:", "you must",
}

var (
	workflowSignatures   = phrases(WorkflowVerbs...)
	successSignatures    = phrases(SuccessCriteriaTerms...)
	proceduralSignatures = func() []signature {
		sigs := make([]signature, 0, len(ProceduralSections))
		for _, h := range ProceduralSections {
			sigs = append(sigs, heading(h))
		}
		return sigs
	}()
)

// forbidden reports each signature found in the content once, in order.
func forbidden(name, format string, sigs []signature) Check {
	return Check{
		Name: name,
		Run: func(f *CandidateFile) []string {
			var msgs []string
			for _, sig := range sigs {
				if sig.re.MatchString(f.Content) {
					msgs = append(msgs, fmt.Sprintf(format, sig.label))
				}
			}
			return msgs
		},
	}
}

// WorkflowVerbCheck rejects numbered steps and sequencing openers.
func WorkflowVerbCheck() Check {
	return forbidden("workflow-verbs", "contains workflow verb '%s'", workflowSignatures)
}

// ProceduralSectionCheck rejects procedure/workflow/steps headings.
func ProceduralSectionCheck() Check {
	return forbidden("procedural-sections", "contains procedural section '%s'", proceduralSignatures)
}

// SuccessCriteriaCheck rejects completion tests in capability descriptions.
func SuccessCriteriaCheck() Check {
	return forbidden("success-criteria", "contains success criteria term '%s'", successSignatures)
}

// FencedCodeBlockCheck rejects any ``` sequence or a line opening with ~~~.
func FencedCodeBlockCheck() Check {
	return Check{
		Name: "fenced-code-block",
		Run: func(f *CandidateFile) []string {
			if hasFence(f.Content) {
				return []string{"contains fenced code block"}
			}
			return nil
		},
	}
}

func hasFence(content string) bool {
	if strings.Contains(content, "```") {
		return true
	}
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "~~~") {
			return true
		}
	}
	return false
}

// LineLimitCheck rejects files longer than limit lines.
func LineLimitCheck(limit int) Check {
	return Check{
		Name: "line-limit",
		Run: func(f *CandidateFile) []string {
			if f.Lines > limit {
				return []string{fmt.Sprintf("too long (%d lines, max %d)", f.Lines, limit)}
			}
			return nil
		},
	}
}

// OptionalDeclarationCheck requires "optional" within the first head lines.
func OptionalDeclarationCheck(head int) Check {
	return Check{
		Name: "optional-declaration",
		Run: func(f *CandidateFile) []string {
			lines := strings.SplitN(f.Content, "\n", head+1)
			if len(lines) > head {
				lines = lines[:head]
			}
			if !strings.Contains(strings.ToLower(strings.Join(lines, "\n")), "optional") {
				return []string{"should state 'optional' near the top"}
			}
			return nil
		},
	}
}

// FrontmatterCheck requires a leading YAML frontmatter mapping.
func FrontmatterCheck() Check {
	return Check{
		Name: "frontmatter",
		Run: func(f *CandidateFile) []string {
			if err := parseFrontmatter(f.Content); err != nil {
				return []string{err.Error()}
			}
			return nil
		},
	}
}

// SectionCheck requires a line reading exactly title, e.g. "## Capability".
func SectionCheck(title string) Check {
	return Check{
		Name: "section",
		Run: func(f *CandidateFile) []string {
			if !hasHeading(f.Content, title) {
				return []string{fmt.Sprintf("missing '%s' section", title)}
			}
			return nil
		},
	}
}

// ReferencesSectionCheck requires skills that ship a references/ directory
// to point at it from a "## References" section.
func ReferencesSectionCheck() Check {
	const title = "## References"
	return Check{
		Name: "references-section",
		Run: func(f *CandidateFile) []string {
			if f.HasReferences && !hasHeading(f.Content, title) {
				return []string{fmt.Sprintf("has references/ but no '%s' section", title)}
			}
			return nil
		},
	}
}

func hasHeading(content, title string) bool {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimRight(line, " \t\r") == title {
			return true
		}
	}
	return false
}

// CountLines counts newline-delimited lines; a trailing newline does not
// open an extra line.
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	r := []rune(s)
	if len(r) == 0 {
		return 0
	}
	return r[len(r)-1]
}
