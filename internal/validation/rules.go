package validation

// Default limits.
const (
	DefaultAgentMaxLines     = 120
	DefaultSkillMaxLines     = 500
	DefaultOptionalHeadLines = 15
)

// Options tunes the rule table.
type Options struct {
	// Strict adds frontmatter, section and missing-file checks.
	Strict            bool
	AgentMaxLines     int
	SkillMaxLines     int
	OptionalHeadLines int
}

// DefaultOptions returns the non-strict defaults.
func DefaultOptions() Options {
	return Options{
		AgentMaxLines:     DefaultAgentMaxLines,
		SkillMaxLines:     DefaultSkillMaxLines,
		OptionalHeadLines: DefaultOptionalHeadLines,
	}
}

// withDefaults replaces non-positive limits with the defaults.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.AgentMaxLines <= 0 {
		o.AgentMaxLines = d.AgentMaxLines
	}
	if o.SkillMaxLines <= 0 {
		o.SkillMaxLines = d.SkillMaxLines
	}
	if o.OptionalHeadLines <= 0 {
		o.OptionalHeadLines = d.OptionalHeadLines
	}
	return o
}

// RuleTable maps each layer to its checks in reporting order.
type RuleTable map[Layer][]Check

// NewRuleTable builds the table for opts.
//
//	root:      workflow verbs, fenced code
//	agent:     [frontmatter], line limit, fenced code, procedural sections, workflow verbs
//	skill:     [frontmatter], [## Capability], line limit, fenced code, success criteria, [## References]
//	reference: optional declaration
//
// Bracketed checks only run in strict mode.
func NewRuleTable(opts Options) RuleTable {
	opts = opts.withDefaults()

	var agent, skill []Check
	if opts.Strict {
		agent = append(agent, FrontmatterCheck())
		skill = append(skill, FrontmatterCheck(), SectionCheck("## Capability"))
	}
	agent = append(agent,
		LineLimitCheck(opts.AgentMaxLines),
		FencedCodeBlockCheck(),
		ProceduralSectionCheck(),
		WorkflowVerbCheck(),
	)
	skill = append(skill,
		LineLimitCheck(opts.SkillMaxLines),
		FencedCodeBlockCheck(),
		SuccessCriteriaCheck(),
	)
	if opts.Strict {
		skill = append(skill, ReferencesSectionCheck())
	}

	return RuleTable{
		LayerRoot:      {WorkflowVerbCheck(), FencedCodeBlockCheck()},
		LayerAgent:     agent,
		LayerSkill:     skill,
		LayerReference: {OptionalDeclarationCheck(opts.OptionalHeadLines)},
	}
}

// For returns the checks for layer; unknown layers have none.
func (t RuleTable) For(layer Layer) []Check {
	return t[layer]
}
