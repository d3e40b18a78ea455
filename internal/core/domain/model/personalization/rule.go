package personalization

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrRuleIsNotConstructed = errs.NewValueIsRequiredError("Rule must be created via NewRule")

// RuleKind selects how a property value is checked.
type RuleKind string

const (
	Text     RuleKind = "text"
	Dropdown RuleKind = "dropdown"
)

// ParseRuleKind accepts the canonical names and the catalog aliases
// "input" and "dropdownlist".
func ParseRuleKind(s string) (RuleKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "input":
		return Text, nil
	case "dropdown", "dropdownlist":
		return Dropdown, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a rule kind", s))
	}
}

// RuleParams is the raw shape of a rule as it arrives from the catalog or from
// a stored order. MaxLength 0 means unlimited.
type RuleParams struct {
	Name        string
	Kind        string
	Label       string
	Pattern     string
	Required    bool
	MaxLength   int
	Options     []string
	Placeholder string
}

// Rule is one personalization field of a catalog variant.
type Rule struct {
	name        string
	kind        RuleKind
	label       string
	pattern     string
	matcher     *regexp.Regexp
	required    bool
	maxLength   int
	options     []string
	placeholder string

	guard guard.ConstructorGuard
}

func NewRule(params RuleParams) (Rule, error) {
	rule := Rule{
		label:       params.Label,
		required:    params.Required,
		placeholder: params.Placeholder,
		guard:       guard.NewConstructorGuard(),
	}

	kind, kindErr := ParseRuleKind(params.Kind)
	rule.kind = kind

	if err := errs.Collect(errs.InvalidPersonalizationRule, "personalization rule is invalid", params,
		rule.setName(params.Name),
		kindErr,
		rule.setPattern(params.Pattern),
		rule.setMaxLength(params.MaxLength),
		rule.setOptions(kind, params.Options),
	); err != nil {
		return Rule{}, err
	}

	return rule, nil
}

// ParseOptions splits a comma separated option list, trimming blanks.
func ParseOptions(s string) []string {
	options := make([]string, 0)
	for _, option := range strings.Split(s, ",") {
		if option = strings.TrimSpace(option); option != "" {
			options = append(options, option)
		}
	}
	return options
}

func (r Rule) Validate() error {
	return r.guard.Validate(ErrRuleIsNotConstructed)
}

func (r Rule) Name() string { return r.name }
func (r Rule) Kind() RuleKind { return r.kind }
func (r Rule) Label() string { return r.label }
func (r Rule) Pattern() string { return r.pattern }
func (r Rule) Required() bool { return r.required }
func (r Rule) MaxLength() int { return r.maxLength }
func (r Rule) Placeholder() string { return r.placeholder }

func (r Rule) Options() []string {
	return slices.Clone(r.options)
}

// Params returns the raw shape the rule was built from.
func (r Rule) Params() RuleParams {
	return RuleParams{
		Name:        r.name,
		Kind:        string(r.kind),
		Label:       r.label,
		Pattern:     r.pattern,
		Required:    r.required,
		MaxLength:   r.maxLength,
		Options:     r.Options(),
		Placeholder: r.placeholder,
	}
}

func (r *Rule) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Rule) setPattern(pattern string) error {
	if pattern == "" {
		return nil
	}

	matcher, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pattern", err)
	}
	r.pattern = pattern
	r.matcher = matcher
	return nil
}

func (r *Rule) setMaxLength(maxLength int) error {
	if maxLength < 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxLength", fmt.Errorf("%d is negative", maxLength))
	}
	r.maxLength = maxLength
	return nil
}

func (r *Rule) setOptions(kind RuleKind, options []string) error {
	if kind == Dropdown && len(options) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("options", fmt.Errorf("dropdown rule has no options"))
	}
	r.options = slices.Clone(options)
	return nil
}
