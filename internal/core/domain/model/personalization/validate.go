package personalization

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Property is a submitted personalization value.
type Property struct {
	Name  string
	Value string
}

// Validate returns the flags for props under rules, in rule order. It is
// deterministic and never fails; an empty result means the properties are clean.
// When a name is submitted twice the first value wins.
func Validate(rules []Rule, props []Property) []Flag {
	flags := make([]Flag, 0)
	for _, rule := range rules {
		value, found := lookup(props, rule.name)
		if !found || strings.TrimSpace(value) == "" {
			if rule.required {
				flags = append(flags, NewMissingFlag(rule.name))
			}
			continue
		}
		flags = append(flags, rule.check(value)...)
	}
	return flags
}

// check applies a rule to a present value. maxLength counts runes, not
// UTF-16 code units, so an emoji counts as one character.
func (r Rule) check(value string) []Flag {
	switch r.kind {
	case Dropdown:
		if !slices.Contains(r.options, value) {
			return []Flag{NewInvalidFlag(r.name, value)}
		}
		return nil
	case Text:
		var flags []Flag
		if r.matcher != nil && !r.matcher.MatchString(value) {
			flags = append(flags, NewBadCharacterFlag(r.name, r.pattern))
		}
		if r.maxLength > 0 && utf8.RuneCountInString(value) > r.maxLength {
			flags = append(flags, NewInvalidFlag(r.name, value))
		}
		return flags
	default:
		return nil
	}
}

func lookup(props []Property, name string) (string, bool) {
	for _, p := range props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
