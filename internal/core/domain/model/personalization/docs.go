// Package personalization checks the free-text properties a customer submits
// for a line item against the rules attached to the ordered catalog variant.
//
// Violations are reported as Flags, never as errors: Validate is a pure
// function and deciding whether flags block an operation is left to the
// caller. Line items accept flagged properties on creation and reject them on
// personalization updates.
//
// Matching rules:
//   - properties are matched to rules by exact, case-sensitive name
//   - a missing or blank property fails a required rule with MissingPersonalization
//   - dropdown values must equal one of the options, otherwise InvalidPersonalization
//   - text values must fully match the pattern, otherwise BadCharacter
//   - text values longer than MaxLength runes yield InvalidPersonalization
//   - properties that match no rule are ignored
package personalization
